package search

import (
	"html"
	"strings"

	"anoa.com/gatheringregistry/internal/model"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
)

// Service keeps a Meilisearch index of gatherings and members in step with
// the database so the dashboard search boxes have something to query. It
// is entirely optional: a nil *Service (no MEILISEARCH_HOST configured)
// turns every method into a no-op, and mutation paths treat indexing
// failures as log-and-continue.
type Service struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

// New returns nil when host is empty, which disables search entirely.
func New(host, masterKey string) *Service {
	if host == "" {
		return nil
	}
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}

	s := &Service{
		client:    meilisearch.New(host, meilisearch.WithAPIKey(masterKey)),
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *Service) initIndexes() {
	gatheringFilterable := []any{"status"}
	if _, err := s.client.Index("gatherings").UpdateFilterableAttributes(&gatheringFilterable); err != nil {
		log.Warn().Err(err).Msg("failed to update gatherings filterable attributes")
	}

	gatheringSortable := []string{"date"}
	if _, err := s.client.Index("gatherings").UpdateSortableAttributes(&gatheringSortable); err != nil {
		log.Warn().Err(err).Msg("failed to update gatherings sortable attributes")
	}

	memberFilterable := []any{"group_id"}
	if _, err := s.client.Index("members").UpdateFilterableAttributes(&memberFilterable); err != nil {
		log.Warn().Err(err).Msg("failed to update members filterable attributes")
	}
}

type gatheringDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Date        int64  `json:"date"`
}

type memberDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
}

func (s *Service) clean(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(sanitized))
}

func (s *Service) IndexGathering(gathering *model.Gathering) error {
	if s == nil {
		return nil
	}

	doc := gatheringDoc{
		ID:       gathering.ID.String(),
		Name:     gathering.Name,
		Location: gathering.Location,
		Status:   gathering.Status,
		Date:     gathering.Date.UnixMilli(),
	}
	if gathering.Description != nil {
		doc.Description = s.clean(*gathering.Description)
	}

	_, err := s.client.Index("gatherings").AddDocuments([]gatheringDoc{doc}, strPtr("id"))
	return err
}

func (s *Service) DeleteGathering(id string) error {
	if s == nil {
		return nil
	}
	_, err := s.client.Index("gatherings").DeleteDocument(id)
	return err
}

func (s *Service) IndexMember(member *model.Member) error {
	if s == nil {
		return nil
	}

	doc := memberDoc{
		ID:        member.ID.String(),
		Name:      member.Name,
		GroupID:   member.GroupID.String(),
		GroupName: member.Group.Name,
	}

	_, err := s.client.Index("members").AddDocuments([]memberDoc{doc}, strPtr("id"))
	return err
}

func (s *Service) DeleteMember(id string) error {
	if s == nil {
		return nil
	}
	_, err := s.client.Index("members").DeleteDocument(id)
	return err
}

func strPtr(s string) *string {
	return &s
}
