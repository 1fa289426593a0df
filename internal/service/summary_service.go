package service

import (
	"context"
	"sort"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SummaryService interface {
	GetSummary(ctx context.Context) (*dto.RegistrationSummary, error)
}

type summaryService struct {
	repo repository.RegistrationRepository
}

func NewSummaryService(repo repository.RegistrationRepository) SummaryService {
	return &summaryService{repo: repo}
}

func (s *summaryService) GetSummary(ctx context.Context) (*dto.RegistrationSummary, error) {
	registrations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(registrations)
	return &summary, nil
}

var statusRank = map[string]int{
	model.RegistrationConfirmed: 0,
	model.RegistrationPending:   1,
	model.RegistrationCancelled: 2,
}

// BuildSummary folds a snapshot of registrations (with member, gathering
// and group embedded) into the display-ready grouping: by group, then by
// gathering, registrations in each bucket ordered CONFIRMED, PENDING,
// CANCELLED with ties broken by member name. It holds no state and is safe
// to recompute on every refresh.
func BuildSummary(registrations []model.Registration) dto.RegistrationSummary {
	collator := collate.New(language.Indonesian)

	groups := make(map[uuid.UUID]*dto.GroupSummary)
	buckets := make(map[uuid.UUID]map[uuid.UUID]*dto.GatheringBucket)

	summary := dto.RegistrationSummary{Groups: []dto.GroupSummary{}}

	for _, registration := range registrations {
		group, ok := groups[registration.GroupID]
		if !ok {
			group = &dto.GroupSummary{
				GroupID:   registration.GroupID,
				GroupName: registration.Group.Name,
			}
			groups[registration.GroupID] = group
			buckets[registration.GroupID] = make(map[uuid.UUID]*dto.GatheringBucket)
		}

		bucket, ok := buckets[registration.GroupID][registration.GatheringID]
		if !ok {
			bucket = &dto.GatheringBucket{
				GatheringID:   registration.GatheringID,
				GatheringName: registration.Gathering.Name,
				Date:          registration.Gathering.Date,
			}
			buckets[registration.GroupID][registration.GatheringID] = bucket
		}

		bucket.Registrations = append(bucket.Registrations, registration)

		group.Total++
		summary.TotalRegistrations++
		switch registration.Status {
		case model.RegistrationConfirmed:
			group.ByStatus.Confirmed++
		case model.RegistrationPending:
			group.ByStatus.Pending++
		case model.RegistrationCancelled:
			group.ByStatus.Cancelled++
		}
	}

	for groupID, group := range groups {
		for _, bucket := range buckets[groupID] {
			registrations := bucket.Registrations
			sort.SliceStable(registrations, func(i, j int) bool {
				if statusRank[registrations[i].Status] != statusRank[registrations[j].Status] {
					return statusRank[registrations[i].Status] < statusRank[registrations[j].Status]
				}
				return collator.CompareString(registrations[i].Member.Name, registrations[j].Member.Name) < 0
			})
			group.Gatherings = append(group.Gatherings, *bucket)
		}

		sort.SliceStable(group.Gatherings, func(i, j int) bool {
			if !group.Gatherings[i].Date.Equal(group.Gatherings[j].Date) {
				return group.Gatherings[i].Date.Before(group.Gatherings[j].Date)
			}
			return collator.CompareString(group.Gatherings[i].GatheringName, group.Gatherings[j].GatheringName) < 0
		})

		summary.Groups = append(summary.Groups, *group)
	}

	sort.SliceStable(summary.Groups, func(i, j int) bool {
		return collator.CompareString(summary.Groups[i].GroupName, summary.Groups[j].GroupName) < 0
	})

	return summary
}
