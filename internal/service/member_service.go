package service

import (
	"context"
	"errors"
	"net/http"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/internal/repository"
	"anoa.com/gatheringregistry/internal/search"
	"anoa.com/gatheringregistry/pkg/apperror"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type MemberService interface {
	Create(ctx context.Context, input dto.CreateMemberInput) (*model.Member, error)
	Update(ctx context.Context, input dto.UpdateMemberInput) (*model.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, filter dto.MemberFilter) ([]model.Member, error)
}

type memberService struct {
	repo      repository.MemberRepository
	groupRepo repository.GroupRepository
	searchSvc *search.Service
}

func NewMemberService(repo repository.MemberRepository, groupRepo repository.GroupRepository, searchSvc *search.Service) MemberService {
	return &memberService{
		repo:      repo,
		groupRepo: groupRepo,
		searchSvc: searchSvc,
	}
}

func (s *memberService) Create(ctx context.Context, input dto.CreateMemberInput) (*model.Member, error) {
	if _, err := s.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusBadRequest, "selected group does not exist", apperror.ErrNotFound)
		}
		return nil, err
	}

	member := &model.Member{
		Name:    input.Name,
		Contact: input.Contact,
		GroupID: input.GroupID,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	if err := s.searchSvc.IndexMember(created); err != nil {
		log.Warn().Err(err).Str("member_id", created.ID.String()).Msg("failed to index member")
	}

	return created, nil
}

func (s *memberService) Update(ctx context.Context, input dto.UpdateMemberInput) (*model.Member, error) {
	member, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "member not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusBadRequest, "selected group does not exist", apperror.ErrNotFound)
		}
		return nil, err
	}

	member.Name = input.Name
	member.Contact = input.Contact
	member.GroupID = input.GroupID
	// Existing registrations keep their group snapshot; moving a member to
	// another group never rewrites history.
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	if err := s.searchSvc.IndexMember(updated); err != nil {
		log.Warn().Err(err).Str("member_id", updated.ID.String()).Msg("failed to index member")
	}

	return updated, nil
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "member not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.searchSvc.DeleteMember(id.String()); err != nil {
		log.Warn().Err(err).Str("member_id", id.String()).Msg("failed to remove member from index")
	}

	return nil
}

func (s *memberService) GetAll(ctx context.Context, filter dto.MemberFilter) ([]model.Member, error) {
	var groupID *uuid.UUID
	if filter.GroupID != "" {
		id, err := uuid.Parse(filter.GroupID)
		if err != nil {
			return nil, apperror.New(http.StatusBadRequest, "invalid groupId filter", apperror.ErrInvalidInput)
		}
		groupID = &id
	}

	return s.repo.FindAll(ctx, groupID)
}
