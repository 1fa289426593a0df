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

type GatheringService interface {
	Create(ctx context.Context, input dto.CreateGatheringInput) (*model.Gathering, error)
	Update(ctx context.Context, input dto.UpdateGatheringInput) (*model.Gathering, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]model.Gathering, error)
}

type gatheringService struct {
	repo      repository.GatheringRepository
	searchSvc *search.Service
}

func NewGatheringService(repo repository.GatheringRepository, searchSvc *search.Service) GatheringService {
	return &gatheringService{
		repo:      repo,
		searchSvc: searchSvc,
	}
}

func (s *gatheringService) Create(ctx context.Context, input dto.CreateGatheringInput) (*model.Gathering, error) {
	gathering := &model.Gathering{
		Name:        input.Name,
		Date:        input.Date,
		Location:    input.Location,
		Description: input.Description,
		Capacity:    input.Capacity,
		Status:      input.Status,
	}

	if err := s.repo.Create(ctx, gathering); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, gathering.ID)
	if err != nil {
		return nil, err
	}

	if err := s.searchSvc.IndexGathering(created); err != nil {
		log.Warn().Err(err).Str("gathering_id", created.ID.String()).Msg("failed to index gathering")
	}

	return created, nil
}

func (s *gatheringService) Update(ctx context.Context, input dto.UpdateGatheringInput) (*model.Gathering, error) {
	gathering, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "gathering not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	gathering.Name = input.Name
	gathering.Date = input.Date
	gathering.Location = input.Location
	gathering.Description = input.Description
	gathering.Capacity = input.Capacity
	gathering.Status = input.Status

	if err := s.repo.Update(ctx, gathering); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, gathering.ID)
	if err != nil {
		return nil, err
	}

	if err := s.searchSvc.IndexGathering(updated); err != nil {
		log.Warn().Err(err).Str("gathering_id", updated.ID.String()).Msg("failed to index gathering")
	}

	return updated, nil
}

func (s *gatheringService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "gathering not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.searchSvc.DeleteGathering(id.String()); err != nil {
		log.Warn().Err(err).Str("gathering_id", id.String()).Msg("failed to remove gathering from index")
	}

	return nil
}

func (s *gatheringService) GetAll(ctx context.Context) ([]model.Gathering, error) {
	return s.repo.FindAll(ctx)
}
