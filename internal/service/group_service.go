package service

import (
	"context"
	"errors"
	"net/http"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/internal/repository"
	"anoa.com/gatheringregistry/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupService interface {
	Create(ctx context.Context, input dto.CreateGroupInput) (*model.Group, error)
	Update(ctx context.Context, input dto.UpdateGroupInput) (*model.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]model.Group, error)
}

type groupService struct {
	repo repository.GroupRepository
}

func NewGroupService(repo repository.GroupRepository) GroupService {
	return &groupService{repo: repo}
}

func (s *groupService) Create(ctx context.Context, input dto.CreateGroupInput) (*model.Group, error) {
	group := &model.Group{Name: input.Name}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) Update(ctx context.Context, input dto.UpdateGroupInput) (*model.Group, error) {
	group, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "group not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	group.Name = input.Name
	if err := s.repo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "group not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *groupService) GetAll(ctx context.Context) ([]model.Group, error) {
	return s.repo.FindAll(ctx)
}
