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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type RegistrationService interface {
	Create(ctx context.Context, input dto.CreateRegistrationInput) (*model.Registration, error)
	SelfRegister(ctx context.Context, input dto.SelfRegisterInput) (*model.Registration, error)
	UpdateStatus(ctx context.Context, input dto.UpdateRegistrationInput) (*model.Registration, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]model.Registration, error)
	GetActive(ctx context.Context) ([]model.Registration, error)
}

type registrationService struct {
	repo          repository.RegistrationRepository
	memberRepo    repository.MemberRepository
	redisClient   *redis.Client
	selfRateLimit rateLimitConfig
}

func NewRegistrationService(repo repository.RegistrationRepository, memberRepo repository.MemberRepository, redisClient *redis.Client, opts ...RegistrationOption) RegistrationService {
	s := &registrationService{
		repo:          repo,
		memberRepo:    memberRepo,
		redisClient:   redisClient,
		selfRateLimit: defaultSelfRateLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// create is shared by both registration paths. The member is loaded first
// so the registration snapshots the member's current group; the admission
// policy then runs inside the repository transaction against a fresh read
// of the gathering and its registrations.
func (s *registrationService) create(ctx context.Context, memberID, gatheringID uuid.UUID, status string) (*model.Registration, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusBadRequest, "selected member does not exist", apperror.ErrNotFound)
		}
		return nil, err
	}

	registration := &model.Registration{
		MemberID:    member.ID,
		GatheringID: gatheringID,
		GroupID:     member.GroupID,
		Status:      status,
	}

	err = s.repo.CreateChecked(ctx, registration, func(gathering *model.Gathering, existing []model.Registration) error {
		return CanRegister(gathering, existing, member.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusBadRequest, "selected gathering does not exist", apperror.ErrNotFound)
		}
		return nil, err
	}

	return s.repo.FindByID(ctx, registration.ID)
}

func (s *registrationService) Create(ctx context.Context, input dto.CreateRegistrationInput) (*model.Registration, error) {
	status := input.Status
	if status == "" {
		status = model.RegistrationPending
	}
	return s.create(ctx, input.MemberID, input.GatheringID, status)
}

// SelfRegister is the public path. The status is forced to CONFIRMED:
// member self-registration skips the pending-approval step.
func (s *registrationService) SelfRegister(ctx context.Context, input dto.SelfRegisterInput) (*model.Registration, error) {
	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, input.MemberID.String(), selfRegisterAction, s.selfRateLimit.window)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.New(http.StatusTooManyRequests, "too many registration attempts, try again shortly", nil)
	}

	registration, err := s.create(ctx, input.MemberID, input.GatheringID, model.RegistrationConfirmed)
	if err != nil {
		// A rejected attempt should not burn the member's rate-limit slot.
		if clearErr := ClearRateLimit(ctx, s.redisClient, input.MemberID.String(), selfRegisterAction); clearErr != nil {
			log.Warn().Err(clearErr).Str("member_id", input.MemberID.String()).Msg("failed to clear rate limit")
		}
		return nil, err
	}
	return registration, nil
}

// UpdateStatus changes only the status field. Capacity and uniqueness are
// not re-validated, so an admin can toggle statuses freely even past
// capacity.
func (s *registrationService) UpdateStatus(ctx context.Context, input dto.UpdateRegistrationInput) (*model.Registration, error) {
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "registration not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, input.ID, input.Status); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, input.ID)
}

// Delete removes the registration unconditionally, freeing one capacity
// slot for its gathering.
func (s *registrationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "registration not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *registrationService) GetAll(ctx context.Context) ([]model.Registration, error) {
	return s.repo.FindAll(ctx)
}

func (s *registrationService) GetActive(ctx context.Context) ([]model.Registration, error) {
	return s.repo.FindActive(ctx)
}
