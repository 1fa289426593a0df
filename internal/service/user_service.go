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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.UserResponse, error)
	Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error)
	Update(ctx context.Context, input dto.UpdateUserInput) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) createUser(ctx context.Context, name, email, password, role string) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperror.New(http.StatusBadRequest, "user with this email already exists", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	res := dto.NewUserResponse(user)
	return &res, nil
}

// Register is the public self-service path: the role is always USER.
func (s *userService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserResponse, error) {
	return s.createUser(ctx, input.Name, input.Email, input.Password, model.RoleUser)
}

func (s *userService) Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error) {
	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	return s.createUser(ctx, input.Name, input.Email, input.Password, role)
}

// Update changes name, email and role. Passwords are never updated here;
// there is no password-reset flow in the dashboard.
func (s *userService) Update(ctx context.Context, input dto.UpdateUserInput) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing.ID != user.ID {
			return nil, apperror.New(http.StatusBadRequest, "user with this email already exists", apperror.ErrConflict)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	res := dto.NewUserResponse(user)
	return &res, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}
