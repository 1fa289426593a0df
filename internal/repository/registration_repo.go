package repository

import (
	"context"

	"anoa.com/gatheringregistry/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegistrationRepository interface {
	// CreateChecked inserts the registration inside one transaction after
	// re-reading the gathering and its registrations and passing them to
	// check. The gathering row is read with a row lock so competing creates
	// for the same gathering serialize and cannot both take the last slot;
	// the unique index on (member_id, gathering_id) backs up the check when
	// two creates race for the same pair.
	CreateChecked(ctx context.Context, registration *model.Registration, check func(gathering *model.Gathering, existing []model.Registration) error) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error)
	FindAll(ctx context.Context) ([]model.Registration, error)
	FindActive(ctx context.Context) ([]model.Registration, error)
	FindByGathering(ctx context.Context, gatheringID uuid.UUID) ([]model.Registration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateChecked(ctx context.Context, registration *model.Registration, check func(gathering *model.Gathering, existing []model.Registration) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SELECT ... FOR UPDATE: concurrent creates queue behind this read
		// until the winning transaction commits its insert. SQLite ignores
		// the clause and serializes writers on its own.
		var gathering model.Gathering
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&gathering, "id = ?", registration.GatheringID).Error; err != nil {
			return err
		}

		var existing []model.Registration
		if err := tx.Where("gathering_id = ?", registration.GatheringID).Find(&existing).Error; err != nil {
			return err
		}

		if err := check(&gathering, existing); err != nil {
			return err
		}

		return tx.Create(registration).Error
	})
}

func (r *registrationRepository) preload() *gorm.DB {
	return r.db.Preload("Member").Preload("Member.Group").Preload("Gathering").Preload("Group")
}

func (r *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	var registration model.Registration
	if err := r.preload().WithContext(ctx).First(&registration, "registrations.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) FindAll(ctx context.Context) ([]model.Registration, error) {
	var registrations []model.Registration
	if err := r.preload().WithContext(ctx).Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) FindActive(ctx context.Context) ([]model.Registration, error) {
	var registrations []model.Registration
	err := r.preload().WithContext(ctx).
		Joins("JOIN gatherings ON gatherings.id = registrations.gathering_id").
		Where("gatherings.status = ?", model.GatheringActive).
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) FindByGathering(ctx context.Context, gatheringID uuid.UUID) ([]model.Registration, error) {
	var registrations []model.Registration
	if err := r.db.WithContext(ctx).Where("gathering_id = ?", gatheringID).Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Registration{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *registrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Registration{}, "id = ?", id).Error
}
