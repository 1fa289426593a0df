package repository

import (
	"context"

	"anoa.com/gatheringregistry/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GatheringRepository interface {
	Create(ctx context.Context, gathering *model.Gathering) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gathering, error)
	FindAll(ctx context.Context) ([]model.Gathering, error)
	Update(ctx context.Context, gathering *model.Gathering) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gatheringRepository struct {
	db *gorm.DB
}

func NewGatheringRepository(db *gorm.DB) GatheringRepository {
	return &gatheringRepository{db: db}
}

// withCount fills Gathering.RegistrationCount on reads so the column
// never has to be stored.
func (r *gatheringRepository) withCount() *gorm.DB {
	return r.db.Model(&model.Gathering{}).Select(
		"gatherings.*, (?) AS registration_count",
		r.db.Model(&model.Registration{}).
			Select("count(*)").
			Where("registrations.gathering_id = gatherings.id"),
	)
}

func (r *gatheringRepository) Create(ctx context.Context, gathering *model.Gathering) error {
	return r.db.WithContext(ctx).Create(gathering).Error
}

func (r *gatheringRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Gathering, error) {
	var gathering model.Gathering
	if err := r.withCount().WithContext(ctx).First(&gathering, "gatherings.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &gathering, nil
}

func (r *gatheringRepository) FindAll(ctx context.Context) ([]model.Gathering, error) {
	var gatherings []model.Gathering
	if err := r.withCount().WithContext(ctx).Order("date ASC").Find(&gatherings).Error; err != nil {
		return nil, err
	}
	return gatherings, nil
}

func (r *gatheringRepository) Update(ctx context.Context, gathering *model.Gathering) error {
	return r.db.WithContext(ctx).Save(gathering).Error
}

// Delete cascades to the gathering's registrations in one transaction.
func (r *gatheringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gathering_id = ?", id).Delete(&model.Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Gathering{}, "id = ?", id).Error
	})
}
