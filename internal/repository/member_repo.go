package repository

import (
	"context"

	"anoa.com/gatheringregistry/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindAll(ctx context.Context, groupID *uuid.UUID) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Preload("Group").First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll(ctx context.Context, groupID *uuid.UUID) ([]model.Member, error) {
	var members []model.Member
	query := r.db.WithContext(ctx).Preload("Group")

	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}

	if err := query.Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete cascades to the member's registrations in one transaction.
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&model.Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Member{}, "id = ?", id).Error
	})
}
