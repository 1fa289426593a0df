package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationPending   = "PENDING"
	RegistrationConfirmed = "CONFIRMED"
	RegistrationCancelled = "CANCELLED"
)

// Registration links one member to one gathering. GroupID is a snapshot of
// the member's group at registration time and is not re-synced if the
// member later moves to another group.
type Registration struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_gathering" json:"member_id"`
	Member      Member    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"member"`
	GatheringID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_gathering" json:"gathering_id"`
	Gathering   Gathering `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"gathering"`
	GroupID     uuid.UUID `gorm:"type:uuid;not null" json:"group_id"`
	Group       Group     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"group"`
	Status      string    `gorm:"size:20;not null;default:PENDING" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
