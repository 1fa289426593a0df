package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member belongs to exactly one group at any time.
type Member struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Contact   *string   `gorm:"size:100" json:"contact,omitempty"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null" json:"group_id"`
	Group     Group     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"group"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
