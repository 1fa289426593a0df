package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GatheringActive    = "ACTIVE"
	GatheringNotActive = "NOT_ACTIVE"
)

type Gathering struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"size:150;not null" json:"location"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Status      string    `gorm:"size:20;not null;default:ACTIVE" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// RegistrationCount is the live count of registration rows for this
	// gathering. It is never stored; list/find queries fill it from a
	// count subquery.
	RegistrationCount int64 `gorm:"->;-:migration" json:"registration_count"`
}

func (g *Gathering) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
