package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGatheringInput struct {
	Name        string    `json:"name" binding:"required,min=1,max=150"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required,min=1,max=150"`
	Description *string   `json:"description"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
	Status      string    `json:"status" binding:"required,oneof=ACTIVE NOT_ACTIVE"`
}

type UpdateGatheringInput struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=150"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required,min=1,max=150"`
	Description *string   `json:"description"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
	Status      string    `json:"status" binding:"required,oneof=ACTIVE NOT_ACTIVE"`
}
