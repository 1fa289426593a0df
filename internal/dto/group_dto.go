package dto

import "github.com/google/uuid"

type CreateGroupInput struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateGroupInput struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"required,min=1,max=100"`
}
