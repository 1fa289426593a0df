package dto

import "github.com/google/uuid"

type CreateMemberInput struct {
	Name    string    `json:"name" binding:"required,min=1,max=100"`
	Contact *string   `json:"contact"`
	GroupID uuid.UUID `json:"group_id" binding:"required"`
}

type UpdateMemberInput struct {
	ID      uuid.UUID `json:"id" binding:"required"`
	Name    string    `json:"name" binding:"required,min=1,max=100"`
	Contact *string   `json:"contact"`
	GroupID uuid.UUID `json:"group_id" binding:"required"`
}

type MemberFilter struct {
	GroupID string `form:"groupId" binding:"omitempty,uuid"`
}
