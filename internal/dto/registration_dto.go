package dto

import "github.com/google/uuid"

type CreateRegistrationInput struct {
	MemberID    uuid.UUID `json:"member_id" binding:"required"`
	GatheringID uuid.UUID `json:"gathering_id" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}

// SelfRegisterInput is the public landing-page form. Status is not
// accepted: self-service registrations are confirmed unconditionally.
type SelfRegisterInput struct {
	MemberID    uuid.UUID `json:"member_id" binding:"required"`
	GatheringID uuid.UUID `json:"gathering_id" binding:"required"`
}

type UpdateRegistrationInput struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Status string    `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}
