package service

import (
	"net/http"

	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/pkg/apperror"
	"github.com/google/uuid"
)

var (
	ErrGatheringNotActive = apperror.New(http.StatusBadRequest, "gathering is not active", apperror.ErrBadRequest)
	ErrGatheringFull      = apperror.New(http.StatusBadRequest, "gathering has reached its capacity", apperror.ErrConflict)
	ErrAlreadyRegistered  = apperror.New(http.StatusBadRequest, "member is already registered for this gathering", apperror.ErrConflict)
)

// CanRegister decides whether a member may register for a gathering given
// the registrations that currently exist for it. It is pure: both the
// admin path and the public self-service path call it with the same
// arguments and get the same answer.
//
// Checks run in a fixed order: inactive gathering, then capacity, then
// duplicate membership. A prior registration of any status blocks a new
// one, including CANCELLED; flipping the status back is the admin's way to
// re-admit a member.
func CanRegister(gathering *model.Gathering, existing []model.Registration, memberID uuid.UUID) error {
	if gathering.Status != model.GatheringActive {
		return ErrGatheringNotActive
	}

	if len(existing) >= gathering.Capacity {
		return ErrGatheringFull
	}

	for _, registration := range existing {
		if registration.MemberID == memberID {
			return ErrAlreadyRegistered
		}
	}

	return nil
}
