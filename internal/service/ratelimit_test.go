package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/model"
	"github.com/google/uuid"
)

func TestCheckAndSetRateLimit_NilClientAllows(t *testing.T) {
	ctx := context.Background()

	allowed, err := CheckAndSetRateLimit(ctx, nil, uuid.New().String(), selfRegisterAction, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected nil client to allow")
	}

	if err := ClearRateLimit(ctx, nil, uuid.New().String(), selfRegisterAction); err != nil {
		t.Errorf("unexpected error clearing: %v", err)
	}
}

func TestRegistrationService_SelfRegisterFailedAttemptAllowsRetry(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 7")
	gathering := seedGathering(t, db, 5, model.GatheringActive)
	member := seedMember(t, db, "Joko", group.ID)

	// A rejected attempt releases the member's rate-limit slot, so the
	// immediate retry with corrected input goes through.
	if _, err := svc.SelfRegister(ctx, dto.SelfRegisterInput{MemberID: member.ID, GatheringID: uuid.New()}); err == nil {
		t.Fatal("expected error for unknown gathering")
	}

	reg, err := svc.SelfRegister(ctx, dto.SelfRegisterInput{MemberID: member.ID, GatheringID: gathering.ID})
	if err != nil {
		t.Fatalf("retry after failed attempt failed: %v", err)
	}
	if reg.Status != model.RegistrationConfirmed {
		t.Errorf("expected CONFIRMED, got %s", reg.Status)
	}
}
