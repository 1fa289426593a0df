package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/gatheringregistry/internal/dto"
	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/internal/repository"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Member{},
		&model.Gathering{},
		&model.Registration{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedGroup(t *testing.T, db *gorm.DB, name string) *model.Group {
	t.Helper()
	group := &model.Group{Name: name}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to seed group: %v", err)
	}
	return group
}

func seedMember(t *testing.T, db *gorm.DB, name string, groupID uuid.UUID) *model.Member {
	t.Helper()
	member := &model.Member{Name: name, GroupID: groupID}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}

func seedGathering(t *testing.T, db *gorm.DB, capacity int, status string) *model.Gathering {
	t.Helper()
	gathering := &model.Gathering{
		Name:     "Rekoleksi",
		Date:     time.Now().Add(24 * time.Hour),
		Location: "Gereja St. Maria",
		Capacity: capacity,
		Status:   status,
	}
	if err := db.Create(gathering).Error; err != nil {
		t.Fatalf("failed to seed gathering: %v", err)
	}
	return gathering
}

func newRegistrationService(db *gorm.DB) RegistrationService {
	return NewRegistrationService(
		repository.NewRegistrationRepository(db),
		repository.NewMemberRepository(db),
		nil,
	)
}

func TestRegistrationService_CapacityFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 1")
	gathering := seedGathering(t, db, 2, model.GatheringActive)

	memberA := seedMember(t, db, "Agus", group.ID)
	memberB := seedMember(t, db, "Budi", group.ID)
	memberC := seedMember(t, db, "Citra", group.ID)

	regA, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: memberA.ID, GatheringID: gathering.ID})
	if err != nil {
		t.Fatalf("member A registration failed: %v", err)
	}
	if regA.Status != model.RegistrationPending {
		t.Errorf("expected default status PENDING, got %s", regA.Status)
	}

	if _, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: memberB.ID, GatheringID: gathering.ID}); err != nil {
		t.Fatalf("member B registration failed: %v", err)
	}

	var count int64
	db.Model(&model.Registration{}).Where("gathering_id = ?", gathering.ID).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 registrations, got %d", count)
	}

	_, err = svc.Create(ctx, dto.CreateRegistrationInput{MemberID: memberC.ID, GatheringID: gathering.ID})
	if !errors.Is(err, ErrGatheringFull) {
		t.Fatalf("expected ErrGatheringFull for member C, got %v", err)
	}

	// Deleting a registration frees the slot for member C.
	if err := svc.Delete(ctx, regA.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: memberC.ID, GatheringID: gathering.ID}); err != nil {
		t.Fatalf("member C registration after free slot failed: %v", err)
	}
}

func TestRegistrationService_DuplicateBlockedAcrossStatuses(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 2")
	gathering := seedGathering(t, db, 10, model.GatheringActive)
	member := seedMember(t, db, "Dewi", group.ID)

	reg, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: gathering.ID})
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err = svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: gathering.ID})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Cancelling does not free the pair: a record of any status blocks.
	if _, err := svc.UpdateStatus(ctx, dto.UpdateRegistrationInput{ID: reg.ID, Status: model.RegistrationCancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	_, err = svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: gathering.ID})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered after cancel, got %v", err)
	}
}

func TestRegistrationService_NotActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 3")
	gathering := seedGathering(t, db, 100, model.GatheringNotActive)
	member := seedMember(t, db, "Eka", group.ID)

	_, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: gathering.ID})
	if !errors.Is(err, ErrGatheringNotActive) {
		t.Fatalf("expected ErrGatheringNotActive, got %v", err)
	}
}

func TestRegistrationService_GroupSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group1 := seedGroup(t, db, "Kelompok 1")
	group2 := seedGroup(t, db, "Kelompok 2")
	gathering := seedGathering(t, db, 5, model.GatheringActive)
	member := seedMember(t, db, "Fajar", group1.ID)

	reg, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: gathering.ID})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if reg.GroupID != group1.ID {
		t.Fatalf("expected group snapshot %s, got %s", group1.ID, reg.GroupID)
	}

	// Moving the member afterwards must not rewrite the snapshot.
	if err := db.Model(&model.Member{}).Where("id = ?", member.ID).Update("group_id", group2.ID).Error; err != nil {
		t.Fatalf("failed to move member: %v", err)
	}

	var stored model.Registration
	if err := db.First(&stored, "id = ?", reg.ID).Error; err != nil {
		t.Fatalf("failed to reload registration: %v", err)
	}
	if stored.GroupID != group1.ID {
		t.Errorf("snapshot was re-synced: expected %s, got %s", group1.ID, stored.GroupID)
	}
}

func TestRegistrationService_SelfRegisterForcesConfirmed(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 4")
	gathering := seedGathering(t, db, 5, model.GatheringActive)
	member := seedMember(t, db, "Gita", group.ID)

	reg, err := svc.SelfRegister(ctx, dto.SelfRegisterInput{MemberID: member.ID, GatheringID: gathering.ID})
	if err != nil {
		t.Fatalf("self registration failed: %v", err)
	}

	if reg.Status != model.RegistrationConfirmed {
		t.Errorf("expected CONFIRMED, got %s", reg.Status)
	}
}

func TestRegistrationService_UpdateStatusIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 5")
	gathering := seedGathering(t, db, 5, model.GatheringActive)
	member := seedMember(t, db, "Hana", group.ID)

	reg, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: gathering.ID})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	first, err := svc.UpdateStatus(ctx, dto.UpdateRegistrationInput{ID: reg.ID, Status: model.RegistrationConfirmed})
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.UpdateStatus(ctx, dto.UpdateRegistrationInput{ID: reg.ID, Status: model.RegistrationConfirmed})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	if first.Status != second.Status || first.ID != second.ID {
		t.Errorf("repeated update changed observable state: %+v vs %+v", first, second)
	}

	var count int64
	db.Model(&model.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 registration, got %d", count)
	}
}

func TestRegistrationService_UnknownMemberAndGathering(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(db)
	ctx := context.Background()

	group := seedGroup(t, db, "Kelompok 6")
	gathering := seedGathering(t, db, 5, model.GatheringActive)
	member := seedMember(t, db, "Indra", group.ID)

	if _, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: uuid.New(), GatheringID: gathering.ID}); err == nil {
		t.Error("expected error for unknown member")
	}

	if _, err := svc.Create(ctx, dto.CreateRegistrationInput{MemberID: member.ID, GatheringID: uuid.New()}); err == nil {
		t.Error("expected error for unknown gathering")
	}
}
