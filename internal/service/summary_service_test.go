package service

import (
	"testing"
	"time"

	"anoa.com/gatheringregistry/internal/model"
	"github.com/google/uuid"
)

func summaryFixture() []model.Registration {
	group1 := model.Group{ID: uuid.New(), Name: "Kelompok 1"}
	group2 := model.Group{ID: uuid.New(), Name: "Kelompok 2"}
	gathering := model.Gathering{
		ID:   uuid.New(),
		Name: "Misa Lingkungan",
		Date: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	reg := func(group model.Group, memberName, status string) model.Registration {
		memberID := uuid.New()
		return model.Registration{
			ID:          uuid.New(),
			MemberID:    memberID,
			Member:      model.Member{ID: memberID, Name: memberName, GroupID: group.ID},
			GatheringID: gathering.ID,
			Gathering:   gathering,
			GroupID:     group.ID,
			Group:       group,
			Status:      status,
		}
	}

	return []model.Registration{
		reg(group1, "Citra", model.RegistrationCancelled),
		reg(group1, "Agus", model.RegistrationPending),
		reg(group1, "Budi", model.RegistrationConfirmed),
		reg(group1, "Ani", model.RegistrationConfirmed),
		reg(group2, "Dewi", model.RegistrationPending),
		reg(group2, "Eka", model.RegistrationConfirmed),
	}
}

func TestBuildSummary_Totals(t *testing.T) {
	registrations := summaryFixture()
	summary := BuildSummary(registrations)

	if summary.TotalRegistrations != len(registrations) {
		t.Fatalf("expected grand total %d, got %d", len(registrations), summary.TotalRegistrations)
	}

	groupTotal := 0
	for _, group := range summary.Groups {
		byStatus := group.ByStatus.Confirmed + group.ByStatus.Pending + group.ByStatus.Cancelled
		if byStatus != group.Total {
			t.Errorf("group %s: byStatus sum %d != total %d", group.GroupName, byStatus, group.Total)
		}
		groupTotal += group.Total
	}

	if groupTotal != summary.TotalRegistrations {
		t.Errorf("sum of group totals %d != grand total %d", groupTotal, summary.TotalRegistrations)
	}
}

func TestBuildSummary_BucketOrder(t *testing.T) {
	summary := BuildSummary(summaryFixture())

	if len(summary.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(summary.Groups))
	}

	// Groups come out in name order.
	if summary.Groups[0].GroupName != "Kelompok 1" {
		t.Fatalf("expected Kelompok 1 first, got %s", summary.Groups[0].GroupName)
	}

	bucket := summary.Groups[0].Gatherings[0]
	want := []struct {
		name   string
		status string
	}{
		{"Ani", model.RegistrationConfirmed},
		{"Budi", model.RegistrationConfirmed},
		{"Agus", model.RegistrationPending},
		{"Citra", model.RegistrationCancelled},
	}

	if len(bucket.Registrations) != len(want) {
		t.Fatalf("expected %d registrations in bucket, got %d", len(want), len(bucket.Registrations))
	}

	for i, expected := range want {
		got := bucket.Registrations[i]
		if got.Member.Name != expected.name || got.Status != expected.status {
			t.Errorf("position %d: expected %s/%s, got %s/%s",
				i, expected.name, expected.status, got.Member.Name, got.Status)
		}
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	summary := BuildSummary(nil)

	if summary.TotalRegistrations != 0 {
		t.Errorf("expected 0 total, got %d", summary.TotalRegistrations)
	}
	if len(summary.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(summary.Groups))
	}
}

func TestBuildSummary_CountsPerStatus(t *testing.T) {
	summary := BuildSummary(summaryFixture())

	group1 := summary.Groups[0]
	if group1.ByStatus.Confirmed != 2 || group1.ByStatus.Pending != 1 || group1.ByStatus.Cancelled != 1 {
		t.Errorf("unexpected Kelompok 1 counts: %+v", group1.ByStatus)
	}

	group2 := summary.Groups[1]
	if group2.ByStatus.Confirmed != 1 || group2.ByStatus.Pending != 1 || group2.ByStatus.Cancelled != 0 {
		t.Errorf("unexpected Kelompok 2 counts: %+v", group2.ByStatus)
	}
}
