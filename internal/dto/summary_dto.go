package dto

import (
	"time"

	"anoa.com/gatheringregistry/internal/model"
	"github.com/google/uuid"
)

type StatusCounts struct {
	Confirmed int `json:"CONFIRMED"`
	Pending   int `json:"PENDING"`
	Cancelled int `json:"CANCELLED"`
}

type GatheringBucket struct {
	GatheringID   uuid.UUID            `json:"gathering_id"`
	GatheringName string               `json:"gathering_name"`
	Date          time.Time            `json:"date"`
	Registrations []model.Registration `json:"registrations"`
}

type GroupSummary struct {
	GroupID    uuid.UUID         `json:"group_id"`
	GroupName  string            `json:"group_name"`
	Total      int               `json:"total"`
	ByStatus   StatusCounts      `json:"by_status"`
	Gatherings []GatheringBucket `json:"gatherings"`
}

type RegistrationSummary struct {
	TotalRegistrations int            `json:"total_registrations"`
	Groups             []GroupSummary `json:"groups"`
}
