package domain

import "time"

type FlowStage string

const (
	StageDateEntry     FlowStage = "DATE_ENTRY"
	StageItemSelection FlowStage = "ITEM_SELECTION"
	StageSubmitting    FlowStage = "SUBMITTING"
	StageConfirmed     FlowStage = "CONFIRMED"
)

// SessionSnapshot is the serializable view of a booking session used for
// rehydration between process restarts. Quantities are stored post-clamp.
type SessionSnapshot struct {
	ID             string          `json:"id"`
	Stage          FlowStage       `json:"stage"`
	CheckInDate    string          `json:"checkInDate,omitempty"`
	CheckOutDate   string          `json:"checkOutDate,omitempty"`
	RoomQuantities map[string]int  `json:"roomQuantities,omitempty"`
	FoodQuantities map[int64]int   `json:"foodQuantities,omitempty"`
	LastError      string          `json:"lastError,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
