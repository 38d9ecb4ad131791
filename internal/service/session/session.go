package session

import (
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/selection"
)

// Session is one guest's in-progress booking flow. It is owned exclusively
// by the Store; nothing outside the store goroutine mutates it.
type Session struct {
	ID        string
	Stage     domain.FlowStage
	Stay      domain.StayRange
	Selection *selection.Selection
	LastError string
	BookingID int64
	CreatedAt time.Time
}

func (s *Session) Snapshot() domain.SessionSnapshot {
	snap := domain.SessionSnapshot{
		ID:             s.ID,
		Stage:          s.Stage,
		RoomQuantities: s.Selection.RoomQuantities(),
		FoodQuantities: s.Selection.FoodQuantities(),
		LastError:      s.LastError,
		CreatedAt:      s.CreatedAt,
	}
	if !s.Stay.CheckIn.IsZero() {
		snap.CheckInDate = s.Stay.CheckIn.Format(domain.DateLayout)
	}
	if !s.Stay.CheckOut.IsZero() {
		snap.CheckOutDate = s.Stay.CheckOut.Format(domain.DateLayout)
	}
	return snap
}
