package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email for session %s: booking %d %s, %d room(s), %s to %s, total %d\n",
		event.SessionID, event.BookingID, event.Type, len(event.RoomIDs), event.CheckInDate, event.CheckOutDate, event.Total)
	return nil
}
