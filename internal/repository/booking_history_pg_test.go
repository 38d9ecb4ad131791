package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingHistoryRepository(t *testing.T) {
	repo := NewBookingHistoryRepository(nil)
	assert.NotNil(t, repo)
	assert.Implements(t, (*BookingHistoryRepository)(nil), repo)
}
