package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStayRange_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2024-01-01", "2024-01-04", 3},
		{"one night", "2024-01-01", "2024-01-02", 1},
		{"same day", "2024-01-01", "2024-01-01", 0},
		{"across month", "2024-01-31", "2024-02-02", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StayRange{CheckIn: date(tt.checkIn), CheckOut: date(tt.checkOut)}
			assert.Equal(t, tt.want, s.Nights())
		})
	}
}

func TestStayRange_NightsMissingDates(t *testing.T) {
	assert.Equal(t, 0, StayRange{}.Nights())
	assert.Equal(t, 0, StayRange{CheckIn: date("2024-01-01")}.Nights())
}

func TestStayRange_Validate(t *testing.T) {
	now := date("2024-01-10")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{"valid", "2024-01-10", "2024-01-12", nil},
		{"future", "2024-02-01", "2024-02-05", nil},
		{"check-in in the past", "2024-01-09", "2024-01-12", ErrCheckInPast},
		{"check-out equals check-in", "2024-01-10", "2024-01-10", ErrCheckOutNotAfter},
		{"check-out before check-in", "2024-01-12", "2024-01-10", ErrCheckOutNotAfter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StayRange{CheckIn: date(tt.checkIn), CheckOut: date(tt.checkOut)}
			err := s.Validate(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStayRange_ValidateNonUTCClock(t *testing.T) {
	// a server clock west of UTC must not reject a check-in dated today
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, est)

	s := StayRange{CheckIn: date("2024-01-10"), CheckOut: date("2024-01-12")}
	assert.NoError(t, s.Validate(now))

	s = StayRange{CheckIn: date("2024-01-09"), CheckOut: date("2024-01-12")}
	assert.ErrorIs(t, s.Validate(now), ErrCheckInPast)
}

func TestStayRange_ValidateMissing(t *testing.T) {
	now := time.Now()
	assert.ErrorIs(t, StayRange{}.Validate(now), ErrDatesMissing)
	assert.ErrorIs(t, StayRange{CheckIn: date("2030-01-01")}.Validate(now), ErrDatesMissing)
}

func TestParseStayRange(t *testing.T) {
	s, err := ParseStayRange("2024-01-01", "2024-01-04")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Nights())

	s, err = ParseStayRange("", "")
	require.NoError(t, err)
	assert.False(t, s.IsSet())

	_, err = ParseStayRange("01/01/2024", "2024-01-04")
	assert.Error(t, err)
}

func TestCuisines(t *testing.T) {
	items := []FoodItem{
		{ID: 1, Name: "Pasta", Cuisine: "italian"},
		{ID: 2, Name: "Pizza", Cuisine: "italian"},
		{ID: 3, Name: "Biryani", Cuisine: "indian"},
	}
	assert.Equal(t, []string{"italian", "indian"}, Cuisines(items))
	assert.Empty(t, Cuisines(nil))
}
