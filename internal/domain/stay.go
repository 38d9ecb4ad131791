package domain

import (
	"errors"
	"time"
)

var (
	ErrDatesMissing     = errors.New("check-in and check-out dates are required")
	ErrCheckInPast      = errors.New("check-in date cannot be in the past")
	ErrCheckOutNotAfter = errors.New("check-out date must be after check-in date")
)

const DateLayout = "2006-01-02"

// StayRange is the guest's requested date range. Zero values mean the date
// has not been entered yet.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (s StayRange) IsSet() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
}

// Nights is the calendar-day difference between check-out and check-in,
// rounded up. Returns 0 when either date is missing.
func (s StayRange) Nights() int {
	if !s.IsSet() {
		return 0
	}
	diff := s.CheckOut.Sub(s.CheckIn)
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}

// Validate checks the range against the date-entry gate: both dates present,
// check-in not before today, check-out strictly after check-in. A zero-night
// range is invalid here even though pricing floors nights to 1 for previews.
// Today is taken in UTC because parsed dates carry UTC midnight.
func (s StayRange) Validate(now time.Time) error {
	if !s.IsSet() {
		return ErrDatesMissing
	}
	utcNow := now.UTC()
	today := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 0, 0, 0, 0, time.UTC)
	if s.CheckIn.Before(today) {
		return ErrCheckInPast
	}
	if !s.CheckOut.After(s.CheckIn) {
		return ErrCheckOutNotAfter
	}
	return nil
}

// ParseStayRange parses ISO yyyy-mm-dd date strings. Empty strings yield the
// corresponding zero date so Validate can report them as missing.
func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	var s StayRange
	var err error
	if checkIn != "" {
		if s.CheckIn, err = time.Parse(DateLayout, checkIn); err != nil {
			return StayRange{}, err
		}
	}
	if checkOut != "" {
		if s.CheckOut, err = time.Parse(DateLayout, checkOut); err != nil {
			return StayRange{}, err
		}
	}
	return s, nil
}
