package booking

import (
	"errors"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

// StayRange is a half-open [checkIn, checkOut) range of calendar days.
// Both bounds are normalized to UTC midnight; time-of-day is ignored.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

func (r StayRange) Nights() int32 {
	return int32(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps uses the half-open interval test: two stays sharing only a
// turnover day (one checks out the morning the other checks in) do not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}
