package daterange

import (
	"time"

	"staybook/internal/domain/shared/validation"
)

var (
	ErrIdenticalDates = validation.NewError("Start and end dates cannot be identical")
	ErrEndBeforeStart = validation.NewError("The end date must be greater than the start date")
)

const millisPerNight = 24 * 60 * 60 * 1000

// DateRange represents a half-open stay interval [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// New builds a validated range. Identical instants are rejected before the
// ordering check so each case keeps its own message.
func New(start, end time.Time) (DateRange, error) {
	dr := DateRange{Start: start.UTC(), End: end.UTC()}
	if dr.End.Equal(dr.Start) {
		return DateRange{}, ErrIdenticalDates
	}
	if dr.End.Before(dr.Start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return dr, nil
}

// Nights counts the 24-hour periods in the range, rounding partial days up.
func (dr DateRange) Nights() int {
	diff := dr.End.Sub(dr.Start).Milliseconds()
	nights := diff / millisPerNight
	if diff%millisPerNight != 0 {
		nights++
	}
	return int(nights)
}

// Overlaps is symmetric; ranges that only touch at an endpoint do not overlap.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.Start.Before(other.End) && other.Start.Before(dr.End)
}
