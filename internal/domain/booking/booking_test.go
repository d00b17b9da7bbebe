package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/user"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	dr, err := daterange.New(date(start), date(end))
	require.NoError(t, err)
	return dr
}

func newProperty(t *testing.T) *property.Property {
	t.Helper()
	p, err := property.New("p-1", "Beach House", "Sea view", 5, 300)
	require.NoError(t, err)
	return p
}

func newGuest(t *testing.T) *user.User {
	t.Helper()
	guest, err := user.New("u-1", "Maria Silva")
	require.NoError(t, err)
	return guest
}

func TestNewBooking(t *testing.T) {
	prop := newProperty(t)
	stay := mustRange(t, "2024-12-20", "2024-12-25")

	b, err := booking.New("b-1", prop, newGuest(t), stay, 4)
	require.NoError(t, err)

	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Equal(t, 1500.0, b.TotalPrice)
	assert.Equal(t, 4, b.Guests)
	require.Len(t, prop.Bookings, 1)
	assert.Equal(t, "b-1", prop.Bookings[0].ID)
}

func TestNewBookingValidation(t *testing.T) {
	stay := mustRange(t, "2024-12-20", "2024-12-25")

	cases := []struct {
		name    string
		id      string
		guests  int
		wantErr string
	}{
		{"missing id", "", 4, "Booking ID is required"},
		{"zero guests", "b-1", 0, "The number of guests must be greater than zero"},
		{"negative guests", "b-1", -2, "The number of guests must be greater than zero"},
		{"too many guests", "b-1", 6, "Number of guests exceeded. Maximum allowed: 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prop := newProperty(t)
			_, err := booking.New(tc.id, prop, newGuest(t), stay, tc.guests)
			assert.EqualError(t, err, tc.wantErr)
			assert.Empty(t, prop.Bookings, "failed validation must not register the booking")
		})
	}
}

func TestNewBookingRejectsOverlap(t *testing.T) {
	prop := newProperty(t)
	guest := newGuest(t)

	_, err := booking.New("b-1", prop, guest, mustRange(t, "2024-12-20", "2024-12-25"), 2)
	require.NoError(t, err)

	_, err = booking.New("b-2", prop, guest, mustRange(t, "2024-12-23", "2024-12-27"), 2)
	assert.EqualError(t, err, "The property is unavailable in the date range requested")
	assert.Len(t, prop.Bookings, 1)

	// A back-to-back stay starting on the previous checkout is fine.
	_, err = booking.New("b-3", prop, guest, mustRange(t, "2024-12-25", "2024-12-28"), 2)
	assert.NoError(t, err)
	assert.Len(t, prop.Bookings, 2)
}

func TestCancelRefundSchedule(t *testing.T) {
	cases := []struct {
		name      string
		cancelOn  time.Time
		wantPrice float64
	}{
		{"more than seven days ahead retains nothing", date("2024-12-10"), 0},
		{"seven days ahead retains half", date("2024-12-13"), 750},
		{"one day ahead retains half", date("2024-12-19"), 750},
		{"same day retains everything", date("2024-12-20"), 1500},
		{"after check-in retains everything", date("2024-12-22"), 1500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prop := newProperty(t)
			b, err := booking.New("b-1", prop, newGuest(t), mustRange(t, "2024-12-20", "2024-12-25"), 4)
			require.NoError(t, err)
			require.Equal(t, 1500.0, b.TotalPrice)

			require.NoError(t, b.Cancel(tc.cancelOn))
			assert.Equal(t, booking.StatusCancelled, b.Status)
			assert.Equal(t, tc.wantPrice, b.TotalPrice)
		})
	}
}

func TestCancelSameDayShortStay(t *testing.T) {
	prop, err := property.New("p-2", "Cabin", "In the woods", 4, 300)
	require.NoError(t, err)

	b, err := booking.New("b-1", prop, newGuest(t), mustRange(t, "2024-12-20", "2024-12-22"), 2)
	require.NoError(t, err)
	require.Equal(t, 600.0, b.TotalPrice)

	require.NoError(t, b.Cancel(date("2024-12-20")))
	assert.Equal(t, 600.0, b.TotalPrice)
}

func TestCancelTwice(t *testing.T) {
	prop := newProperty(t)
	b, err := booking.New("b-1", prop, newGuest(t), mustRange(t, "2024-12-20", "2024-12-25"), 4)
	require.NoError(t, err)

	require.NoError(t, b.Cancel(date("2024-12-10")))
	err = b.Cancel(date("2024-12-11"))
	assert.EqualError(t, err, "This booking is already cancelled")
}

func TestCancelledBookingStillBlocksDates(t *testing.T) {
	prop := newProperty(t)
	guest := newGuest(t)

	b, err := booking.New("b-1", prop, guest, mustRange(t, "2024-12-20", "2024-12-25"), 4)
	require.NoError(t, err)
	require.NoError(t, b.Cancel(date("2024-12-10")))

	// The range stays registered after cancellation, so the dates remain
	// blocked for new bookings.
	_, err = booking.New("b-2", prop, guest, mustRange(t, "2024-12-21", "2024-12-24"), 2)
	assert.EqualError(t, err, "The property is unavailable in the date range requested")
}

func TestBookingRecordsEvents(t *testing.T) {
	prop := newProperty(t)
	b, err := booking.New("b-1", prop, newGuest(t), mustRange(t, "2024-12-20", "2024-12-25"), 4)
	require.NoError(t, err)

	pending := b.PendingEvents()
	require.Len(t, pending, 1)
	assert.Equal(t, "booking.created", pending[0].EventName())
	assert.Equal(t, "b-1", pending[0].AggregateID())

	b.ClearEvents()
	require.NoError(t, b.Cancel(date("2024-12-10")))
	pending = b.PendingEvents()
	require.Len(t, pending, 1)
	assert.Equal(t, "booking.cancelled", pending[0].EventName())
}
