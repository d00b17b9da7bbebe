package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/shared/daterange"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewRejectsIdenticalDates(t *testing.T) {
	at := date("2024-12-20")
	_, err := daterange.New(at, at)
	require.Error(t, err)
	assert.EqualError(t, err, "Start and end dates cannot be identical")
}

func TestNewRejectsEndBeforeStart(t *testing.T) {
	_, err := daterange.New(date("2024-12-25"), date("2024-12-20"))
	require.Error(t, err)
	assert.EqualError(t, err, "The end date must be greater than the start date")
}

func TestNights(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"five full nights", date("2024-12-20"), date("2024-12-25"), 5},
		{"single night", date("2024-12-20"), date("2024-12-21"), 1},
		{"partial day rounds up", date("2024-12-20"), date("2024-12-21").Add(6 * time.Hour), 2},
		{"under a day counts as one night", date("2024-12-20"), date("2024-12-20").Add(90 * time.Minute), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dr, err := daterange.New(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dr.Nights())
		})
	}
}

func TestOverlaps(t *testing.T) {
	mustRange := func(start, end string) daterange.DateRange {
		dr, err := daterange.New(date(start), date(end))
		require.NoError(t, err)
		return dr
	}

	cases := []struct {
		name string
		a    daterange.DateRange
		b    daterange.DateRange
		want bool
	}{
		{"partial overlap", mustRange("2024-12-20", "2024-12-25"), mustRange("2024-12-23", "2024-12-27"), true},
		{"contained", mustRange("2024-12-20", "2024-12-25"), mustRange("2024-12-21", "2024-12-22"), true},
		{"disjoint", mustRange("2024-12-20", "2024-12-22"), mustRange("2024-12-23", "2024-12-25"), false},
		{"touching endpoints", mustRange("2024-12-20", "2024-12-22"), mustRange("2024-12-22", "2024-12-25"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}
