package dater

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{"Canonical", "2024-03-05", "2024-03-05", true},
		{"CanonicalWithSpaces", "  2024-03-05  ", "2024-03-05", true},
		{"RFC3339UTC", "2024-03-05T10:00:00Z", "2024-03-05", true},
		{"RFC3339OffsetCrossesMidnight", "2024-03-05T23:30:00-05:00", "2024-03-06", true},
		{"MonthName", "Jan 2 2006", "2006-01-02", true},
		{"LongMonthName", "January 2, 2006", "2006-01-02", true},
		{"DisplayForm", "Tue Mar 05 2024", "2024-03-05", true},
		{"Empty", "", "", false},
		{"Garbage", "not-a-date", "", false},
		{"BadMonth", "2024-13-05", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if !tc.valid {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, Canonical(got))
		})
	}
}

func TestDisplay(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Tue Mar 05 2024", Display(d))
}

func TestDisplayCanonical(t *testing.T) {
	assert.Equal(t, "Tue Mar 05 2024", DisplayCanonical("2024-03-05"))

	// non-canonical values pass through untouched
	assert.Equal(t, "03/05/2024", DisplayCanonical("03/05/2024"))
}
