package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeISO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "naive assumed Warsaw, winter",
			input: "2024-03-01T10:00:00",
			want:  "2024-03-01 10:00:00 CET",
		},
		{
			name:  "naive assumed Warsaw, summer",
			input: "2024-07-01T10:00:00",
			want:  "2024-07-01 10:00:00 CEST",
		},
		{
			name:  "aware converted to Warsaw",
			input: "2024-03-01T10:00:00+00:00",
			want:  "2024-03-01 11:00:00 CET",
		},
		{
			name:  "space separator",
			input: "2024-03-01 10:00:00",
			want:  "2024-03-01 10:00:00 CET",
		},
		{
			name:  "space separator with offset",
			input: "2024-03-01 15:04:05+02:00",
			want:  "2024-03-01 14:04:05 CET",
		},
		{
			name:  "date only",
			input: "2024-03-01",
			want:  "2024-03-01 00:00:00 CET",
		},
		{
			name:  "unparseable kept verbatim",
			input: "sometime next week",
			want:  "sometime next week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeISO(tt.input))
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantDate string
		wantHour int
	}{
		{
			name:     "stored CET stamp",
			input:    "2024-03-01 10:00:00 CET",
			wantOK:   true,
			wantDate: "2024-03-01",
			wantHour: 10,
		},
		{
			name:     "stored CEST stamp",
			input:    "2024-07-10 09:30:00 CEST",
			wantOK:   true,
			wantDate: "2024-07-10",
			wantHour: 9,
		},
		{
			name:     "aware UTC converted",
			input:    "2024-03-01T10:00:00Z",
			wantOK:   true,
			wantDate: "2024-03-01",
			wantHour: 11,
		},
		{
			name:     "naive ISO localized",
			input:    "2024-03-01T10:00:00",
			wantOK:   true,
			wantDate: "2024-03-01",
			wantHour: 10,
		},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "call them back soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateTime(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantDate, got.Format("2006-01-02"))
			assert.Equal(t, tt.wantHour, got.Hour())
		})
	}
}

func TestParseDateTimeRoundTripsNormalizedStamps(t *testing.T) {
	// A stamp the system wrote itself must parse back to the same wall
	// time in both halves of the year, CEST included.
	tests := []struct {
		name  string
		input string
	}{
		{name: "winter", input: "2024-03-01T10:00:00"},
		{name: "summer", input: "2024-07-10T09:30:00"},
		{name: "summer near midnight", input: "2024-07-10T23:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp := NormalizeISO(tt.input)
			got, ok := ParseDateTime(stamp)
			require.True(t, ok)

			want, err := time.ParseInLocation("2006-01-02T15:04:05", tt.input, warsaw)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
			// The calendar date must survive the round trip; the date
			// filter depends on it.
			assert.Equal(t, want.Format("2006-01-02"), got.Format("2006-01-02"))
		})
	}
}

func TestFarFutureOrdersAfterRealTimestamps(t *testing.T) {
	real, ok := ParseDateTime("2024-03-01 10:00:00 CET")
	require.True(t, ok)
	assert.True(t, real.Before(farFuture))
	assert.True(t, farFuture.After(time.Now()))
}
