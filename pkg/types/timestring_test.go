package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 13, 8, 5, 42, 0, time.UTC)
	assert.Equal(t, TimeString("08:05"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "06:00"},
		{name: "valid evening", input: "23:00"},
		{name: "missing minutes", input: "06", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "06:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "06:00", want: 360},
		{input: "08:40", want: 520},
		{input: "23:00", want: 1380},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeString(tt.input).Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
	}{
		{name: "one slot", input: "06:00", minutes: 40, want: "06:40"},
		{name: "hour carry", input: "08:40", minutes: 40, want: "09:20"},
		{name: "zero", input: "14:00", minutes: 0, want: "14:00"},
		{name: "midnight wrap", input: "23:50", minutes: 20, want: "00:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("06:00").IsBefore("06:40"))
	assert.False(t, TimeString("06:40").IsBefore("06:40"))
	assert.True(t, TimeString("23:00").IsAfter("22:20"))
	assert.False(t, TimeString("22:20").IsAfter("22:20"))
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("06:00").IsZero())
}
