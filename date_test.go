package fatstat

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input uint16
		want  time.Time
	}{
		{
			name:  "epoch",
			input: 1<<5 | 1,
			want:  time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "summer day",
			input: 41<<9 | 7<<5 | 5,
			want:  time.Date(2021, 7, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "zero day is unspecified",
			input: 41<<9 | 7<<5,
			want:  time.Time{},
		},
		{
			name:  "zero month is unspecified",
			input: 41<<9 | 5,
			want:  time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDate(tt.input); !got.Equal(tt.want) {
				t.Errorf("ParseDate(%#x) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input uint16
		want  time.Time
	}{
		{
			name:  "midnight",
			input: 0,
			want:  time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "half past twelve",
			input: 12<<11 | 30<<5 | 5,
			want:  time.Date(1, 1, 1, 12, 30, 10, 0, time.UTC),
		},
		{
			name:  "overflow is clamped",
			input: 0xFFFF,
			want:  time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTime(tt.input); !got.Equal(tt.want) {
				t.Errorf("ParseTime(%#x) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	got := ParseTimestamp(testWriteDate, testWriteTime)
	want := time.Date(2021, 7, 5, 12, 30, 10, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTimestamp() = %v, want %v", got, want)
	}

	if got := ParseTimestamp(0, testWriteTime); !got.IsZero() {
		t.Errorf("ParseTimestamp() with invalid date = %v, want zero time", got)
	}
}
