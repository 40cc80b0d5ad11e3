package window

import (
	"testing"
	"time"
)

func TestForDays(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	w := ForDays(3, now)

	wantStart := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
	if w.End.Day() != 10 || w.End.Hour() != 23 || w.End.Minute() != 59 || w.End.Second() != 59 {
		t.Errorf("end = %v, want end of March 10", w.End)
	}
}

func TestForDaysCrossesMonth(t *testing.T) {
	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	w := ForDays(2, now)

	wantStart := time.Date(2025, time.February, 27, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
}

func TestContainsIsInclusive(t *testing.T) {
	w := ForDays(1, time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start", w.Start, true},
		{"end", w.End, true},
		{"inside", w.Start.Add(5 * time.Hour), true},
		{"before start", w.Start.Add(-time.Nanosecond), false},
		{"after end", w.End.Add(time.Nanosecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc1123z", "Mon, 10 Mar 2025 09:15:00 +0000", false},
		{"rfc1123", "Mon, 10 Mar 2025 09:15:00 GMT", false},
		{"rfc3339", "2025-03-10T09:15:00Z", false},
		{"single digit day", "Mon, 3 Mar 2025 09:15:00 +0100", false},
		{"date only", "2025-03-10", false},
		{"garbage", "yesterday-ish", true},
		{"empty", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTime(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
