package portfolio

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-02-01T15:30:00-05:00", NewDate(2024, time.February, 1), false},
		{"invalid-date", Date{}, true},
		{"27", Date{}, true},

		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"-3m", today.AddMonth(-3), false},
		{"-1y", NewDate(today.Year()-1, today.Month(), today.Day()), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	toronto := time.FixedZone("EST", -5*3600)
	tests := []struct {
		name string
		in   time.Time
		want Date
	}{
		{"utc midnight", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), NewDate(2024, 3, 1)},
		{"zoned close", time.Date(2024, 3, 1, 16, 0, 0, 0, toronto), NewDate(2024, 3, 1)},
		{"zoned late evening", time.Date(2024, 3, 1, 23, 59, 0, 0, toronto), NewDate(2024, 3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateOf(tt.in); got != tt.want {
				t.Errorf("DateOf(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate_Sub(t *testing.T) {
	tests := []struct {
		d, x Date
		want int
	}{
		{NewDate(2024, 2, 2), NewDate(2024, 2, 1), 1},
		{NewDate(2024, 3, 1), NewDate(2024, 2, 1), 29}, // leap year
		{NewDate(2024, 1, 1), NewDate(2024, 1, 31), -30},
		{NewDate(2025, 1, 1), NewDate(2024, 1, 1), 366},
	}
	for _, tt := range tests {
		if got := tt.d.Sub(tt.x); got != tt.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tt.d, tt.x, got, tt.want)
		}
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{"valid date", `"2025-07-31"`, NewDate(2025, 7, 31), false},
		{"lenient date", `"2025-7-1"`, NewDate(2025, 7, 1), false},
		{"relative dates are rejected", `"-1d"`, Date{}, true},
		{"not a string", `20250731`, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			err := json.Unmarshal([]byte(tt.json), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON(%s) error = %v, wantErr %v", tt.json, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.json, got, tt.expected)
			}
		})
	}
}
