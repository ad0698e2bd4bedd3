package bankroll

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
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
		// ISO format, with and without zero padding
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// full timestamps as exported by the web app
		{"2025-03-01T14:30:00Z", NewDate(2025, time.March, 1), false},
		{"2025-03-01T14:30:00.000-03:00", NewDate(2025, time.March, 1), false},

		// relative day and week offsets
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"0d", today, false},
		{"-2w", today.Add(-14), false},
		{"1d", Date{}, true},
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

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{
			name:     "plain day",
			json:     `"2024-05-21"`,
			expected: NewDate(2024, 5, 21),
		},
		{
			name:     "timestamp",
			json:     `"2024-05-21T08:00:00Z"`,
			expected: NewDate(2024, 5, 21),
		},
		{
			name:    "invalid",
			json:    `"not-a-date"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(NewDate(2024, 5, 21))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `"2024-05-21"`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}
