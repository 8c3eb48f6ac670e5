package parser

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in        string
		hour      int
		minute    int
		remaining string
	}{
		{"zahnarzt 14:30", 14, 30, "zahnarzt"},
		{"zahnarzt 14.30", 14, 30, "zahnarzt"},
		{"abgabe 18 uhr", 18, 0, "abgabe"},
		{"call 6 pm", 18, 0, "call"},
		{"standup 9 am", 9, 0, "standup"},
		{"snack 12 am", 0, 0, "snack"},
		{"lunch 12 pm", 12, 0, "lunch"},
		{"frühstück vorbereiten", 8, 0, "vorbereiten"},
		{"meeting mittags", 12, 0, "meeting"},
		{"lesen abends", 19, 0, "lesen"},
		{"keine zeit angabe", -1, 0, "keine zeit angabe"},
		{"rechnung 99:99", -1, 0, "rechnung 99:99"},
		{"rechnung 10:75", -1, 0, "rechnung 10:75"},
	}
	for _, tt := range tests {
		hour, minute, remaining := parseClock(tt.in)
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("parseClock(%q) = %d:%d, want %d:%d", tt.in, hour, minute, tt.hour, tt.minute)
		}
		if remaining != tt.remaining {
			t.Errorf("parseClock(%q) remaining = %q, want %q", tt.in, remaining, tt.remaining)
		}
	}
}

func TestParseClockFirstRuleWins(t *testing.T) {
	// An explicit clock time beats a day-part keyword; cues never stack.
	hour, minute, remaining := parseClock("abends 20:30 lesen")
	if hour != 20 || minute != 30 {
		t.Fatalf("got %d:%d, want 20:30", hour, minute)
	}
	if remaining != "abends lesen" {
		t.Errorf("remaining = %q, want %q", remaining, "abends lesen")
	}
}
