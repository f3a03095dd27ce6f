package core

import "testing"

func TestSecondsToTicks(t *testing.T) {
	tests := []struct {
		rate     int
		seconds  float64
		expected int
	}{
		{60, 0.5, 30},
		{30, 0.5, 15},
		{60, 0.0, 1},
		{0, 0.5, 30}, // zero rate falls back to 60
		{25, 0.5, 13},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.SecondsToTicks(tc.seconds); got != tc.expected {
			t.Errorf("SecondsToTicks(%v) at %d fps = %d, expected %d", tc.seconds, tc.rate, got, tc.expected)
		}
	}
}

func TestRateDefault(t *testing.T) {
	if got := (RuntimeConfig{}).Rate(); got != DefaultTickRate {
		t.Fatalf("Rate() = %d, want %d", got, DefaultTickRate)
	}
	if got := (RuntimeConfig{TickRate: 30}).Rate(); got != 30 {
		t.Fatalf("Rate() = %d, want 30", got)
	}
}
