package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestTickDuration(t *testing.T) {
	tests := []struct {
		rate     int
		wantRate int
		expected time.Duration
	}{
		{60, 60, 16666666 * time.Nanosecond},
		{30, 30, 33333333 * time.Nanosecond},
		{10, 10, 100 * time.Millisecond},
		{0, 60, 16666666 * time.Nanosecond},
		{-5, 60, 16666666 * time.Nanosecond},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.Rate(); got != tc.wantRate {
			t.Errorf("Rate() at %d ticks/s = %d, expected %d", tc.rate, got, tc.wantRate)
		}
		if got := cfg.TickDuration(); got != tc.expected {
			t.Errorf("TickDuration() at %d ticks/s = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestScreenBounds(t *testing.T) {
	r := NewScreen(4, 3).Bounds()
	if r != NewRect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %+v, expected 4x3 at the origin", r)
	}
}

func TestFrame(t *testing.T) {
	f := Frame(ActionLeft, ActionRotate)
	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Errorf("Frame() missing actions: %v", f.Actions)
	}
	if f.Has(ActionRight) {
		t.Error("Frame() should not set ActionRight")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestEventString(t *testing.T) {
	e := Event{Kind: EventLinesCleared, Value: 2}
	if e.String() != "lines_cleared(2)" {
		t.Errorf("Event.String() = %q", e.String())
	}
}
