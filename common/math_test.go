package common

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(0.45, 0.05, 0); got != 0.45 {
		t.Fatalf("expected start value, got %v", got)
	}
	if got := Lerp(0, 1, 0.5); got != 0.5 {
		t.Fatalf("expected midpoint, got %v", got)
	}
}
