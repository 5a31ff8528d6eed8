package propui

import (
	"math"
	"testing"
)

func TestSliderFractionClamps(t *testing.T) {
	track := Rect{X: 0, Y: 0, W: 110, H: 13}
	tests := []struct {
		x    float32
		want float32
	}{
		{-50, 0},
		{5, 0},
		{55, 0.5},
		{105, 1},
		{500, 1},
	}
	for _, tt := range tests {
		if got := sliderFraction(tt.x, track, 10); !near(got, tt.want) {
			t.Errorf("sliderFraction(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSliderFractionDegenerateTrack(t *testing.T) {
	if got := sliderFraction(20, Rect{W: 6}, 6); got != 0 {
		t.Errorf("thumb as wide as the track should give 0, got %v", got)
	}
}

func TestIntThumbWidth(t *testing.T) {
	if got := intThumbWidth(110, 0, 10, 6); !near(got, 10) {
		t.Errorf("thumb for 0..10 on 110px = %v, want 10", got)
	}
	if got := intThumbWidth(110, 0, 1000, 6); got != 6 {
		t.Errorf("thumb should not go below the minimum, got %v", got)
	}
	if got := intThumbWidth(110, 5, 5, 6); !near(got, 110) {
		t.Errorf("single value should fill the track, got %v", got)
	}
}

func TestIntSliderRoundsHalfUp(t *testing.T) {
	track := Rect{X: 0, Y: 0, W: 110, H: 13}
	thumb := intThumbWidth(track.W, 0, 10, 6)

	// pointer offsets that put the unit offset at 0.55 and 0.49
	up := sliderFraction(10.5, track, thumb)
	down := sliderFraction(9.9, track, thumb)
	if got := intSliderValue(0, 10, up); got != 1 {
		t.Errorf("offset 0.55 should round to 1, got %d", got)
	}
	if got := intSliderValue(0, 10, down); got != 0 {
		t.Errorf("offset 0.49 should round to 0, got %d", got)
	}
}

func TestIntSliderValueRange(t *testing.T) {
	tests := []struct {
		min, max int
		f        float32
		want     int
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 2, 10},
		{-5, 5, 0.5, 0},
		{3, 3, 0.7, 3},
		{10, 0, 0.5, 10},
	}
	for _, tt := range tests {
		if got := intSliderValue(tt.min, tt.max, tt.f); got != tt.want {
			t.Errorf("intSliderValue(%d, %d, %v) = %d, want %d", tt.min, tt.max, tt.f, got, tt.want)
		}
	}
}

func TestValueFraction(t *testing.T) {
	if got := valueFraction(5, 0, 10); !near(got, 0.5) {
		t.Errorf("got %v", got)
	}
	if got := valueFraction(-1, 0, 10); got != 0 {
		t.Errorf("below range should clamp to 0, got %v", got)
	}
	if got := valueFraction(3, 2, 2); got != 0 {
		t.Errorf("empty range should give 0, got %v", got)
	}
}

func TestIntSliderExtremeBounds(t *testing.T) {
	if got := intSliderValue(math.MinInt, math.MaxInt, 0); got != math.MinInt {
		t.Errorf("fraction 0 = %d, want MinInt", got)
	}
	if got := intSliderValue(math.MinInt, math.MaxInt, 1); got != math.MaxInt {
		t.Errorf("fraction 1 = %d, want MaxInt", got)
	}
	if got := intSliderValue(math.MinInt, math.MaxInt, 0.5); got < -1<<53 || got > 1<<53 {
		t.Errorf("fraction 0.5 = %d, want near 0", got)
	}
	if got := intThumbWidth(110, math.MinInt, math.MaxInt, 6); got != 6 {
		t.Errorf("thumb width = %v, want the minimum", got)
	}
}
