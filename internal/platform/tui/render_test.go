package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/sweeper-arcade/internal/core"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		order    core.ScoreOrder
		score    int
		expected string
	}{
		{core.ScoreLowerIsBetter, 0, "0s"},
		{core.ScoreLowerIsBetter, 59, "59s"},
		{core.ScoreLowerIsBetter, 61, "1m01s"},
		{core.ScoreLowerIsBetter, 999, "16m39s"},
		{core.ScoreHigherIsBetter, 1200, "1200"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.order, tc.score); got != tc.expected {
			t.Errorf("FormatScore(%v, %d) = %q, expected %q", tc.order, tc.score, got, tc.expected)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "12", core.ColorBrightBlue)
	s.DrawText(3, 0, "F")
	s.DrawTextColor(0, 1, "*", core.ColorNavy)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"12", "F", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorNavy; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
