package core

import "testing"

func TestScoreOrderBetter(t *testing.T) {
	tests := []struct {
		name     string
		order    ScoreOrder
		a, b     int
		expected bool
	}{
		{"higher wins", ScoreHigherIsBetter, 10, 5, true},
		{"higher loses", ScoreHigherIsBetter, 5, 10, false},
		{"lower wins", ScoreLowerIsBetter, 5, 10, true},
		{"lower loses", ScoreLowerIsBetter, 10, 5, false},
		{"tie is not better", ScoreLowerIsBetter, 7, 7, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.Better(tc.a, tc.b); got != tc.expected {
				t.Errorf("Better(%d, %d) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}
