package domain

import (
	"reflect"
	"testing"
)

func TestFindCapture(t *testing.T) {
	tests := []struct {
		name        string
		playedValue int
		table       []CardID
		want        []CardID
	}{
		{
			name:        "single card capture",
			playedValue: 10,
			table:       []CardID{4, 5}, // values 4, 5
			want:        []CardID{5},
		},
		{
			name:        "multi card capture",
			playedValue: 10,
			table:       []CardID{1, 4, 10}, // 1+4 = remainder 5
			want:        []CardID{1, 4},
		},
		{
			name:        "whole table capture",
			playedValue: 10,
			table:       []CardID{1, 11, 21, 2}, // 1+1+1+2 = 5
			want:        []CardID{1, 11, 21, 2},
		},
		{
			name:        "no subset matches",
			playedValue: 10,
			table:       []CardID{10, 20}, // values 10, 10
			want:        nil,
		},
		{
			name:        "empty table",
			playedValue: 7,
			table:       nil,
			want:        nil,
		},
		{
			name:        "first subset in bitmask order wins",
			playedValue: 10,
			table:       []CardID{5, 14, 1}, // {5}=5 beats {14,1}=4+1
			want:        []CardID{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCapture(tt.playedValue, tt.table)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindCapture(%d, %v) = %v, want %v", tt.playedValue, tt.table, got, tt.want)
			}
		})
	}
}

// A card worth the whole target must not capture on its own: the table has
// to shrink for a capture to count.
func TestFindCaptureZeroRemainder(t *testing.T) {
	if got := FindCapture(TargetSum, []CardID{1, 2, 3}); got != nil {
		t.Errorf("zero remainder captured %v, want nil", got)
	}
}

func TestFindCaptureDeterministic(t *testing.T) {
	table := []CardID{3, 12, 21, 6} // several subsets reach a sum of 5
	first := FindCapture(10, table)
	for i := 0; i < 50; i++ {
		if got := FindCapture(10, table); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d returned %v, first run returned %v", i, got, first)
		}
	}
}
