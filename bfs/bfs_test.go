package bfs

import (
	"testing"

	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
)

func TestCommandSeriesEmpty(t *testing.T) {
	if got := DecodeCommandSeries(0); got != nil {
		t.Errorf("DecodeCommandSeries(0) = %v, want empty", got)
	}
}

func TestCommandSeriesSingle(t *testing.T) {
	encoded := EncodeCommandSeries(nil, 14)
	if encoded != 15 {
		t.Errorf("EncodeCommandSeries([], 14) = %d, want 15", encoded)
	}
	got := DecodeCommandSeries(encoded)
	if len(got) != 1 || got[0] != 14 {
		t.Errorf("DecodeCommandSeries(15) = %v, want [14]", got)
	}
}

func TestCommandSeriesFull(t *testing.T) {
	want := []int{14, 21, 1, 0, 0, 17, 20, 4, 0}
	encoded := EncodeCommandSeries(want[:len(want)-1], want[len(want)-1])
	got := DecodeCommandSeries(encoded)
	if len(got) != len(want) {
		t.Fatalf("DecodeCommandSeries length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCommandSeriesRoundTrip(t *testing.T) {
	tests := [][]int{
		nil,
		{0},
		{int(catalog.NumCommands) - 1},
		{0, 5, 12, int(catalog.NumCommands) - 1},
	}
	for _, series := range tests {
		var encoded uint64
		for _, c := range series {
			encoded = EncodeCommandSeries(DecodeCommandSeries(encoded), c)
		}
		got := DecodeCommandSeries(encoded)
		if len(got) != len(series) {
			t.Fatalf("DecodeCommandSeries length = %d, want %d (series %v)", len(got), len(series), series)
		}
		for i := range series {
			if got[i] != series[i] {
				t.Errorf("series[%d] = %d, want %d", i, got[i], series[i])
			}
		}
	}
}

func TestSolveFindsShortKnownPath(t *testing.T) {
	start := state.Initial()
	target := start
	target.BackledOn = 0

	solution := Solve(start, target, 3)
	if solution == nil {
		t.Fatalf("Solve found no path for a one-step-reachable target")
	}
	if len(solution) != 1 || solution[0] != catalog.BackOff {
		t.Errorf("Solve = %v, want [BackOff]", solution)
	}
}

func TestSolveRespectsZeroLimit(t *testing.T) {
	start := state.Initial()
	target := start
	target.BackledOn = 0

	if got := Solve(start, target, 0); got != nil {
		t.Errorf("Solve with limit 0 = %v, want nil", got)
	}
}

func TestSolveReturnsNilWhenUnreachableWithinLimit(t *testing.T) {
	start := state.Initial()
	target := state.Decode(start.Encode())
	target.BackledMode = 19
	target.FrontledMode = 31
	target.PotledMode = 19

	if got := Solve(start, target, 1); got != nil {
		t.Errorf("Solve with an insufficient limit = %v, want nil", got)
	}
}
