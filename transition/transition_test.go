package transition

import (
	"testing"

	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
)

func TestApplyIsPure(t *testing.T) {
	old := state.Initial()
	snapshot := old
	Apply(old, catalog.FrontR3)
	if old != snapshot {
		t.Errorf("Apply mutated its input state: got %+v, want %+v", old, snapshot)
	}
}

func TestForbiddenMoveDiscardsPartialSideEffects(t *testing.T) {
	// BackSmoothFrontQuick writes next.BackledMode as a side effect before
	// its FrontledRelSpeed forbidden-move check runs. Drive FrontledRelSpeed
	// to "up" first via FrontQuickPotStrobe, then collide with
	// BackSmoothFrontQuick's own "up" step: the whole move must be
	// forbidden, so the BackledMode side effect it already wrote into its
	// working copy must not survive.
	s := state.Initial()
	s = Apply(s, catalog.FrontAutoPotFlash)   // frontled onto an effect mode (>= FrontledColorModes)
	s = Apply(s, catalog.FrontQuickPotStrobe) // commits FrontledRelSpeed to "up"

	before := s
	if before.BackledMode != 0 {
		t.Fatalf("setup assumption broken: BackledMode = %d, want 0", before.BackledMode)
	}

	after := Apply(s, catalog.BackSmoothFrontQuick)
	if after != before {
		t.Errorf("forbidden move leaked its BackledMode side effect: got %+v, want unchanged %+v", after, before)
	}
}

func TestBackledCommandForReachesTargetMode(t *testing.T) {
	s := state.Initial()
	for mode := range catalog.BackledModes {
		next := Apply(s, catalog.BackledCommandFor(mode))
		if next.BackledMode != mode {
			t.Errorf("BackledCommandFor(%d): got mode %d, want %d", mode, next.BackledMode, mode)
		}
	}
}

func TestFrontledCommandForReachesTargetMode(t *testing.T) {
	s := state.Initial()
	for mode := range catalog.FrontledModes {
		for _, overlap := range []bool{false, true} {
			next := Apply(s, catalog.FrontledCommandFor(mode, overlap))
			if next.FrontledMode != mode {
				t.Errorf("FrontledCommandFor(%d, %v): got mode %d, want %d", mode, overlap, next.FrontledMode, mode)
			}
		}
	}
}

func TestPotledCommandForReachesTargetMode(t *testing.T) {
	s := state.Initial()
	for mode := range catalog.PotledModes {
		next := Apply(s, catalog.PotledCommandFor(mode))
		if next.PotledMode != mode {
			t.Errorf("PotledCommandFor(%d): got mode %d, want %d", mode, next.PotledMode, mode)
		}
	}
}

func TestFrontOnOffClearsPause(t *testing.T) {
	s := state.Initial()
	s = Apply(s, catalog.FrontPlayPause)
	if s.FrontledPaused != 1 {
		t.Fatalf("expected paused after FrontPlayPause, got %+v", s)
	}
	s = Apply(s, catalog.FrontOnOff)
	if s.FrontledOn != 0 {
		t.Errorf("expected frontled off after FrontOnOff, got %d", s.FrontledOn)
	}
	if s.FrontledPaused != 0 {
		t.Errorf("expected pause cleared after FrontOnOff, got %d", s.FrontledPaused)
	}
}

func TestFadeSevenAdvancesCalibrationOnlyWhenFrontledOff(t *testing.T) {
	s := state.Initial()
	s.FrontledOn = 0

	next := Apply(s, catalog.FrontFade7PotOn)
	if next.FrontledCalibration != 1 {
		t.Errorf("FrontledCalibration = %d, want 1 when frontled is off", next.FrontledCalibration)
	}

	s.FrontledOn = 1
	next = Apply(s, catalog.FrontFade7PotOn)
	if next.FrontledCalibration != 0 {
		t.Errorf("FrontledCalibration = %d, want unchanged (0) when frontled is on", next.FrontledCalibration)
	}
	if next.FrontledMode != 31 {
		t.Errorf("FrontledMode = %d, want 31 when frontled is on", next.FrontledMode)
	}
}

func TestIsSolutionRejectsNoOpStep(t *testing.T) {
	start := state.Initial()
	start.BackledOn = 0
	target := Apply(start, catalog.BackOn)

	// BackOff is a no-op from an already-off backled: next == cur, so the
	// whole sequence must be rejected even though BackOn afterward would
	// reach target.
	solution := []catalog.Command{catalog.BackOff, catalog.BackOn}
	if IsSolution(solution, start, target) {
		t.Errorf("IsSolution accepted a sequence containing a no-op step")
	}
}

func TestIsSolutionAcceptsValidSequence(t *testing.T) {
	start := state.Initial()
	target := Apply(start, catalog.BackOff)
	if !IsSolution([]catalog.Command{catalog.BackOff}, start, target) {
		t.Errorf("IsSolution rejected a valid single-step solution")
	}
}
