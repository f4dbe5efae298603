package cache

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
)

func TestSolutionCodecRoundTrip(t *testing.T) {
	tests := [][]catalog.Command{
		{catalog.BackOff},
		{catalog.FrontOnOff, catalog.BackledCommandFor(3)},
		{catalog.FrontOnOff, catalog.FrontFade7PotOn, catalog.FrontledCommandFor(5, false), catalog.FrontOnOff},
	}
	for _, solution := range tests {
		encoded := EncodeSolution(solution)
		got := decodeSolution(uint32(encoded))
		if len(got) != len(solution) {
			t.Fatalf("decodeSolution length = %d, want %d for %v", len(got), len(solution), solution)
		}
		for i := range solution {
			if got[i] != solution[i] {
				t.Errorf("solution[%d] = %v, want %v", i, got[i], solution[i])
			}
		}
	}
}

func TestEncodeStateCombinationIsDeterministic(t *testing.T) {
	s := state.ReadState(state.Initial(), []string{"backled r3", "frontled w2", "potled g4"})
	a := EncodeStateCombination(s, "backled g2")
	b := EncodeStateCombination(s, "backled g2")
	if a != b {
		t.Errorf("EncodeStateCombination not deterministic: %d != %d", a, b)
	}
	if other := EncodeStateCombination(s, "frontled g2"); other == a {
		t.Errorf("EncodeStateCombination collided across distinct targets: both %d", a)
	}
}

func TestGetReadsAppendedRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.bin")

	s := state.ReadState(state.Initial(), []string{"backled r3", "frontled w2", "potled g4"})
	solution := []catalog.Command{catalog.BackledCommandFor(6)}
	index := EncodeStateCombination(s, "backled g2")

	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(index))
	binary.BigEndian.PutUint32(buf[4:], uint32(EncodeSolution(solution)))
	if err := os.WriteFile(path, buf[:], 0644); err != nil {
		t.Fatalf("writing test cache file: %v", err)
	}

	c := Open(path)
	got, ok, err := c.Get([]string{"backled r3", "frontled w2", "potled g4"}, "backled g2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("Get did not find the appended record")
	}
	if len(got) != len(solution) || got[0] != solution[0] {
		t.Errorf("Get = %v, want %v", got, solution)
	}
}

func TestGetMissesUnknownCombination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.bin")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("writing empty cache file: %v", err)
	}

	c := Open(path)
	if _, ok, err := c.Get([]string{"backled r3", "frontled w2", "potled g4"}, "backled g2"); err != nil || ok {
		t.Errorf("Get on an empty cache file = (%v, %v), want a clean miss", ok, err)
	}
}

func TestGetTreatsMissingFileAsMiss(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "cache.bin"))
	if _, ok, err := c.Get([]string{"backled r3", "frontled w2", "potled g4"}, "backled g2"); err != nil || ok {
		t.Errorf("Get with no cache file = (%v, %v), want a clean miss", ok, err)
	}
}

func TestGetRejectsUncachedTargets(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "cache.bin"))
	for _, target := range []string{"frontled paused", "frontled unpaused", "frontled calibrate", "potled calibrate"} {
		if _, ok, err := c.Get([]string{"backled r3", "frontled w2", "potled g4"}, target); err != nil || ok {
			t.Errorf("Get(%q) should never report a hit", target)
		}
	}
}
