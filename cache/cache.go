// Package cache reads the precomputed solution file built by
// cmd/cachebuild. It holds no solving logic of its own; it only knows how to
// turn an (initial state, target token) pair into a combo index, scan the
// file for a record with that index and decode the command sequence stored
// in it, trying the device-toggling optimization before the exact
// combination.
package cache

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
	"github.com/ttahelenius/ir-command-overlap-solver/transition"
)

// recordSize is the fixed width of one cache entry: a 4-byte big-endian
// combo index followed by a 4-byte big-endian encoded solution.
const recordSize = 8

// seriesBase mirrors bfs.commandSeriesBase: digit 0 means "no command",
// digit c+1 denotes catalog.Command(c).
const seriesBase = uint32(catalog.NumCommands) + 1

// TargetStates is the fixed, ordered list of single-setting tokens the
// cache was built against. Its order defines the combo-index encoding, so
// it must never change without rebuilding cache.bin.
var TargetStates = buildTargetStates()

func buildTargetStates() []string {
	var out []string
	out = append(out, catalog.BackledModes...)
	out = append(out, catalog.FrontledModes...)
	out = append(out, catalog.PotledModes...)
	for _, pair := range catalog.RelativeStates {
		out = append(out, pair.A)
	}
	for _, pair := range catalog.RelativeStates {
		out = append(out, pair.B)
	}
	out = append(out, "backled off", "backled on", "frontled off", "frontled on", "potled off", "potled on")
	return out
}

func indexOfTarget(target string) int {
	for i, t := range TargetStates {
		if t == target {
			return i
		}
	}
	return -1
}

// uncachedTargets lists target tokens that are never written to the cache
// file; Get reports a miss for them without reading it. "potled calibrate"
// is answered by solver.handleSpecialCase, and the other three are solved
// afresh through the ordinary heuristic and BFS path.
var uncachedTargets = map[string]bool{
	"frontled paused":    true,
	"frontled unpaused":  true,
	"frontled calibrate": true,
	"potled calibrate":   true,
}

// Cache is a read handle onto an append-only cache.bin file, sorted
// ascending by combo index. Multiple readers may use the same file
// concurrently; cmd/cachebuild is solely responsible for serializing
// writers.
type Cache struct {
	path string
}

// Open returns a Cache backed by the file at path. The file is opened fresh
// for each Get call, so Open itself never touches the filesystem.
func Open(path string) *Cache {
	return &Cache{path: path}
}

// DefaultPath returns the conventional cache.bin location, beside the
// running executable. Both cmd/ledremote and cmd/cachebuild use it, so the
// file the builder writes is the file the solver later reads. Falls back to
// the bare filename if the executable path can't be resolved.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "cache.bin"
	}
	return filepath.Join(filepath.Dir(exe), "cache.bin")
}

// Get returns the cached command sequence to reach target from the state
// described by initialStates, if one is on file. A missing cache file is a
// miss; any other I/O failure is returned so the caller can fall back to
// solving without the cache.
func (c *Cache) Get(initialStates []string, target string) ([]catalog.Command, bool, error) {
	if uncachedTargets[target] {
		return nil, false, nil
	}

	decodedInitial := state.ReadState(state.Initial(), initialStates)
	decodedDesired := state.ReadState(decodedInitial, []string{target})

	return c.getInternal(decodedInitial, decodedDesired, target)
}

func (c *Cache) getInternal(initial, desired state.State, target string) ([]catalog.Command, bool, error) {
	if initial.BackledOn == 1 && target != "backled off" && target != "backled on" {
		altInitial, altDesired := initial, desired
		altInitial.BackledOn, altDesired.BackledOn = 0, 0
		candidate, ok, err := c.getInternal(altInitial, altDesired, target)
		if err != nil {
			return nil, false, err
		}
		if ok && transition.IsSolution(candidate, initial, desired) {
			return candidate, true, nil
		}
	}
	if initial.FrontledOn == 1 && target != "frontled off" && target != "frontled on" {
		altInitial, altDesired := initial, desired
		altInitial.FrontledOn, altDesired.FrontledOn = 0, 0
		candidate, ok, err := c.getInternal(altInitial, altDesired, target)
		if err != nil {
			return nil, false, err
		}
		if ok && transition.IsSolution(candidate, initial, desired) {
			return candidate, true, nil
		}
	}
	if initial.PotledOn == 1 && target != "potled off" && target != "potled on" {
		altInitial, altDesired := initial, desired
		altInitial.PotledOn, altDesired.PotledOn = 0, 0
		candidate, ok, err := c.getInternal(altInitial, altDesired, target)
		if err != nil {
			return nil, false, err
		}
		if ok && transition.IsSolution(candidate, initial, desired) {
			return candidate, true, nil
		}
	}

	return c.lookup(initial, target)
}

func (c *Cache) lookup(initial state.State, target string) ([]catalog.Command, bool, error) {
	want := EncodeStateCombination(initial, target)

	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: opening %s: %w", c.path, err)
	}
	defer f.Close()

	var buf [recordSize]byte
	for {
		_, err := io.ReadFull(f, buf[:])
		if err == io.EOF {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("cache: reading %s: %w", c.path, err)
		}
		index := binary.BigEndian.Uint32(buf[:4])
		if uint64(index) == want {
			return decodeSolution(binary.BigEndian.Uint32(buf[4:])), true, nil
		}
		if uint64(index) > want {
			return nil, false, nil
		}
	}
}

// EncodeStateCombination packs (initial device modes and on/off statuses,
// target token) into the single mixed-radix index the cache file is keyed
// by.
func EncodeStateCombination(initial state.State, target string) uint64 {
	targetIndex := indexOfTarget(target)
	if targetIndex < 0 {
		panic(fmt.Sprintf("cache: unknown target token %q", target))
	}

	index := uint64(0)
	index = uint64(initial.BackledMode) + index*uint64(len(catalog.BackledModes))
	index = uint64(initial.FrontledMode) + index*uint64(len(catalog.FrontledModes))
	index = uint64(initial.PotledMode) + index*uint64(len(catalog.PotledModes))
	index = uint64(targetIndex) + index*uint64(len(TargetStates))
	index = uint64(initial.BackledOn) + index*2
	index = uint64(initial.FrontledOn) + index*2
	index = uint64(initial.PotledOn) + index*2
	return index
}

// EncodeSolution packs a command sequence into a single integer, in reverse
// command order: the last command is the least significant digit and the
// first command the most significant one, so for a long solution the first
// command's value decides whether the result still fits in 4 bytes.
func EncodeSolution(solution []catalog.Command) uint64 {
	var encoded uint64
	power := uint64(1)
	for i := len(solution) - 1; i >= 0; i-- {
		encoded += uint64(solution[i]+1) * power
		power *= uint64(seriesBase)
	}
	return encoded
}

func decodeSolution(encoded uint32) []catalog.Command {
	var reversed []catalog.Command
	e := encoded
	for e > 0 {
		mod := e % seriesBase
		e /= seriesBase
		if mod > 0 {
			reversed = append(reversed, catalog.Command(mod-1))
		}
	}
	solution := make([]catalog.Command, len(reversed))
	for i, c := range reversed {
		solution[len(reversed)-1-i] = c
	}
	return solution
}
