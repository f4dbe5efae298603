// Package solver ties the catalog, state, transition, heuristic, bfs and
// cache packages together into the single entry point a caller actually
// wants: given a starting set of tokens and a desired set of tokens, produce
// the shortest-known command sequence that carries one to the other.
package solver

import (
	"fmt"

	"github.com/ttahelenius/ir-command-overlap-solver/bfs"
	"github.com/ttahelenius/ir-command-overlap-solver/cache"
	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/heuristic"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
	"github.com/ttahelenius/ir-command-overlap-solver/transition"
)

// MaxStepsToCheck bounds how far the BFS refinement pass will look for a
// solution better than the heuristic's. Anything past 3 steps can take
// hours on pathological inputs, and the difference between a length-4 and a
// length-6 (the longest heuristic sequence) solution rarely matters to
// whoever's holding the remote.
const MaxStepsToCheck = 3

// Cache is consulted by Solve when useCache is true and desiredState names
// exactly one setting. It may be nil, in which case Solve behaves as if
// useCache were false.
var Cache *cache.Cache

// Solve finds a command sequence that carries initialState to desiredState.
// Both are given as token lists in the vocabulary ReadState understands
// (see state.ReadState). Returns an empty, non-nil slice if the states are
// already equivalent, and nil if no sequence could be found.
func Solve(initialState, desiredState []string, useCache bool) ([]catalog.Command, error) {
	if useCache && len(desiredState) == 1 && Cache != nil {
		cached, ok, err := Cache.Get(initialState, desiredState[0])
		if err != nil {
			return nil, fmt.Errorf("solver: cache lookup: %w", err)
		}
		if ok {
			return cached, nil
		}
	}

	decodedInitial := state.ReadState(state.Initial(), initialState)
	decodedDesired := state.ReadState(decodedInitial, desiredState)

	if special := handleSpecialCase(decodedInitial, decodedDesired); special != nil {
		return special, nil
	}

	if len(desiredState) == 1 && !state.IsSettingEffective(decodedInitial, desiredState[0]) {
		return []catalog.Command{}, nil
	}

	solution, err := solveInternal(decodedInitial, decodedDesired)
	if err != nil {
		return nil, err
	}
	return solution, nil
}

func solveInternal(initial, desired state.State) ([]catalog.Command, error) {
	if initial.Encode() == desired.Encode() {
		return []catalog.Command{}, nil
	}

	heuristicSolution := heuristic.Solve(initial, desired)

	limit := MaxStepsToCheck
	if heuristicSolution != nil {
		// Still worth a BFS pass for something shorter, but never beyond
		// MaxStepsToCheck: the risk of missing a marginally better solution
		// is worth not waiting days for it.
		if len(heuristicSolution)-1 < limit {
			limit = len(heuristicSolution) - 1
		}
	}

	solution := bfs.Solve(initial, desired, limit)
	if solution != nil {
		if !transition.IsSolution(solution, initial, desired) {
			return nil, fmt.Errorf("solver: bfs produced an invalid solution for state %d -> %d", initial.Encode(), desired.Encode())
		}
		return solution, nil
	}

	if heuristicSolution != nil {
		return heuristicSolution, nil
	}

	return nil, nil
}

// handleSpecialCase covers potled calibration, which needs an absurd number
// of repeated presses that aren't worth encoding into the graph BFS walks.
func handleSpecialCase(s, target state.State) []catalog.Command {
	if target.PotledCalibration != 1 {
		return nil
	}

	calibrationPhase := make([]catalog.Command, 17)
	for i := range calibrationPhase {
		calibrationPhase[i] = catalog.FrontDIY5PotR
	}

	next := transition.Apply(s, catalog.FrontDIY5PotR)
	stepsToReturn, err := solveInternal(next, s)
	if err == nil && stepsToReturn != nil {
		return append(calibrationPhase, stepsToReturn...)
	}
	return calibrationPhase
}
