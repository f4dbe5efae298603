// Package bfs implements the bounded breadth-first search that backs the
// solver when the heuristic catalog doesn't already have a short answer. It
// also owns the variable-length encoding used to carry a candidate command
// path through the search frontier as a single integer instead of a slice,
// which keeps the frontier queue free of per-node allocations.
package bfs

import (
	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
	"github.com/ttahelenius/ir-command-overlap-solver/transition"
)

// commandSeriesBase is one more than the number of distinct commands:
// digit 0 is reserved to mean "no command here" (used as the encoding's
// terminator), digit c+1 denotes catalog.Command(c).
const commandSeriesBase = uint64(catalog.NumCommands) + 1

// EncodeCommandSeries encodes the decoded path series with command appended,
// returning the new encoded path. series is a list of command values as
// returned by DecodeCommandSeries (nil for the empty path).
func EncodeCommandSeries(series []int, command int) uint64 {
	var encoded uint64
	power := uint64(1)
	for _, c := range series {
		encoded += uint64(c+1) * power
		power *= commandSeriesBase
	}
	return encoded + uint64(command+1)*power
}

// DecodeCommandSeries unpacks an encoded path back into the ordered list of
// command values (in catalog.Command numeric form) that produced it.
func DecodeCommandSeries(encoded uint64) []int {
	var series []int
	for encoded > 0 {
		var mod uint64
		encoded, mod = encoded/commandSeriesBase, encoded%commandSeriesBase
		series = append(series, int(mod)-1)
	}
	return series
}

func toCommands(ints []int) []catalog.Command {
	cmds := make([]catalog.Command, len(ints))
	for i, c := range ints {
		cmds[i] = catalog.Command(c)
	}
	return cmds
}

type frontierNode struct {
	encodedState  uint64
	encodedSeries uint64
}

// Solve runs a breadth-first search from start to target, returning the
// first path found of length at most limit, or nil if none exists within
// that bound. A limit of 0 always returns nil without searching.
func Solve(start, target state.State, limit int) []catalog.Command {
	if limit == 0 {
		return nil
	}

	startEncoded := start.Encode()
	targetEncoded := target.Encode()

	visited := map[uint64]struct{}{}
	queue := []frontierNode{{encodedState: startEncoded, encodedSeries: 0}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		decodedSeries := DecodeCommandSeries(node.encodedSeries)
		visited[node.encodedState] = struct{}{}
		decodedState := state.Decode(node.encodedState)

		for c := catalog.Command(0); c < catalog.NumCommands; c++ {
			nextState := transition.Apply(decodedState, c).Encode()
			if _, seen := visited[nextState]; seen {
				continue
			}
			nextSeries := EncodeCommandSeries(decodedSeries, int(c))
			if nextState == targetEncoded {
				return toCommands(DecodeCommandSeries(nextSeries))
			}
			if len(decodedSeries) == limit-1 {
				continue
			}
			queue = append(queue, frontierNode{encodedState: nextState, encodedSeries: nextSeries})
		}
	}
	return nil
}
