// Package heuristic holds a short ordered list of hand-picked command
// sequences that cover the overwhelming majority of real requests in a
// handful of steps, so the much slower bounded BFS in package bfs only has
// to look for something shorter than the heuristic's answer. Every candidate is verified against the transition function
// before being returned; a candidate that doesn't actually reach endstate
// (or that contains a no-op step) is simply skipped.
package heuristic

import (
	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
	"github.com/ttahelenius/ir-command-overlap-solver/transition"
)

// Solve tries each candidate sequence in order and returns the first one
// that is a valid solution from start to target. Returns nil if none apply.
func Solve(start, target state.State) []catalog.Command {
	for _, attempt := range candidates(start, target) {
		if transition.IsSolution(attempt, start, target) {
			return attempt
		}
	}
	return nil
}

// candidates builds the ordered list of attempts worth checking for this
// particular (start, target) pair. Most entries are gated behind the same
// on/off/mode-equality conditions that make them plausible at all; building
// the full list up front keeps Solve itself a simple loop.
func candidates(s, e state.State) [][]catalog.Command {
	var out [][]catalog.Command

	if s.BackledOn == 1 && e.BackledOn == 0 {
		out = append(out, []catalog.Command{catalog.BackOff})
	}
	if s.BackledOn == 0 && e.BackledOn == 1 {
		out = append(out, []catalog.Command{catalog.BackOn})
	}
	if s.FrontledOn != e.FrontledOn {
		out = append(out, []catalog.Command{catalog.FrontOnOff})
	}
	if s.PotledOn == 1 && e.PotledOn == 0 {
		out = append(out, []catalog.Command{catalog.FrontFade3PotOff})
	}
	if s.PotledOn == 0 && e.PotledOn == 1 {
		out = append(out, []catalog.Command{catalog.FrontFade7PotOn})
	}

	if s.BackledOn == 1 && e.BackledOn == 1 && s.BackledMode != e.BackledMode {
		out = append(out, []catalog.Command{catalog.BackledCommandFor(e.BackledMode)})
	}

	if s.FrontledOn == 1 && e.FrontledOn == 1 && s.FrontledMode != e.FrontledMode {
		out = append(out, []catalog.Command{catalog.FrontledCommandFor(e.FrontledMode, false)})
		out = append(out, []catalog.Command{catalog.FrontledCommandFor(e.FrontledMode, true)})
	}

	if s.PotledOn == 1 && e.PotledOn == 1 && s.PotledMode != e.PotledMode {
		out = append(out, []catalog.Command{catalog.PotledCommandFor(e.PotledMode)})
	}

	if s.BackledOn == 1 && e.BackledOn == 1 && s.FrontledOn == 1 && e.FrontledOn == 1 && s.BackledMode != e.BackledMode {
		out = append(out, []catalog.Command{
			catalog.BackledCommandFor(e.BackledMode),
			catalog.FrontledCommandFor(e.FrontledMode, true),
		})
	}

	if s.FrontledOn == 1 && e.FrontledOn == 1 && s.PotledOn == 1 && e.PotledOn == 1 && s.PotledMode != e.PotledMode {
		out = append(out, []catalog.Command{
			catalog.PotledCommandFor(e.PotledMode),
			catalog.FrontledCommandFor(e.FrontledMode, false),
		})
	}

	if s.FrontledOn == 1 && e.FrontledOn == 1 && s.PotledOn == 1 && e.PotledOn == 1 && s.FrontledMode != e.FrontledMode {
		out = append(out, []catalog.Command{
			catalog.FrontledCommandFor(e.FrontledMode, true),
			catalog.PotledCommandFor(e.PotledMode),
		})
	}

	if s.BackledOn == 1 && e.BackledOn == 1 && s.FrontledOn == 1 && e.FrontledOn == 1 && s.FrontledMode != e.FrontledMode {
		out = append(out, []catalog.Command{
			catalog.BackOff,
			catalog.FrontledCommandFor(e.FrontledMode, false),
			catalog.BackOn,
		})
	}

	if s.FrontledOn == 1 && e.FrontledOn == 1 && s.PotledOn == 1 && e.PotledOn == 1 && s.PotledMode != e.PotledMode {
		out = append(out, []catalog.Command{
			catalog.FrontOnOff,
			catalog.PotledCommandFor(e.PotledMode),
			catalog.FrontOnOff,
		})
	}

	if s.BackledOn == 1 && e.BackledOn == 1 && s.FrontledOn == 1 && e.FrontledOn == 1 && s.BackledMode != e.BackledMode {
		out = append(out, []catalog.Command{
			catalog.FrontOnOff,
			catalog.BackledCommandFor(e.BackledMode),
			catalog.FrontOnOff,
		})
	}

	if s.FrontledOn == 1 && e.FrontledOn == 1 && s.PotledOn == 1 && e.PotledOn == 1 && s.FrontledMode != e.FrontledMode {
		out = append(out, []catalog.Command{
			catalog.FrontledCommandFor(e.FrontledMode, true),
			catalog.FrontOnOff,
			catalog.PotledCommandFor(e.PotledMode),
			catalog.FrontOnOff,
		})
	}

	if s.BackledOn == 1 && e.BackledOn == 1 && s.FrontledOn == 1 && e.FrontledOn == 1 && s.PotledOn == 1 && e.PotledOn == 1 && s.BackledMode != e.BackledMode {
		out = append(out, []catalog.Command{
			catalog.BackledCommandFor(e.BackledMode),
			catalog.FrontledCommandFor(e.FrontledMode, true),
			catalog.PotledCommandFor(e.PotledMode),
		})
		out = append(out, []catalog.Command{
			catalog.BackledCommandFor(e.BackledMode),
			catalog.FrontledCommandFor(e.FrontledMode, true),
			catalog.FrontOnOff,
			catalog.PotledCommandFor(e.PotledMode),
			catalog.FrontOnOff,
		})
	}

	if s.FrontledOn == 0 && e.FrontledOn == 0 && s.BackledMode != e.BackledMode {
		out = append(out, []catalog.Command{
			catalog.FrontOnOff,
			catalog.BackledCommandFor(e.BackledMode),
			catalog.FrontledCommandFor(e.FrontledMode, true),
			catalog.FrontOnOff,
		})
	}

	if s.PotledOn == 0 && e.PotledOn == 1 {
		if s.FrontledOn == 1 && e.FrontledOn == 1 {
			out = append(out, []catalog.Command{
				catalog.FrontFade7PotOn,
				catalog.FrontledCommandFor(e.FrontledMode, false),
			})
			out = append(out, []catalog.Command{
				catalog.FrontFade7PotOn,
				catalog.FrontledCommandFor(e.FrontledMode, true),
				catalog.PotledCommandFor(e.PotledMode),
			})
			out = append(out, []catalog.Command{
				catalog.FrontFade7PotOn,
				catalog.BackOff,
				catalog.FrontledCommandFor(e.FrontledMode, false),
				catalog.BackOn,
			})
			out = append(out, []catalog.Command{
				catalog.FrontFade7PotOn,
				catalog.FrontledCommandFor(e.FrontledMode, true),
				catalog.FrontOnOff,
				catalog.PotledCommandFor(e.PotledMode),
				catalog.FrontOnOff,
			})
		}
		if s.FrontledOn == 0 && e.FrontledOn == 0 {
			out = append(out, []catalog.Command{
				catalog.FrontOnOff,
				catalog.FrontFade7PotOn,
				catalog.FrontledCommandFor(e.FrontledMode, false),
				catalog.FrontOnOff,
			})
			out = append(out, []catalog.Command{
				catalog.FrontOnOff,
				catalog.FrontFade7PotOn,
				catalog.FrontledCommandFor(e.FrontledMode, true),
				catalog.FrontOnOff,
				catalog.PotledCommandFor(e.PotledMode),
			})
			out = append(out, []catalog.Command{
				catalog.FrontOnOff,
				catalog.FrontFade7PotOn,
				catalog.BackOff,
				catalog.FrontledCommandFor(e.FrontledMode, false),
				catalog.FrontOnOff,
				catalog.BackOn,
			})
		}
	}

	if e.BackledMode == 15 {
		if s.FrontledOn == 0 && e.FrontledOn == 0 {
			out = append(out, []catalog.Command{
				catalog.FrontOnOff,
				catalog.BackWFrontFade7,
				catalog.FrontledCommandFor(e.FrontledMode, true),
				catalog.FrontOnOff,
				catalog.PotledCommandFor(e.PotledMode),
			})
			out = append(out, []catalog.Command{
				catalog.FrontOnOff,
				catalog.BackWFrontFade7,
				catalog.BackOff,
				catalog.FrontledCommandFor(e.FrontledMode, false),
				catalog.BackOn,
				catalog.FrontOnOff,
			})
		}
		if s.FrontledOn == 1 && e.FrontledOn == 1 {
			out = append(out, []catalog.Command{
				catalog.BackWFrontFade7,
				catalog.BackOff,
				catalog.FrontledCommandFor(e.FrontledMode, false),
				catalog.BackOn,
			})
		}
	}

	return out
}
