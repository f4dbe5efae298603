// Package transition implements the single state-transition edge function:
// given a state and a command, what state results. It is the graph-edge
// half of the search space the solver explores; package state supplies the
// vertices.
package transition

import (
	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
)

// AvoidChangingRelativeStateNeedlessly controls what happens when a command
// is pressed a second time against a relative-state field that's already
// set to the opposite direction: true (the factory default) treats that as
// a forbidden move rather than silently resetting the field to neutral.
// Brightening can't be undone by dimming once a device is already at
// maximum, so once a relative direction is known, changing it is often
// worse than refusing the move and making the caller find another path.
const AvoidChangingRelativeStateNeedlessly = true

// Apply is the transition function: it returns the state that results from
// pressing command while in old. Apply never mutates old, is pure and
// total, and a "forbidden move" (one that would only disturb relative state
// without making progress) is signaled by returning old completely
// unchanged, including discarding any side effect that had already been
// written into a working copy before the forbidden check was reached.
func Apply(old state.State, command catalog.Command) state.State {
	next := old

	switch command {
	case catalog.FrontOnOff:
		next.FrontledOn = 1 - old.FrontledOn
		next.FrontledPaused = 0

	case catalog.FrontPlayPause:
		if old.FrontledOn == 1 {
			next.FrontledPaused = 1 - old.FrontledPaused
		}

	case catalog.FrontDim:
		if old.FrontledOn == 1 && old.FrontledMode < catalog.FrontledColorModes {
			if forbidden := stepTrit(&next.FrontledRelBrightness, old.FrontledRelBrightness, 2); forbidden {
				return old
			}
		}

	case catalog.FrontBrighten:
		if old.FrontledOn == 1 && old.FrontledMode < catalog.FrontledColorModes {
			if forbidden := stepTrit(&next.FrontledRelBrightness, old.FrontledRelBrightness, 1); forbidden {
				return old
			}
		}

	case catalog.FrontR:
		if old.FrontledOn == 1 {
			next.FrontledMode = 0
		}
	case catalog.FrontG:
		if old.FrontledOn == 1 {
			next.FrontledMode = 5
		}
	case catalog.FrontB:
		if old.FrontledOn == 1 {
			next.FrontledMode = 10
		}
	case catalog.FrontW:
		if old.FrontledOn == 1 {
			next.FrontledMode = 15
		}
	case catalog.FrontW2:
		if old.FrontledOn == 1 {
			next.FrontledMode = 16
		}
	case catalog.FrontW3:
		if old.FrontledOn == 1 {
			next.FrontledMode = 17
		}
	case catalog.FrontW4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 18
		}
	case catalog.FrontW5PotFade:
		if old.FrontledOn == 1 {
			next.FrontledMode = 19
		}
		if old.PotledOn == 1 {
			next.PotledMode = 17
		}

	case catalog.FrontB2:
		if old.FrontledOn == 1 {
			next.FrontledMode = 11
		}
	case catalog.FrontB3:
		if old.FrontledOn == 1 {
			next.FrontledMode = 12
		}
	case catalog.FrontB4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 13
		}
	case catalog.FrontB5PotB4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 14
		}
		if old.PotledOn == 1 {
			next.PotledMode = 13
		}

	case catalog.FrontG2:
		if old.FrontledOn == 1 {
			next.FrontledMode = 6
		}
	case catalog.FrontG3:
		if old.FrontledOn == 1 {
			next.FrontledMode = 7
		}
	case catalog.FrontG4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 8
		}
	case catalog.FrontG5PotR4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 9
		}
		if old.PotledOn == 1 {
			next.PotledMode = 3
		}

	case catalog.FrontR2:
		if old.FrontledOn == 1 {
			next.FrontledMode = 1
		}
	case catalog.FrontR3:
		if old.FrontledOn == 1 {
			next.FrontledMode = 2
		}
	case catalog.FrontR4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 3
		}
	case catalog.FrontR5PotG4:
		if old.FrontledOn == 1 {
			next.FrontledMode = 4
		}
		if old.PotledOn == 1 {
			next.PotledMode = 8
		}

	case catalog.FrontRUpPotG3, catalog.BackR5FrontRUp:
		if command == catalog.FrontRUpPotG3 && old.PotledOn == 1 {
			next.PotledMode = 7
		}
		if command == catalog.BackR5FrontRUp && old.BackledOn == 1 {
			next.BackledMode = 4
		}
		if forbidden := applyDIYChannel(&next, old, state.GetR, state.SetR, 1); forbidden {
			return old
		}

	case catalog.FrontRDownPotG5, catalog.BackR4FrontRDown:
		if command == catalog.FrontRDownPotG5 && old.PotledOn == 1 {
			next.PotledMode = 9
		}
		if command == catalog.BackR4FrontRDown && old.BackledOn == 1 {
			next.BackledMode = 3
		}
		if forbidden := applyDIYChannel(&next, old, state.GetR, state.SetR, 2); forbidden {
			return old
		}

	case catalog.FrontGUpPotR3, catalog.BackG5FrontGUp:
		if command == catalog.FrontGUpPotR3 && old.PotledOn == 1 {
			next.PotledMode = 2
		}
		if command == catalog.BackG5FrontGUp && old.BackledOn == 1 {
			next.BackledMode = 9
		}
		if forbidden := applyDIYChannel(&next, old, state.GetG, state.SetG, 1); forbidden {
			return old
		}

	case catalog.FrontGDownPotR5, catalog.BackG4FrontGDown:
		if command == catalog.FrontGDownPotR5 && old.PotledOn == 1 {
			next.PotledMode = 4
		}
		if command == catalog.BackG4FrontGDown && old.BackledOn == 1 {
			next.BackledMode = 8
		}
		if forbidden := applyDIYChannel(&next, old, state.GetG, state.SetG, 2); forbidden {
			return old
		}

	case catalog.FrontBUpPotB3, catalog.BackB5FrontBUp:
		if command == catalog.FrontBUpPotB3 && old.PotledOn == 1 {
			next.PotledMode = 12
		}
		if command == catalog.BackB5FrontBUp && old.BackledOn == 1 {
			next.BackledMode = 14
		}
		if forbidden := applyDIYChannel(&next, old, state.GetB, state.SetB, 1); forbidden {
			return old
		}

	case catalog.FrontBDownPotB5, catalog.BackB4FrontBDown:
		if command == catalog.FrontBDownPotB5 && old.PotledOn == 1 {
			next.PotledMode = 14
		}
		if command == catalog.BackB4FrontBDown && old.BackledOn == 1 {
			next.BackledMode = 13
		}
		if forbidden := applyDIYChannel(&next, old, state.GetB, state.SetB, 2); forbidden {
			return old
		}

	case catalog.FrontQuickPotStrobe, catalog.BackSmoothFrontQuick:
		if command == catalog.FrontQuickPotStrobe && old.PotledOn == 1 {
			next.PotledMode = 18
		}
		if command == catalog.BackSmoothFrontQuick && old.BackledOn == 1 {
			next.BackledMode = 16
		}
		if old.FrontledOn == 1 && old.FrontledMode >= catalog.FrontledColorModes {
			if forbidden := stepTrit(&next.FrontledRelSpeed, old.FrontledRelSpeed, 1); forbidden {
				return old
			}
		}

	case catalog.FrontSlowPotSmooth, catalog.BackFadeFrontSlow:
		if command == catalog.FrontSlowPotSmooth && old.PotledOn == 1 {
			next.PotledMode = 16
		}
		if command == catalog.BackFadeFrontSlow && old.BackledOn == 1 {
			next.BackledMode = 17
		}
		if old.FrontledOn == 1 && old.FrontledMode >= catalog.FrontledColorModes {
			if forbidden := stepTrit(&next.FrontledRelSpeed, old.FrontledRelSpeed, 2); forbidden {
				return old
			}
		}

	case catalog.FrontAutoPotFlash, catalog.BackStrobeFrontAuto:
		if command == catalog.FrontAutoPotFlash && old.PotledOn == 1 {
			next.PotledMode = 19
		}
		if command == catalog.BackStrobeFrontAuto && old.BackledOn == 1 {
			next.BackledMode = 18
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 26
			next.FrontledPaused = 0
		}

	case catalog.FrontDIY1PotG2, catalog.BackR3FrontDIY1:
		if command == catalog.FrontDIY1PotG2 && old.PotledOn == 1 {
			next.PotledMode = 6
		}
		if command == catalog.BackR3FrontDIY1 && old.BackledOn == 1 {
			next.BackledMode = 2
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 20
		}

	case catalog.FrontDIY2PotR2, catalog.BackG3FrontDIY2:
		if command == catalog.FrontDIY2PotR2 && old.PotledOn == 1 {
			next.PotledMode = 1
		}
		if command == catalog.BackG3FrontDIY2 && old.BackledOn == 1 {
			next.BackledMode = 7
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 21
		}

	case catalog.FrontDIY3PotB2, catalog.BackB3FrontDIY3:
		if command == catalog.FrontDIY3PotB2 && old.PotledOn == 1 {
			next.PotledMode = 11
		}
		if command == catalog.BackB3FrontDIY3 && old.BackledOn == 1 {
			next.BackledMode = 12
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 22
		}

	case catalog.FrontDIY4PotG, catalog.BackR2FrontDIY4:
		if command == catalog.FrontDIY4PotG && old.PotledOn == 1 {
			next.PotledMode = 5
		}
		if command == catalog.BackR2FrontDIY4 && old.BackledOn == 1 {
			next.BackledMode = 1
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 23
		}

	case catalog.FrontDIY5PotR, catalog.BackG2FrontDIY5:
		if command == catalog.FrontDIY5PotR && old.PotledOn == 1 {
			next.PotledMode = 0
		}
		if command == catalog.BackG2FrontDIY5 && old.BackledOn == 1 {
			next.BackledMode = 6
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 24
		}

	case catalog.FrontDIY6PotB, catalog.BackB2FrontDIY6:
		if command == catalog.FrontDIY6PotB && old.PotledOn == 1 {
			next.PotledMode = 10
		}
		if command == catalog.BackB2FrontDIY6 && old.BackledOn == 1 {
			next.BackledMode = 11
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 25
		}

	case catalog.FrontFlashPotW, catalog.BackFlashFrontFlash:
		if command == catalog.FrontFlashPotW && old.PotledOn == 1 {
			next.PotledMode = 15
		}
		if command == catalog.BackFlashFrontFlash && old.BackledOn == 1 {
			next.BackledMode = 19
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 27
			next.FrontledPaused = 0
		}

	case catalog.FrontFade3PotOff, catalog.BackBFrontFade3:
		if command == catalog.FrontFade3PotOff && old.PotledOn == 1 {
			next.PotledOn = 0
		}
		if command == catalog.BackBFrontFade3 && old.BackledOn == 1 {
			next.BackledMode = 10
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 30
			next.FrontledPaused = 0
		}

	case catalog.FrontFade7PotOn, catalog.BackWFrontFade7:
		if command == catalog.FrontFade7PotOn && old.PotledOn == 0 {
			next.PotledOn = 1
		}
		if command == catalog.BackWFrontFade7 && old.BackledOn == 1 {
			next.BackledMode = 15
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 31
			next.FrontledPaused = 0
		} else {
			// The front LED only advances its calibration cycle while off;
			// this is the remote's actual factory behavior, odd as it
			// looks, and is preserved rather than "fixed".
			next.FrontledCalibration = (old.FrontledCalibration + 1) % 6
		}

	case catalog.FrontJump3PotDown:
		if old.FrontledOn == 1 {
			next.FrontledMode = 28
			next.FrontledPaused = 0
		}
		if old.PotledOn == 1 {
			if old.PotledMode < catalog.PotledColorModes {
				if forbidden := stepTrit(&next.PotledRelBrightness, old.PotledRelBrightness, 2); forbidden {
					return old
				}
			} else {
				if forbidden := stepTrit(&next.PotledRelSpeed, old.PotledRelSpeed, 2); forbidden {
					return old
				}
			}
		}

	case catalog.FrontJump7PotUp:
		if old.FrontledOn == 1 {
			next.FrontledMode = 29
			next.FrontledPaused = 0
		}
		if old.PotledOn == 1 {
			if old.PotledMode < catalog.PotledColorModes {
				if forbidden := stepTrit(&next.PotledRelBrightness, old.PotledRelBrightness, 1); forbidden {
					return old
				}
			} else {
				if forbidden := stepTrit(&next.PotledRelSpeed, old.PotledRelSpeed, 1); forbidden {
					return old
				}
			}
		}

	case catalog.BackRFrontJump3:
		if old.BackledOn == 1 {
			next.BackledMode = 0
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 28
			next.FrontledPaused = 0
		}

	case catalog.BackGFrontJump7:
		if old.BackledOn == 1 {
			next.BackledMode = 5
		}
		if old.FrontledOn == 1 {
			next.FrontledMode = 29
			next.FrontledPaused = 0
		}

	case catalog.BackOn:
		next.BackledOn = 1

	case catalog.BackOff:
		next.BackledOn = 0

	case catalog.BackDown:
		if old.BackledOn == 1 {
			if old.BackledMode < catalog.BackledColorModes {
				if forbidden := stepTrit(&next.BackledRelBrightness, old.BackledRelBrightness, 2); forbidden {
					return old
				}
			} else {
				if forbidden := stepTrit(&next.BackledRelSpeed, old.BackledRelSpeed, 2); forbidden {
					return old
				}
			}
		}

	case catalog.BackUp:
		if old.BackledOn == 1 {
			if old.BackledMode < catalog.BackledColorModes {
				if forbidden := stepTrit(&next.BackledRelBrightness, old.BackledRelBrightness, 1); forbidden {
					return old
				}
			} else {
				if forbidden := stepTrit(&next.BackledRelSpeed, old.BackledRelSpeed, 1); forbidden {
					return old
				}
			}
		}
	}

	return next
}

// IsSolution replays solution from start and reports whether it lands
// exactly on target. A sequence that includes any step that doesn't change
// the state (a forbidden move, or a command with no effect from the state
// it's pressed in) is rejected outright, even if a later step would
// otherwise reach target: every step must make progress.
func IsSolution(solution []catalog.Command, start, target state.State) bool {
	cur := start
	for _, step := range solution {
		next := Apply(cur, step)
		if next == cur {
			return false
		}
		cur = next
	}
	return cur == target
}

// stepTrit applies the shared "0/1/2 relative state" forbidden-move rule to
// a single trit field: trying to move further in a direction already
// committed to is forbidden; trying to move the other way either resets to
// neutral or is itself forbidden, depending on
// AvoidChangingRelativeStateNeedlessly. field is written in place; the
// return value reports whether the move was forbidden (in which case field
// must be discarded by the caller returning old outright).
func stepTrit(field *int, cur int, trit int) (forbidden bool) {
	if cur == trit {
		return true
	}
	if cur == 0 {
		*field = trit
		return false
	}
	if AvoidChangingRelativeStateNeedlessly {
		return true
	}
	*field = 0
	return false
}

// applyDIYChannel generalizes the RGB-channel forbidden-move rule shared by
// the six RUP/RDOWN/GUP/GDOWN/BUP/BDOWN commands: it no-ops if the front LED
// isn't on a DIY slot, otherwise applies stepTrit's rule to whichever
// channel get/set address, on the DIY slot the front LED currently sits on.
func applyDIYChannel(next *state.State, old state.State, get func(int) int, set func(int, int) int, trit int) (forbidden bool) {
	if old.FrontledOn == 0 {
		return false
	}
	slot := state.ActiveDIYSlot(old.FrontledMode)
	if slot == 0 {
		return false
	}
	ptr := next.DIYSlot(slot)
	oldVal := get(*old.DIYSlot(slot))
	if oldVal == trit {
		return true
	}
	if oldVal == 0 {
		*ptr = set(*ptr, trit)
		return false
	}
	if AvoidChangingRelativeStateNeedlessly {
		return true
	}
	*ptr = set(*ptr, 0)
	return false
}
