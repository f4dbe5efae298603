// Package state defines the decoded device-state record, its mixed-radix
// packing into a single integer, and the handful of bit/trit-twiddling
// helpers the transition package builds on.
package state

import "github.com/ttahelenius/ir-command-overlap-solver/catalog"

// State is the full decoded state of all three devices. Zero value is not
// meaningful on its own; use Initial for the remote's power-on state.
type State struct {
	BackledOn      int // 0 = off, 1 = on
	FrontledOn     int // 0 = off, 1 = on
	PotledOn       int // 0 = off, 1 = on
	FrontledPaused int // 0 = unpaused, 1 = paused

	BackledMode  int // index in catalog.BackledModes
	FrontledMode int // index in catalog.FrontledModes
	PotledMode   int // index in catalog.PotledModes

	BackledRelBrightness  int // 0 = no change, 1 = increase, 2 = decrease
	FrontledRelBrightness int
	PotledRelBrightness   int

	BackledRelSpeed  int // 0 = no change, 1 = increase, 2 = decrease
	FrontledRelSpeed int
	PotledRelSpeed   int

	// FrontledDIYnRelRGB packs three independent trits (R, G, B channel
	// relative state) into one base-3 integer 0-26 via GetR/SetR/GetG/SetG/
	// GetB/SetB.
	FrontledDIY1RelRGB int
	FrontledDIY2RelRGB int
	FrontledDIY3RelRGB int
	FrontledDIY4RelRGB int
	FrontledDIY5RelRGB int
	FrontledDIY6RelRGB int

	FrontledCalibration int // steps into the 6-step calibration cycle

	// PotledCalibration is a standalone flag, not packed into Encode's
	// result: a calibration request isn't a resting state to search for or
	// cache against, just a one-shot instruction handled by the solver
	// before any encoding happens.
	PotledCalibration int
}

// Initial is the device's state immediately after power-on: everything on,
// unpaused, at the first mode of each device, with no relative state set.
func Initial() State {
	return State{
		BackledOn:  1,
		FrontledOn: 1,
		PotledOn:   1,
	}
}

// Mixed-radix place values, chained in field order: each weight is the
// product of every earlier field's radix. Declared as vars (not consts)
// since some depend on len() of the catalog mode tables.
var (
	weightBackledOn             uint64 = 1
	weightFrontledOn                   = weightBackledOn * 2
	weightPotledOn                     = weightFrontledOn * 2
	weightFrontledPaused               = weightPotledOn * 2
	weightBackledMode                  = weightFrontledPaused * 2
	weightFrontledMode                 = weightBackledMode * uint64(len(catalog.BackledModes))
	weightPotledMode                   = weightFrontledMode * uint64(len(catalog.FrontledModes))
	weightBackledRelBrightness         = weightPotledMode * uint64(len(catalog.PotledModes))
	weightFrontledRelBrightness        = weightBackledRelBrightness * 3
	weightPotledRelBrightness          = weightFrontledRelBrightness * 3
	weightBackledRelSpeed              = weightPotledRelBrightness * 3
	weightFrontledRelSpeed             = weightBackledRelSpeed * 3
	weightPotledRelSpeed               = weightFrontledRelSpeed * 3
	weightFrontledDIY1RelRGB           = weightPotledRelSpeed * 3
	weightFrontledDIY2RelRGB           = weightFrontledDIY1RelRGB * 27
	weightFrontledDIY3RelRGB           = weightFrontledDIY2RelRGB * 27
	weightFrontledDIY4RelRGB           = weightFrontledDIY3RelRGB * 27
	weightFrontledDIY5RelRGB           = weightFrontledDIY4RelRGB * 27
	weightFrontledDIY6RelRGB           = weightFrontledDIY5RelRGB * 27
	weightFrontledCalibration          = weightFrontledDIY6RelRGB * 27

	// MaxEncoded is one less than the full product of every field's radix:
	// the largest value Encode produces for a state whose fields are all
	// within their radix (see Encode for DIY values above 26).
	MaxEncoded = weightFrontledCalibration*6 - 1
)

// weightTable lists the place values in field order, paired with each
// field's radix, so Encode and Decode can iterate instead of repeating
// themselves per field.
type fieldWeight struct {
	weight uint64
	radix  uint64
}

func weightTable() []fieldWeight {
	return []fieldWeight{
		{weightBackledOn, 2},
		{weightFrontledOn, 2},
		{weightPotledOn, 2},
		{weightFrontledPaused, 2},
		{weightBackledMode, uint64(len(catalog.BackledModes))},
		{weightFrontledMode, uint64(len(catalog.FrontledModes))},
		{weightPotledMode, uint64(len(catalog.PotledModes))},
		{weightBackledRelBrightness, 3},
		{weightFrontledRelBrightness, 3},
		{weightPotledRelBrightness, 3},
		{weightBackledRelSpeed, 3},
		{weightFrontledRelSpeed, 3},
		{weightPotledRelSpeed, 3},
		{weightFrontledDIY1RelRGB, 27},
		{weightFrontledDIY2RelRGB, 27},
		{weightFrontledDIY3RelRGB, 27},
		{weightFrontledDIY4RelRGB, 27},
		{weightFrontledDIY5RelRGB, 27},
		{weightFrontledDIY6RelRGB, 27},
		{weightFrontledCalibration, 6},
	}
}

// fields returns pointers into s for every encoded field, in the same order
// as weightTable. PotledCalibration is deliberately absent: it is never
// encoded.
func (s *State) fields() []*int {
	return []*int{
		&s.BackledOn,
		&s.FrontledOn,
		&s.PotledOn,
		&s.FrontledPaused,
		&s.BackledMode,
		&s.FrontledMode,
		&s.PotledMode,
		&s.BackledRelBrightness,
		&s.FrontledRelBrightness,
		&s.PotledRelBrightness,
		&s.BackledRelSpeed,
		&s.FrontledRelSpeed,
		&s.PotledRelSpeed,
		&s.FrontledDIY1RelRGB,
		&s.FrontledDIY2RelRGB,
		&s.FrontledDIY3RelRGB,
		&s.FrontledDIY4RelRGB,
		&s.FrontledDIY5RelRGB,
		&s.FrontledDIY6RelRGB,
		&s.FrontledCalibration,
	}
}

// Encode packs s into its mixed-radix integer representation. The DIY trit
// fields are packed in whatever value they currently hold, including values
// above 26 from ReadState's accumulation. Encode does not validate, it only
// multiplies and sums.
func (s State) Encode() uint64 {
	var out uint64
	fields := s.fields()
	for i, fw := range weightTable() {
		out += fw.weight * uint64(*fields[i])
	}
	return out
}

// Decode is Encode's inverse: it recovers every encoded field from a packed
// integer. PotledCalibration is always 0 in the result, since it was never
// part of the encoding to begin with.
func Decode(encoded uint64) State {
	var s State
	fields := s.fields()
	for i, fw := range weightTable() {
		*fields[i] = int(encoded % fw.radix)
		encoded /= fw.radix
	}
	return s
}

// GetR returns the R-channel trit (0/1/2) packed into a DIY RGB integer.
func GetR(encoded int) int { return encoded % 3 }

// SetR returns encoded with its R-channel trit replaced by trit.
func SetR(encoded, trit int) int { return encoded - GetR(encoded) + trit }

// GetG returns the G-channel trit (0/1/2) packed into a DIY RGB integer.
func GetG(encoded int) int { return (encoded / 3) % 3 }

// SetG returns encoded with its G-channel trit replaced by trit.
func SetG(encoded, trit int) int { return encoded - GetG(encoded)*3 + trit*3 }

// GetB returns the B-channel trit (0/1/2) packed into a DIY RGB integer.
// Unlike R and G this channel is not masked: callers relying on the
// accumulative behavior of ReadState can push this past 2.
func GetB(encoded int) int { return encoded / 9 }

// SetB returns encoded with its B-channel trit replaced by trit.
func SetB(encoded, trit int) int { return encoded - GetB(encoded)*9 + trit*9 }

// DIYSlot returns a pointer to the RelRGB field for DIY slot n (1-6), or
// nil if n is out of range.
func (s *State) DIYSlot(n int) *int {
	switch n {
	case 1:
		return &s.FrontledDIY1RelRGB
	case 2:
		return &s.FrontledDIY2RelRGB
	case 3:
		return &s.FrontledDIY3RelRGB
	case 4:
		return &s.FrontledDIY4RelRGB
	case 5:
		return &s.FrontledDIY5RelRGB
	case 6:
		return &s.FrontledDIY6RelRGB
	}
	return nil
}

// ActiveDIYSlot returns the 1-6 DIY slot number the front LED currently
// sits on, or 0 if the front LED isn't on a DIY mode.
func ActiveDIYSlot(frontledMode int) int {
	if frontledMode < catalog.FrontledDIYModeBase || frontledMode >= catalog.FrontledDIYModeBase+6 {
		return 0
	}
	return frontledMode - catalog.FrontledDIYModeBase + 1
}

// IsSettingEffective reports whether requesting setting against s can take
// effect, used to short-circuit the solver for already-satisfied
// single-token targets before any search runs. On/off tokens are effective
// only when they differ from the device's power state; every other token is
// effective when its device is on (and, for relative tokens, in a matching
// color, effect or DIY mode). A mode token is not compared with the
// device's current mode, so naming the current mode still counts as
// effective.
func IsSettingEffective(s State, setting string) bool {
	switch setting {
	case "backled off":
		return s.BackledOn == 1
	case "backled on":
		return s.BackledOn == 0
	case "frontled off":
		return s.FrontledOn == 1
	case "frontled on":
		return s.FrontledOn == 0
	case "potled off":
		return s.PotledOn == 1
	case "potled on":
		return s.PotledOn == 0
	case "frontled slow", "frontled quick":
		return s.FrontledOn == 1 && s.FrontledMode >= catalog.FrontledColorModes
	case "frontled dim", "frontled bright":
		return s.FrontledOn == 1 && s.FrontledMode < catalog.FrontledColorModes
	case "backled slow", "backled quick":
		return s.BackledOn == 1 && s.BackledMode >= catalog.BackledColorModes
	case "backled dim", "backled bright":
		return s.BackledOn == 1 && s.BackledMode < catalog.BackledColorModes
	case "potled slow", "potled quick":
		return s.PotledOn == 1 && s.PotledMode >= catalog.PotledColorModes
	case "potled dim", "potled bright":
		return s.PotledOn == 1 && s.PotledMode < catalog.PotledColorModes
	case "frontled calibrate":
		return s.FrontledOn == 1
	case "potled calibrate":
		return s.PotledOn == 1
	}
	for n := 1; n <= 6; n++ {
		for _, dir := range []string{"rup", "rdown", "gup", "gdown", "bup", "bdown"} {
			if setting == catalog.DIYAlias(n, dir) {
				return s.FrontledOn == 1 && s.FrontledMode == catalog.FrontledDIYModeBase+n-1
			}
		}
	}
	if contains(catalog.BackledModes, setting) {
		return s.BackledOn == 1
	}
	if contains(catalog.FrontledModes, setting) {
		return s.FrontledOn == 1
	}
	if contains(catalog.PotledModes, setting) {
		return s.PotledOn == 1
	}
	return false
}

// ReadState applies a list of target-state tokens on top of initial,
// returning the resulting State. Tokens not recognized as any setting are
// silently ignored; validation rejects those earlier (package validation).
//
// DIY relative-RGB tokens add to the packed slot value rather than setting
// a channel, and nothing clamps the result: requesting both
// "frontled diy1 rup" and "frontled diy1 rdown" in the same target list
// adds 1+2, leaving the slot at 3 (R reads as 0 and the carry lands in G),
// not 2. Each distinct token adds its step once; a token listed more than
// once is counted once. Validation keeps pathological lists out.
func ReadState(initial State, given []string) State {
	s := initial

	if containsToken(given, "backled off") {
		s.BackledOn = 0
	}
	if containsToken(given, "backled on") {
		s.BackledOn = 1
	}
	if containsToken(given, "frontled off") {
		s.FrontledOn = 0
	}
	if containsToken(given, "frontled on") {
		s.FrontledOn = 1
	}
	if containsToken(given, "potled off") {
		s.PotledOn = 0
	}
	if containsToken(given, "potled on") {
		s.PotledOn = 1
	}
	if containsToken(given, "frontled unpaused") {
		s.FrontledPaused = 0
	}
	if containsToken(given, "frontled paused") {
		s.FrontledPaused = 1
	}

	for _, token := range given {
		if idx := indexOf(catalog.BackledModes, token); idx >= 0 {
			s.BackledMode = idx
		}
		if idx := indexOf(catalog.FrontledModes, token); idx >= 0 {
			s.FrontledMode = idx
		}
		if idx := indexOf(catalog.PotledModes, token); idx >= 0 {
			s.PotledMode = idx
		}
	}

	if containsToken(given, "backled bright") {
		s.BackledRelBrightness = 1
	}
	if containsToken(given, "backled dim") {
		s.BackledRelBrightness = 2
	}
	if containsToken(given, "frontled bright") {
		s.FrontledRelBrightness = 1
	}
	if containsToken(given, "frontled dim") {
		s.FrontledRelBrightness = 2
	}
	if containsToken(given, "potled bright") {
		s.PotledRelBrightness = 1
	}
	if containsToken(given, "potled dim") {
		s.PotledRelBrightness = 2
	}

	if containsToken(given, "backled quick") {
		s.BackledRelSpeed = 1
	}
	if containsToken(given, "backled slow") {
		s.BackledRelSpeed = 2
	}
	if containsToken(given, "frontled quick") {
		s.FrontledRelSpeed = 1
	}
	if containsToken(given, "frontled slow") {
		s.FrontledRelSpeed = 2
	}
	if containsToken(given, "potled quick") {
		s.PotledRelSpeed = 1
	}
	if containsToken(given, "potled slow") {
		s.PotledRelSpeed = 2
	}

	for n := 1; n <= 6; n++ {
		slot := s.DIYSlot(n)
		if containsToken(given, catalog.DIYAlias(n, "rup")) {
			*slot += 1
		}
		if containsToken(given, catalog.DIYAlias(n, "rdown")) {
			*slot += 2
		}
		if containsToken(given, catalog.DIYAlias(n, "gup")) {
			*slot += 3 * 1
		}
		if containsToken(given, catalog.DIYAlias(n, "gdown")) {
			*slot += 3 * 2
		}
		if containsToken(given, catalog.DIYAlias(n, "bup")) {
			*slot += 9 * 1
		}
		if containsToken(given, catalog.DIYAlias(n, "bdown")) {
			*slot += 9 * 2
		}
	}

	if containsToken(given, "frontled calibrate") {
		s.FrontledCalibration = 1
	}
	if containsToken(given, "potled calibrate") {
		s.PotledCalibration = 1
	}

	return s
}

func contains(list []string, s string) bool { return indexOf(list, s) >= 0 }

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func containsToken(list []string, s string) bool { return contains(list, s) }
