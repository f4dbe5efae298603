// Package catalog defines the enumerated constants that the rest of this
// module builds on: the 68 remote-control commands, the three devices' mode
// lists, the relative-state pairs, and the lookup tables used to turn a
// desired mode into the command that reaches it.
//
// Nothing in this package has behavior beyond lookup. It owns no mutable
// state and performs no I/O.
package catalog

// Command is a single remote-control button press. Each command has a
// primary effect on one device and, for roughly half the commands, a side
// effect on a second device (see Effects).
type Command int

// The 68 commands, in the order the physical remote exposes them. Button
// codes that hit two devices at once are named for both: e.g.
// BackR5FrontRUp sets the back LED to red5 as its primary effect and nudges
// the front LED's R channel up as its side effect.
const (
	FrontOnOff Command = iota
	FrontPlayPause
	FrontDim
	FrontBrighten
	FrontR
	FrontG
	FrontB
	FrontW
	FrontW2
	FrontW3
	FrontW4
	FrontW5PotFade
	FrontB2
	FrontB3
	FrontB4
	FrontB5PotB4
	FrontG2
	FrontG3
	FrontG4
	FrontG5PotR4
	FrontR2
	FrontR3
	FrontR4
	FrontR5PotG4
	FrontRUpPotG3
	FrontRDownPotG5
	FrontGUpPotR3
	FrontGDownPotR5
	FrontBUpPotB3
	FrontBDownPotB5
	FrontQuickPotStrobe
	FrontSlowPotSmooth
	FrontAutoPotFlash
	FrontDIY1PotG2
	FrontDIY2PotR2
	FrontDIY3PotB2
	FrontDIY4PotG
	FrontDIY5PotR
	FrontDIY6PotB
	FrontFlashPotW
	FrontJump3PotDown
	FrontJump7PotUp
	FrontFade3PotOff
	FrontFade7PotOn
	BackR5FrontRUp
	BackR4FrontRDown
	BackG5FrontGUp
	BackG4FrontGDown
	BackB5FrontBUp
	BackB4FrontBDown
	BackSmoothFrontQuick
	BackFadeFrontSlow
	BackStrobeFrontAuto
	BackR3FrontDIY1
	BackG3FrontDIY2
	BackB3FrontDIY3
	BackR2FrontDIY4
	BackG2FrontDIY5
	BackB2FrontDIY6
	BackFlashFrontFlash
	BackRFrontJump3
	BackGFrontJump7
	BackBFrontFade3
	BackWFrontFade7
	BackOn
	BackOff
	BackDown
	BackUp

	// NumCommands is the count of distinct commands (68). The command-path
	// codec in package bfs uses base NumCommands+1: a path digit of 0 is
	// reserved as "no command", so digit c+1 denotes Command(c).
	NumCommands
)

// Effect is one half of a command's published behavior: a human-readable
// string naming what it does to one device, e.g. "frontled r5". Most are
// also CommandAliases tokens; some, such as "frontled onoff" or
// "potled up", are not.
type Effect = string

// Effects is the (primary, side) pair of effect strings for a command. Side
// is empty when the command has no side effect.
type Effects struct {
	Primary Effect
	Side    Effect
}

// HasSide reports whether the command carries a side effect.
func (e Effects) HasSide() bool {
	return e.Side != ""
}

// Commands maps every command to its published primary/side effect pair.
var Commands = map[Command]Effects{
	FrontOnOff:           {"frontled onoff", ""},
	FrontPlayPause:       {"frontled playpause", ""},
	FrontDim:             {"frontled dim", ""},
	FrontBrighten:        {"frontled bright", ""},
	FrontR:               {"frontled r", ""},
	FrontG:               {"frontled g", ""},
	FrontB:               {"frontled b", ""},
	FrontW:               {"frontled w", ""},
	FrontW2:              {"frontled w2", ""},
	FrontW3:              {"frontled w3", ""},
	FrontW4:              {"frontled w4", ""},
	FrontW5PotFade:       {"frontled w5", "potled fade"},
	FrontB2:              {"frontled b2", ""},
	FrontB3:              {"frontled b3", ""},
	FrontB4:              {"frontled b4", ""},
	FrontB5PotB4:         {"frontled b5", "potled b4"},
	FrontG2:              {"frontled g2", ""},
	FrontG3:              {"frontled g3", ""},
	FrontG4:              {"frontled g4", ""},
	FrontG5PotR4:         {"frontled g5", "potled r4"},
	FrontR2:              {"frontled r2", ""},
	FrontR3:              {"frontled r3", ""},
	FrontR4:              {"frontled r4", ""},
	FrontR5PotG4:         {"frontled r5", "potled g4"},
	FrontRUpPotG3:        {"frontled rup", "potled g3"},
	FrontRDownPotG5:      {"frontled rdown", "potled g5"},
	FrontGUpPotR3:        {"frontled gup", "potled r3"},
	FrontGDownPotR5:      {"frontled gdown", "potled r5"},
	FrontBUpPotB3:        {"frontled bup", "potled b3"},
	FrontBDownPotB5:      {"frontled bdown", "potled b5"},
	FrontQuickPotStrobe:  {"frontled quick", "potled strobe"},
	FrontSlowPotSmooth:   {"frontled slow", "potled smooth"},
	FrontAutoPotFlash:    {"frontled auto", "potled flash"},
	FrontDIY1PotG2:       {"frontled diy1", "potled g2"},
	FrontDIY2PotR2:       {"frontled diy2", "potled r2"},
	FrontDIY3PotB2:       {"frontled diy3", "potled b2"},
	FrontDIY4PotG:        {"frontled diy4", "potled g"},
	FrontDIY5PotR:        {"frontled diy5", "potled r"},
	FrontDIY6PotB:        {"frontled diy6", "potled b"},
	FrontFlashPotW:       {"frontled flash", "potled w"},
	FrontJump3PotDown:    {"frontled jump3", "potled down"},
	FrontJump7PotUp:      {"frontled jump7", "potled up"},
	FrontFade3PotOff:     {"frontled fade3", "potled off"},
	FrontFade7PotOn:      {"frontled fade7", "potled on"},
	BackR5FrontRUp:       {"backled r5", "frontled rup"},
	BackR4FrontRDown:     {"backled r4", "frontled rdown"},
	BackG5FrontGUp:       {"backled g5", "frontled gup"},
	BackG4FrontGDown:     {"backled g4", "frontled gdown"},
	BackB5FrontBUp:       {"backled b5", "frontled bup"},
	BackB4FrontBDown:     {"backled b4", "frontled bdown"},
	BackSmoothFrontQuick: {"backled smooth", "frontled quick"},
	BackFadeFrontSlow:    {"backled fade", "frontled slow"},
	BackStrobeFrontAuto:  {"backled strobe", "frontled auto"},
	BackR3FrontDIY1:      {"backled r3", "frontled diy1"},
	BackG3FrontDIY2:      {"backled g3", "frontled diy2"},
	BackB3FrontDIY3:      {"backled b3", "frontled diy3"},
	BackR2FrontDIY4:      {"backled r2", "frontled diy4"},
	BackG2FrontDIY5:      {"backled g2", "frontled diy5"},
	BackB2FrontDIY6:      {"backled b2", "frontled diy6"},
	BackFlashFrontFlash:  {"backled flash", "frontled flash"},
	BackRFrontJump3:      {"backled r", "frontled jump3"},
	BackGFrontJump7:      {"backled g", "frontled jump7"},
	BackBFrontFade3:      {"backled b", "frontled fade3"},
	BackWFrontFade7:      {"backled w", "frontled fade7"},
	BackOn:               {"backled on", ""},
	BackOff:              {"backled off", ""},
	BackDown:             {"backled dim", ""},
	BackUp:               {"backled bright", ""},
}

// CommandAliases is the closed vocabulary of tokens a caller may use in an
// initial or target state string. Every token here is either a
// mode string (present in one of the three *Modes lists), an on/off/pause
// setting, a relative-state string, or a calibration request.
var CommandAliases = buildCommandAliases()

func buildCommandAliases() []string {
	aliases := []string{
		"frontled on", "frontled off",
		"frontled paused", "frontled unpaused",
		"frontled dim", "frontled bright",
		"frontled w", "frontled w2", "frontled w3", "frontled w4", "frontled w5",
		"frontled b", "frontled b2", "frontled b3", "frontled b4", "frontled b5",
		"frontled g", "frontled g2", "frontled g3", "frontled g4", "frontled g5",
		"frontled r", "frontled r2", "frontled r3", "frontled r4", "frontled r5",
		"frontled diy1", "frontled diy2", "frontled diy3",
		"frontled diy4", "frontled diy5", "frontled diy6",
	}
	for _, dir := range []string{"rup", "rdown", "gup", "gdown", "bup", "bdown"} {
		for n := 1; n <= 6; n++ {
			aliases = append(aliases, DIYAlias(n, dir))
		}
	}
	aliases = append(aliases,
		"frontled quick", "frontled slow",
		"frontled auto", "frontled flash",
		"frontled jump3", "frontled jump7", "frontled fade3", "frontled fade7",

		"backled on", "backled off",
		"backled dim", "backled bright",
		"backled quick", "backled slow",
		"backled r", "backled r2", "backled r3", "backled r4", "backled r5",
		"backled g", "backled g2", "backled g3", "backled g4", "backled g5",
		"backled b", "backled b2", "backled b3", "backled b4", "backled b5",
		"backled w",
		"backled flash", "backled smooth", "backled fade", "backled strobe",

		"potled on", "potled off",
		"potled dim", "potled bright",
		"potled quick", "potled slow",
		"potled r", "potled r2", "potled r3", "potled r4", "potled r5",
		"potled g", "potled g2", "potled g3", "potled g4", "potled g5",
		"potled b", "potled b2", "potled b3", "potled b4", "potled b5",
		"potled w",
		"potled flash", "potled smooth", "potled fade", "potled strobe",

		"frontled calibrate", "potled calibrate",
	)
	return aliases
}

func DIYAlias(n int, dir string) string {
	return "frontled diy" + itoa(n) + " " + dir
}

func itoa(n int) string {
	return string(rune('0' + n))
}

// BackledModes lists the back LED's mode tokens in device-index order.
// Indices [0, BackledColorModes) are solid colors; the rest are effects.
var BackledModes = []string{
	"backled r", "backled r2", "backled r3", "backled r4", "backled r5",
	"backled g", "backled g2", "backled g3", "backled g4", "backled g5",
	"backled b", "backled b2", "backled b3", "backled b4", "backled b5",
	"backled w",
	"backled smooth",
	"backled fade",
	"backled strobe",
	"backled flash",
}

// BackledColorModes is the count of BackledModes entries that are solid
// colors rather than effects (indices [0, BackledColorModes)).
const BackledColorModes = 16

// FrontledModes lists the front LED's mode tokens in device-index order.
// Indices [0, FrontledColorModes) are solid colors; 20-25 are the six DIY
// slots; the rest are effects.
var FrontledModes = []string{
	"frontled r", "frontled r2", "frontled r3", "frontled r4", "frontled r5",
	"frontled g", "frontled g2", "frontled g3", "frontled g4", "frontled g5",
	"frontled b", "frontled b2", "frontled b3", "frontled b4", "frontled b5",
	"frontled w", "frontled w2", "frontled w3", "frontled w4", "frontled w5",
	"frontled diy1", "frontled diy2", "frontled diy3",
	"frontled diy4", "frontled diy5", "frontled diy6",
	"frontled auto",
	"frontled flash",
	"frontled jump3",
	"frontled jump7",
	"frontled fade3",
	"frontled fade7",
}

// FrontledColorModes is the count of FrontledModes entries that are solid
// colors (indices [0, FrontledColorModes)).
const FrontledColorModes = 20

// FrontledDIYModeBase is the device-mode index of the first DIY slot
// ("frontled diy1"). Slot n (1-6) occupies index FrontledDIYModeBase+n-1.
const FrontledDIYModeBase = 20

// PotledModes lists the pot LED's mode tokens in device-index order.
// Indices [0, PotledColorModes) are solid colors; the rest are effects.
var PotledModes = []string{
	"potled r", "potled r2", "potled r3", "potled r4", "potled r5",
	"potled g", "potled g2", "potled g3", "potled g4", "potled g5",
	"potled b", "potled b2", "potled b3", "potled b4", "potled b5",
	"potled w",
	"potled smooth",
	"potled fade",
	"potled strobe",
	"potled flash",
}

// PotledColorModes is the count of PotledModes entries that are solid
// colors (indices [0, PotledColorModes)).
const PotledColorModes = 16

// BackledCommandFor returns the command that drives the back LED directly
// to the given device-mode index.
func BackledCommandFor(mode int) Command {
	return []Command{
		BackRFrontJump3,
		BackR2FrontDIY4,
		BackR3FrontDIY1,
		BackR4FrontRDown,
		BackR5FrontRUp,
		BackGFrontJump7,
		BackG2FrontDIY5,
		BackG3FrontDIY2,
		BackG4FrontGDown,
		BackG5FrontGUp,
		BackBFrontFade3,
		BackB2FrontDIY6,
		BackB3FrontDIY3,
		BackB4FrontBDown,
		BackB5FrontBUp,
		BackWFrontFade7,
		BackSmoothFrontQuick,
		BackFadeFrontSlow,
		BackStrobeFrontAuto,
		BackFlashFrontFlash,
	}[mode]
}

// FrontledCommandFor returns the command that drives the front LED directly
// to the given device-mode index. When potledOverlap is false, the DIY and
// effect-mode commands whose side effect would otherwise land on the pot
// LED are swapped for their back-LED-side-effect equivalents (used when the
// pot LED is already at the desired mode and should not be disturbed). The
// color modes have no such equivalent: FrontR5PotG4, FrontG5PotR4,
// FrontB5PotB4 and FrontW5PotFade are returned for either value.
func FrontledCommandFor(mode int, potledOverlap bool) Command {
	type pair struct{ withPot, withoutPot Command }
	pairs := []pair{
		{FrontR, FrontR},
		{FrontR2, FrontR2},
		{FrontR3, FrontR3},
		{FrontR4, FrontR4},
		{FrontR5PotG4, FrontR5PotG4},
		{FrontG, FrontG},
		{FrontG2, FrontG2},
		{FrontG3, FrontG3},
		{FrontG4, FrontG4},
		{FrontG5PotR4, FrontG5PotR4},
		{FrontB, FrontB},
		{FrontB2, FrontB2},
		{FrontB3, FrontB3},
		{FrontB4, FrontB4},
		{FrontB5PotB4, FrontB5PotB4},
		{FrontW, FrontW},
		{FrontW2, FrontW2},
		{FrontW3, FrontW3},
		{FrontW4, FrontW4},
		{FrontW5PotFade, FrontW5PotFade},
		{FrontDIY1PotG2, BackR3FrontDIY1},
		{FrontDIY2PotR2, BackG3FrontDIY2},
		{FrontDIY3PotB2, BackB3FrontDIY3},
		{FrontDIY4PotG, BackR2FrontDIY4},
		{FrontDIY5PotR, BackG2FrontDIY5},
		{FrontDIY6PotB, BackB2FrontDIY6},
		{FrontAutoPotFlash, BackStrobeFrontAuto},
		{FrontFlashPotW, BackFlashFrontFlash},
		{FrontJump3PotDown, BackRFrontJump3},
		{FrontJump7PotUp, BackGFrontJump7},
		{FrontFade3PotOff, BackBFrontFade3},
		{FrontFade7PotOn, BackWFrontFade7},
	}
	p := pairs[mode]
	if potledOverlap {
		return p.withPot
	}
	return p.withoutPot
}

// PotledCommandFor returns the command that drives the pot LED directly to
// the given device-mode index.
func PotledCommandFor(mode int) Command {
	return []Command{
		FrontDIY5PotR,
		FrontDIY2PotR2,
		FrontGUpPotR3,
		FrontG5PotR4,
		FrontGDownPotR5,
		FrontDIY4PotG,
		FrontDIY1PotG2,
		FrontRUpPotG3,
		FrontR5PotG4,
		FrontRDownPotG5,
		FrontDIY6PotB,
		FrontDIY3PotB2,
		FrontBUpPotB3,
		FrontB5PotB4,
		FrontBDownPotB5,
		FrontFlashPotW,
		FrontSlowPotSmooth,
		FrontW5PotFade,
		FrontQuickPotStrobe,
		FrontAutoPotFlash,
	}[mode]
}

// RelativeStatePair names two opposing relative-state tokens, e.g.
// ("frontled dim", "frontled bright").
type RelativeStatePair struct {
	A, B string
}

// RelativeStates is the unordered set of opposite relative-state token
// pairs. A target state may request at most one side of any pair (see
// validation.NoOpposingRelatives).
var RelativeStates = buildRelativeStates()

func buildRelativeStates() []RelativeStatePair {
	pairs := []RelativeStatePair{
		{"frontled slow", "frontled quick"},
		{"backled slow", "backled quick"},
		{"potled slow", "potled quick"},
		{"frontled dim", "frontled bright"},
		{"backled dim", "backled bright"},
		{"potled dim", "potled bright"},
	}
	for n := 1; n <= 6; n++ {
		pairs = append(pairs,
			RelativeStatePair{DIYAlias(n, "rup"), DIYAlias(n, "rdown")},
			RelativeStatePair{DIYAlias(n, "gup"), DIYAlias(n, "gdown")},
			RelativeStatePair{DIYAlias(n, "bup"), DIYAlias(n, "bdown")},
		)
	}
	return pairs
}

// GetCommandsForRelativeState returns the command(s) that move the named
// relative-state token, in preference order. Used by cmd/ledremote's
// --await-repeats annotation and by cmd/cachebuild to seed known-good
// candidates before falling back to a full solve.
func GetCommandsForRelativeState(state string) []Command {
	switch state {
	case "backled slow", "backled dim":
		return []Command{BackDown}
	case "backled quick", "backled bright":
		return []Command{BackUp}
	case "potled slow", "potled dim":
		return []Command{FrontJump3PotDown}
	case "potled quick", "potled bright":
		return []Command{FrontJump7PotUp}
	case "frontled dim":
		return []Command{FrontDim}
	case "frontled bright":
		return []Command{FrontBrighten}
	case "frontled slow":
		return []Command{FrontSlowPotSmooth, BackFadeFrontSlow}
	case "frontled quick":
		return []Command{FrontQuickPotStrobe, BackSmoothFrontQuick}
	}
	for n := 1; n <= 6; n++ {
		switch state {
		case DIYAlias(n, "rup"):
			return []Command{FrontRUpPotG3, BackR5FrontRUp}
		case DIYAlias(n, "rdown"):
			return []Command{FrontRDownPotG5, BackR4FrontRDown}
		case DIYAlias(n, "gup"):
			return []Command{FrontGUpPotR3, BackG5FrontGUp}
		case DIYAlias(n, "gdown"):
			return []Command{FrontGDownPotR5, BackG4FrontGDown}
		case DIYAlias(n, "bup"):
			return []Command{FrontBUpPotB3, BackB5FrontBUp}
		case DIYAlias(n, "bdown"):
			return []Command{FrontBDownPotB5, BackB4FrontBDown}
		}
	}
	return nil
}

// ConvertTargetState rewrites a target-state token that only makes sense
// relative to the initial state. initialStates is the
// caller's initial-state token list, not a decoded state, since this is the
// external pre-pass that runs before state.ReadState.
func ConvertTargetState(target string, initialStates []string) string {
	if target == "frontled playpause" {
		if contains(initialStates, "frontled paused") {
			return "frontled unpaused"
		}
		return "frontled paused"
	}

	for _, dir := range []string{"rup", "rdown", "gup", "gdown", "bup", "bdown"} {
		if target != "frontled "+dir {
			continue
		}
		for n := 1; n <= 6; n++ {
			if contains(initialStates, "frontled diy"+itoa(n)) {
				return DIYAlias(n, dir)
			}
		}
	}

	switch target {
	case "backled dim":
		if effectModeInitial(initialStates, BackledModes, BackledColorModes) {
			return "backled slow"
		}
	case "backled bright":
		if effectModeInitial(initialStates, BackledModes, BackledColorModes) {
			return "backled quick"
		}
	case "potled dim":
		if effectModeInitial(initialStates, PotledModes, PotledColorModes) {
			return "potled slow"
		}
	case "potled bright":
		if effectModeInitial(initialStates, PotledModes, PotledColorModes) {
			return "potled quick"
		}
	}
	return target
}

// effectModeInitial reports whether initialStates names a mode of modes
// that is not one of the device's leading color modes (i.e. an effect mode
// such as "smooth"/"fade"/"strobe"/"flash").
func effectModeInitial(initialStates, modes []string, colorModes int) bool {
	for _, s := range initialStates {
		if idx := indexOf(modes, s); idx >= 0 && idx >= colorModes {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	return indexOf(list, s) >= 0
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
