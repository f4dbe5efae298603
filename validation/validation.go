// Package validation checks initial- and target-state token lists against
// the closed vocabulary the solver understands, before any of that ever
// reaches package state or solver. It rejects nonsensical requests early
// with a typed error rather than letting the solver discover them as, say,
// an overflowed DIY trit or a state that can never be reached.
package validation

import (
	"fmt"

	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
)

// Kind distinguishes the ways a candidate state token list can fail
// validation.
type Kind int

const (
	InvalidInitialState Kind = iota
	InvalidDesiredState
	ModesNotDefined
	DuplicateModes
	RelativeInInitial
	OpposingRelatives
)

func (k Kind) String() string {
	switch k {
	case InvalidInitialState:
		return "InvalidInitialState"
	case InvalidDesiredState:
		return "InvalidDesiredState"
	case ModesNotDefined:
		return "ModesNotDefined"
	case DuplicateModes:
		return "DuplicateModes"
	case RelativeInInitial:
		return "RelativeInInitial"
	case OpposingRelatives:
		return "OpposingRelatives"
	default:
		return "Unknown"
	}
}

// ValidationError reports why a state token list was rejected, alongside
// the offending token(s) where that's meaningful.
type ValidationError struct {
	Kind   Kind
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("validation: %s", e.Kind)
	}
	return fmt.Sprintf("validation: %s: %s", e.Kind, e.Detail)
}

// Validate applies the full contract to an (initial, desired) request:
// every token must be a known alias; initial must name exactly one mode per
// device and no relative-state token; desired must name at most one mode
// per device and no pair of opposing relative-state tokens.
func Validate(initial, desired []string) error {
	if !IsValidState(initial) {
		return &ValidationError{Kind: InvalidInitialState, Detail: "unknown token in initial state"}
	}
	if !AllModesDefined(initial) {
		return &ValidationError{Kind: ModesNotDefined, Detail: "initial state must name a mode for every device"}
	}
	if !NoDuplicateModeDefinitions(initial) {
		return &ValidationError{Kind: DuplicateModes, Detail: "initial state names more than one mode for a device"}
	}
	if !AbsoluteState(initial) {
		return &ValidationError{Kind: RelativeInInitial, Detail: "initial state must not contain relative-state tokens"}
	}

	if !IsValidState(desired) {
		return &ValidationError{Kind: InvalidDesiredState, Detail: "unknown token in target state"}
	}
	if !NoDuplicateModeDefinitions(desired) {
		return &ValidationError{Kind: DuplicateModes, Detail: "target state names more than one mode for a device"}
	}
	if !NoOpposingRelatives(desired) {
		return &ValidationError{Kind: OpposingRelatives, Detail: "target state names a pair of opposing relative-state tokens"}
	}

	return nil
}

// IsValidState reports whether every token is a known alias.
func IsValidState(tokens []string) bool {
	for _, t := range tokens {
		if !contains(catalog.CommandAliases, t) {
			return false
		}
	}
	return true
}

// AllModesDefined reports whether tokens names at least one mode for each
// of backled, frontled and potled.
func AllModesDefined(tokens []string) bool {
	backled, frontled, potled := countModeDefinitions(tokens)
	return backled >= 1 && frontled >= 1 && potled >= 1
}

// NoDuplicateModeDefinitions reports whether tokens names at most one mode
// per device.
func NoDuplicateModeDefinitions(tokens []string) bool {
	backled, frontled, potled := countModeDefinitions(tokens)
	return backled <= 1 && frontled <= 1 && potled <= 1
}

func countModeDefinitions(tokens []string) (backled, frontled, potled int) {
	for _, t := range tokens {
		if contains(catalog.BackledModes, t) {
			backled++
		}
		if contains(catalog.FrontledModes, t) {
			frontled++
		}
		if contains(catalog.PotledModes, t) {
			potled++
		}
	}
	return
}

// AbsoluteState reports whether tokens contains neither side of any
// opposing relative-state pair.
func AbsoluteState(tokens []string) bool {
	for _, pair := range catalog.RelativeStates {
		if contains(tokens, pair.A) || contains(tokens, pair.B) {
			return false
		}
	}
	return true
}

// NoOpposingRelatives reports whether tokens doesn't contain both sides of
// any opposing relative-state pair.
func NoOpposingRelatives(tokens []string) bool {
	for _, pair := range catalog.RelativeStates {
		if contains(tokens, pair.A) && contains(tokens, pair.B) {
			return false
		}
	}
	return true
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
