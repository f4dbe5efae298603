// Command ledremote finds a shortest-known IR command sequence that carries
// a set of LED devices from an initial state to a desired one, working
// around undocumented command side effects along the way.
//
// Usage:
//
//	ledremote <initial-state> <target-state> [--machine-readable] [--use-cache]
//	                                          [--avoid-overwhelm] [--await-repeats]
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ttahelenius/ir-command-overlap-solver/cache"
	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/solver"
	"github.com/ttahelenius/ir-command-overlap-solver/validation"
)

const (
	awaitRepeats = "*Await repeats*"
	delayMarker  = "*Delay*"
)

func main() {
	machineReadable := pflag.Bool("machine-readable", false, "only print the solution, one command per line")
	useCache := pflag.Bool("use-cache", false, "consult cache.bin before solving")
	avoidOverwhelm := pflag.Bool("avoid-overwhelm", false, "suggest *Delay* between consecutive hits on the same device")
	awaitRepeatsFlag := pflag.Bool("await-repeats", false, "suggest *Await repeats* after commands matching the target's relative state")
	pflag.Parse()

	if pflag.NArg() != 2 {
		log.Fatalf("Arguments: (initial state) (desired state) [--machine-readable] [--use-cache] [--avoid-overwhelm] [--await-repeats]")
	}

	initialArg, desiredArg := pflag.Arg(0), pflag.Arg(1)
	initialState := separate(initialArg)
	desiredArg = catalog.ConvertTargetState(desiredArg, initialState)
	desiredState := separate(desiredArg)

	if *useCache {
		solver.Cache = cache.Open(cache.DefaultPath())
	}

	if err := validation.Validate(initialState, desiredState); err != nil {
		log.Fatalf("%s", validationMessage(err))
	}

	commandSeries, err := solver.Solve(initialState, desiredState, *useCache)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if commandSeries == nil {
		if !*machineReadable {
			fmt.Println("Not a single solution found!")
		}
		return
	}

	if !*machineReadable {
		fmt.Println("Solution found!")
		fmt.Println("Execute the following commands in order:")
	}

	printCommandSeries(commandSeries, desiredArg, *machineReadable, *avoidOverwhelm, *awaitRepeatsFlag)
}

func separate(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func validationMessage(err error) string {
	ve, ok := err.(*validation.ValidationError)
	if !ok {
		return err.Error()
	}
	switch ve.Kind {
	case validation.InvalidInitialState:
		return "Invalid initial state"
	case validation.InvalidDesiredState:
		return "Invalid desired end state"
	case validation.ModesNotDefined:
		return "Define all modes"
	case validation.DuplicateModes:
		return "No duplicate modes allowed!"
	case validation.RelativeInInitial:
		return "Relative state not allowed as initial"
	case validation.OpposingRelatives:
		return "Simultaneous opposite states not allowed"
	default:
		return err.Error()
	}
}

func printCommandSeries(commandSeries []catalog.Command, desiredState string, machineReadable, avoidOverwhelm, awaitRepeatsOn bool) {
	var backledToggled, frontledToggled, potledToggled bool
	justAwaitedRepeats := false
	relevantForRepeats := catalog.GetCommandsForRelativeState(desiredState)

	for _, command := range commandSeries {
		effects := catalog.Commands[command]

		if avoidOverwhelm {
			addDelay := false
			touches := []string{effects.Primary}
			if effects.HasSide() {
				touches = append(touches, effects.Side)
			}
			if anyHasPrefix(touches, "backled ") {
				if backledToggled && !justAwaitedRepeats {
					addDelay = true
				}
				backledToggled = true
			}
			if anyHasPrefix(touches, "frontled ") {
				if frontledToggled && !justAwaitedRepeats {
					addDelay = true
				}
				frontledToggled = true
			}
			if anyHasPrefix(touches, "potled ") {
				if potledToggled && !justAwaitedRepeats {
					addDelay = true
				}
				potledToggled = true
			}
			if addDelay {
				fmt.Println(delayMarker)
			}
		}

		justAwaitedRepeats = false

		if machineReadable || !effects.HasSide() {
			fmt.Println(effects.Primary)
		} else {
			fmt.Printf("%s (side-effect: %s)\n", effects.Primary, effects.Side)
		}

		if awaitRepeatsOn && containsCommand(relevantForRepeats, command) {
			fmt.Println(awaitRepeats)
			justAwaitedRepeats = true
		}
	}

	if avoidOverwhelm && (backledToggled || frontledToggled || potledToggled) {
		fmt.Println(delayMarker)
	}
}

func anyHasPrefix(strs []string, prefix string) bool {
	for _, s := range strs {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func containsCommand(cmds []catalog.Command, c catalog.Command) bool {
	for _, cmd := range cmds {
		if cmd == c {
			return true
		}
	}
	return false
}
