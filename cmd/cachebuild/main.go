// Command cachebuild enumerates every reachable (backled mode, frontled
// mode, potled mode, on/off combination) x target-token combination and
// appends any solution that took longer than cacheSlowerThanMS to compute
// to cache.bin, in ascending combo-index order.
//
// This takes hours, plausibly days, to run to completion. It exists so that
// cmd/ledremote's --use-cache flag has something to read; it is not meant
// to run as part of normal operation.
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ttahelenius/ir-command-overlap-solver/cache"
	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
	"github.com/ttahelenius/ir-command-overlap-solver/solver"
	"github.com/ttahelenius/ir-command-overlap-solver/state"
	"github.com/ttahelenius/ir-command-overlap-solver/transition"
)

// cacheSlowerThanMS is the threshold above which a solution is worth
// caching at all; anything faster isn't worth the disk space.
const cacheSlowerThanMS = 200

var onOff = [2]string{"off", "on"}

func main() {
	path := cache.DefaultPath()
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	i := 0
	cachedAmount := 0

	for _, backledMode := range catalog.BackledModes {
		for _, frontledMode := range catalog.FrontledModes {
			var lines []record
			for _, potledMode := range catalog.PotledModes {
				start := time.Now()
				for _, target := range cache.TargetStates {
					if target == backledMode || target == frontledMode || target == potledMode {
						i += 8
						continue
					}

					solutions := seedSolutions(target)

					for _, backledStatus := range onOff {
						for _, frontledStatus := range onOff {
							for _, potledStatus := range onOff {
								i++

								initialTokens := []string{
									backledMode, frontledMode, potledMode,
									"backled " + backledStatus,
									"frontled " + frontledStatus,
									"potled " + potledStatus,
								}
								decodedInitial := state.ReadState(state.Initial(), initialTokens)
								if !state.IsSettingEffective(decodedInitial, target) {
									continue
								}
								decodedDesired := state.ReadState(decodedInitial, []string{target})

								var solution []catalog.Command
								for _, candidate := range solutions {
									if transition.IsSolution(candidate, decodedInitial, decodedDesired) {
										solution = candidate
										break
									}
								}

								if solution == nil {
									st := time.Now()
									found, err := solver.Solve(initialTokens, []string{target}, false)
									if err != nil {
										log.Fatalf("%v", err)
									}
									solution = found
									if time.Since(st) > cacheSlowerThanMS*time.Millisecond {
										cachedAmount++
										lines = append(lines, record{
											index:   uint32(i - 1),
											encoded: uint32(cache.EncodeSolution(solution)),
										})
									}
								}
								if solution == nil {
									log.Fatalf("no solution for %v -> %s", initialTokens, target)
								}
								solutions = append(solutions, solution)
							}
						}
					}
				}
				fmt.Printf("All states handled for %s, %s, %s in %s  (i = %d; to be cached so far: %d)\n",
					backledMode, frontledMode, potledMode, time.Since(start), i, cachedAmount)
			}

			if err := appendLocked(path, lines); err != nil {
				log.Fatalf("%v", err)
			}
		}
	}
}

type record struct {
	index   uint32
	encoded uint32
}

// seedSolutions pre-populates the per-target candidate set with the known
// relative-state commands for that target, so the much slower general
// solver.Solve path is only reached when those don't already work. This
// is what keeps a multi-hour enumeration from resolving the same short
// relative-state moves thousands of times.
func seedSolutions(target string) [][]catalog.Command {
	var out [][]catalog.Command
	for _, c := range catalog.GetCommandsForRelativeState(target) {
		out = append(out, []catalog.Command{c})
	}
	return out
}

// appendLocked takes an advisory flock on path for the duration of the
// append, so cache.bin can safely have a single writer even if something
// else is building a different portion of it concurrently.
func appendLocked(path string, lines []record) error {
	if len(lines) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cachebuild: opening %s: %w", path, err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("cachebuild: locking %s: %w", path, err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	buf := make([]byte, 8*len(lines))
	for i, l := range lines {
		binary.BigEndian.PutUint32(buf[i*8:], l.index)
		binary.BigEndian.PutUint32(buf[i*8+4:], l.encoded)
	}
	_, err = f.Write(buf)
	return err
}
