package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/slotarena/bst"
)

var scenarioNameFlag = cli.StringFlag{
	Name:  "name",
	Usage: "scenario to run: a (ascending inserts), b (descending inserts, ascending removals), c (hashed keys)",
	Value: "a",
}

var Scenario = cli.Command{
	Action: runScenario,
	Name:   "scenario",
	Usage:  "runs an end-to-end check against a fresh tree",
	Flags: []cli.Flag{
		&scenarioNameFlag,
		&sizeFlag,
	},
}

type scenarioFunc func(log *slog.Logger, n int) error

var scenarios = map[string]scenarioFunc{
	"a": ascendingScenario,
	"b": descendingRemovalScenario,
	"c": hashedScenario,
}

func runScenario(ctx *cli.Context) error {
	log, err := loggerFromContext(ctx)
	if err != nil {
		return err
	}
	name := strings.ToLower(ctx.String(scenarioNameFlag.Name))
	run, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	n := ctx.Int(sizeFlag.Name)
	if n <= 0 {
		return fmt.Errorf("n must be positive, got %d", n)
	}

	log = log.With("scenario", name, "n", n)
	if err := run(log, n); err != nil {
		log.Error("scenario failed", "err", err)
		return err
	}
	log.Info("scenario passed")
	return nil
}

// ascendingScenario inserts 0..n-1 in order with value 2*key, then checks a
// lookup in the middle and the sorted dump.
func ascendingScenario(log *slog.Logger, n int) error {
	t := bst.New[int, int]()
	for k := range n {
		t.Insert(k, 2*k)
	}
	log.Debug("inserted", "height", t.Height())

	mid := n / 2
	if v, ok := t.Search(mid); !ok || v != 2*mid {
		return fmt.Errorf("search(%d) = %d, %t; want %d, true", mid, v, ok, 2*mid)
	}
	values := t.Values()
	if len(values) != n {
		return fmt.Errorf("sorted dump has %d values, want %d", len(values), n)
	}
	if !slices.IsSorted(values) {
		return fmt.Errorf("sorted dump is not ascending")
	}
	return nil
}

// descendingRemovalScenario inserts n-1..0, then removes 0..n-1 checking each
// removed value and that the key is gone afterwards.
func descendingRemovalScenario(log *slog.Logger, n int) error {
	t := bst.New[int, int]()
	for k := n - 1; k >= 0; k-- {
		t.Insert(k, 2*k)
	}
	log.Debug("inserted", "height", t.Height())

	for k := range n {
		v, ok := t.Remove(k)
		if !ok || v != 2*k {
			return fmt.Errorf("remove(%d) = %d, %t; want %d, true", k, v, ok, 2*k)
		}
		if _, ok := t.Search(k); ok {
			return fmt.Errorf("search(%d) found a removed key", k)
		}
	}
	if t.Len() != 0 {
		return fmt.Errorf("tree holds %d entries after removing every key", t.Len())
	}
	log.Debug("removed all", "arena", t.Arena())
	return nil
}

// hashedScenario inserts hash-derived keys and compares the in-order walk with
// the inserted pairs sorted by key.
func hashedScenario(log *slog.Logger, n int) error {
	ks, err := keys(orderHashed, n)
	if err != nil {
		return err
	}

	type pair struct {
		k uint64
		v int
	}
	t := bst.New[uint64, int]()
	want := make([]pair, 0, n)
	for i, k := range ks {
		if err := t.TryInsert(k, i); err != nil {
			log.Warn("skipping colliding key", "key", k, "err", err)
			continue
		}
		want = append(want, pair{k, i})
	}
	log.Debug("inserted", "height", t.Height())
	slices.SortFunc(want, func(a, b pair) int { return cmp.Compare(a.k, b.k) })

	i := 0
	for k, v := range t.All() {
		if i >= len(want) {
			return fmt.Errorf("walk yielded more than %d entries", len(want))
		}
		if k != want[i].k || v != want[i].v {
			return fmt.Errorf("entry %d = (%d, %d), want (%d, %d)", i, k, v, want[i].k, want[i].v)
		}
		i++
	}
	if i != len(want) {
		return fmt.Errorf("walk yielded %d entries, want %d", i, len(want))
	}
	return nil
}
