package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/slotarena/bst"
)

var (
	orderFlag = cli.StringFlag{
		Name:  "order",
		Usage: "key insertion order (asc, desc, hashed)",
		Value: orderHashed,
	}
	removeFlag = cli.IntFlag{
		Name:  "remove",
		Usage: "number of keys to remove after inserting, in insertion order",
		Value: 0,
	}
)

var Stats = cli.Command{
	Action: runStats,
	Name:   "stats",
	Usage:  "builds a tree and prints its shape and arena usage",
	Flags: []cli.Flag{
		&sizeFlag,
		&orderFlag,
		&removeFlag,
	},
}

type treeStats struct {
	Entries     int
	Height      int
	Slots       int
	FreeSlots   int
	Utilization float64
}

func runStats(ctx *cli.Context) error {
	log, err := loggerFromContext(ctx)
	if err != nil {
		return err
	}
	n := ctx.Int(sizeFlag.Name)
	remove := ctx.Int(removeFlag.Name)
	if n < 0 || remove < 0 || remove > n {
		return fmt.Errorf("need 0 <= remove <= n, got n=%d remove=%d", n, remove)
	}
	ks, err := keys(ctx.String(orderFlag.Name), n)
	if err != nil {
		return err
	}

	log.Debug("building tree", "n", n, "order", ctx.String(orderFlag.Name), "remove", remove)
	stats := buildStats(log, ks, remove)
	renderStats(ctx.App.Writer, stats)
	return nil
}

// buildStats inserts ks, removes the first remove of them, and reports the
// resulting tree. Colliding hashed keys are logged and skipped.
func buildStats(log *slog.Logger, ks []uint64, remove int) treeStats {
	t := bst.NewWithCapacity[uint64, int](len(ks))
	for i, k := range ks {
		if err := t.TryInsert(k, i); err != nil {
			log.Warn("skipping colliding key", "key", k, "err", err)
		}
	}
	for _, k := range ks[:remove] {
		t.Remove(k)
	}
	m := t.Arena()
	return treeStats{
		Entries:     t.Len(),
		Height:      t.Height(),
		Slots:       m.Slots,
		FreeSlots:   m.FreeSlots,
		Utilization: m.Utilization,
	}
}

func renderStats(w io.Writer, s treeStats) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Entries", "Height", "Slots", "Free Slots", "Utilization"})
	tw.AppendRow(table.Row{s.Entries, s.Height, s.Slots, s.FreeSlots, fmt.Sprintf("%.2f%%", s.Utilization*100)})
	tw.Render()
}
