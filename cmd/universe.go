package main

import (
	"context"
	"fmt"
	"time"

	"hunter/internal/config"
	"hunter/internal/keyword"

	"github.com/spf13/cobra"
)

// universeCommand constructs the 'universe' subcommand that prints the
// current keyword universe, or just today's batch, without checking anything.
// Useful for verifying what a scheduled run would pick up.
func universeCommand(cfg *config.Config) *cobra.Command {
	var batchOnly bool

	cmd := &cobra.Command{
		Use:   "universe",
		Short: "Prints the keyword universe or today's batch",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			universe := keyword.BuildUniverse(ctx, buildSources(cfg), cfg.Hunt.Affixes, nil)

			labels := universe
			if batchOnly {
				batch := keyword.SelectBatch(universe, cfg.Hunt.BatchSize, time.Now())
				fmt.Printf("batch %d of %d (%d labels)\n", batch.Index+1, batch.Total, len(batch.Labels))
				labels = batch.Labels
			}
			for _, label := range labels {
				fmt.Println(label)
			}
		},
	}

	cmd.Flags().BoolVar(&batchOnly, "batch", false, "print only today's batch")

	return cmd
}
