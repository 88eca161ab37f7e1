package main

import (
	"fmt"

	"github.com/jordanlanch/calltracker/pkg/calltracking"
	"github.com/jordanlanch/calltracker/pkg/testdata"
	"github.com/spf13/cobra"
)

var (
	seedSources int
	seedCalls   int
	seedValue   int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake lead sources and calls",
	Long: `seed creates fake lead sources and replays fake inbound calls through
the same code path the webhook uses, so the dashboard charts have data.

Never run it against production.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		g := testdata.NewGenerator(seedValue)
		sources, err := g.SeedLeadSources(ctx, db.Ent, seedSources)
		if err != nil {
			return err
		}

		numbers := make([]string, len(sources))
		for i, s := range sources {
			numbers[i] = s.IncomingNumber
		}

		svc := calltracking.NewService(db.Ent, cfg.TwilioCountry)
		recorded, err := testdata.ReplayCalls(ctx, svc, g.GenerateCalls(testdata.DefaultCallConfig(seedCalls), numbers))
		if err != nil {
			return err
		}

		log.Info("database seeded", "lead_sources", len(sources), "leads", recorded)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedSources, "sources", 5, "number of lead sources to create")
	seedCmd.Flags().IntVar(&seedCalls, "calls", 200, "number of inbound calls to record")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed (0 picks one)")
}
