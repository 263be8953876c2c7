package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/hexpass/hexpass/internal/proptest"
	"github.com/spf13/cobra"
)

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Start a continuous testing workload",
	Long:  "Start a continuous testing workload. The workload runs indefinitely, deriving passwords from randomized word lists and verifying that every derivation satisfies the documented guarantees.",
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger(cmd.Flags())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger = logger.With("run_id", uuid.NewString())

		// Verify that any flags we'll need later are well-formed.
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			logger.Error("seed flag invalid", "err", err)
			os.Exit(1)
		}

		src := rand.NewPCG(rand.Uint64(), rand.Uint64())
		if seed != 0 {
			src = rand.NewPCG(seed, seed)
			logger.Info("using fixed seed", "seed", seed)
		}
		r := rand.New(src)
		logger.Info("setup complete")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case <-sig:
				os.Exit(0)
			default:
				deriveAndVerify(logger, r)
			}
		}
	},
}

func deriveAndVerify(logger *slog.Logger, r *rand.Rand) {
	// Generate a large, randomized batch of derivation trials.
	trials := proptest.GenTrials(r)

	// Run the trials and collect the results.
	proptest.RunTrials(logger, trials)

	// Check whether any result violates the derivation guarantees.
	progress, err := proptest.CheckTrials(trials)
	if err != nil {
		logger.Error("derivation check failed", "err", err)
		var verr *proptest.Violation
		if errors.As(err, &verr) {
			// Log everything needed to replay the failing trial.
			logger.Error("violating trial",
				"property", verr.Property,
				"got", verr.Got,
				"seed1", verr.Seed1,
				"seed2", verr.Seed2,
				"words", verr.Words,
			)
		}
		return
	}
	logger.Info("derivation check passed", "trials", len(trials), "derived_pct", 100*progress)
}

func init() {
	rootCmd.AddCommand(workloadCmd)

	workloadCmd.Flags().Uint64("seed", 0, "fixed PCG seed for trial generation (0 seeds randomly)")
}
