// Command seed-contests generates synthetic contest fixtures and can serve
// them as a stand-in for the contests backend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/concursos/internal/seed"
	"github.com/okian/concursos/pkg/logger"
	"github.com/spf13/cobra"
)

// Default configuration constants.
const (
	defaultCount      = 24
	defaultOrganizers = 5
	defaultAddr       = ":9081"
)

type generateFlags struct {
	count      int
	organizers int
	seed       uint64
	now        string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", defaultCount, "Number of contests to generate")
	cmd.Flags().IntVar(&f.organizers, "organizers", defaultOrganizers, "Size of the organizer pool")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for reproducible output (0 picks a random one)")
	cmd.Flags().StringVar(&f.now, "now", "", "RFC3339 instant to lay date windows around (default: current time)")
}

func (f *generateFlags) config() (seed.Config, error) {
	cfg := seed.Config{Count: f.count, Organizers: f.organizers, Seed: f.seed}
	if f.now != "" {
		t, err := time.Parse(time.RFC3339, f.now)
		if err != nil {
			return seed.Config{}, fmt.Errorf("invalid --now: %w", err)
		}
		cfg.Now = t
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed-contests",
		Short:         "Generate and serve synthetic livestock contests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newServeCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		flags  generateFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a YAML fixture usable as source_file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			contests, err := seed.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return seed.WriteYAML(cmd.OutOrStdout(), contests)
			}
			if err := seed.WriteFile(output, contests); err != nil {
				return err
			}
			logger.Get().Info(cmd.Context(), "fixture written",
				logger.String("path", output),
				logger.Int("count", len(contests)),
			)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (- for stdout)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		flags generateFlags
		addr  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated contests at " + seed.ContestsPath,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			contests, err := seed.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return seed.Serve(cmd.Context(), addr, contests)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "Listen address")
	return cmd
}

func main() {
	// Logs go to stderr so generated YAML on stdout stays clean.
	if err := logger.Init(logger.WithWriter(os.Stderr)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("seed-contests: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
