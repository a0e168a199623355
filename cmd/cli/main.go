package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/responsibility/infra/initializer"
	"github.com/amirasaad/responsibility/pkg/chain"
	"github.com/amirasaad/responsibility/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chain",
	Short: "Dispatch a request through a chain of duplicate handlers",
	Long: `chain builds CHAIN_LENGTH duplicate handlers (default 4), dispatches
CHAIN_INPUT (default "Hello") through them and prints the resulting payload.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runChain,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return err
	}

	return run(cmd.Context(), deps, cmd.OutOrStdout())
}

func run(ctx context.Context, deps *config.Deps, out io.Writer) error {
	req := chain.NewRequest(deps.Config.Chain.Input)
	handled := deps.Chain.Dispatch(ctx, req)
	deps.Logger.Debug("Request dispatched", "handled", handled)

	_, err := fmt.Fprintln(out, req.Payload)
	return err
}
