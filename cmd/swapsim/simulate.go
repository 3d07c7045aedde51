package swapsim

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quotelab/swapsim"
	"github.com/quotelab/swapsim/internal/utils/safecast"
	"github.com/quotelab/swapsim/sdk"
	"github.com/quotelab/swapsim/sdk/evm"
)

func buildSimulateCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one settlement simulation from a scenario file",
		Long: `Fabricates the chain state described in the scenario file, runs the swap
request against it and prints the measured settlement gas together with the
pre/post balance snapshots. The scenario path can also be configured via the
SWAPSIM_SCENARIO var in the environment or a .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scenarioPath == "" {
				scenarioPath = scenarioPathFromEnv()
			}

			return runSimulate(cmd, scenarioPath)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario file describing accounts and the swap request")

	return cmd
}

func scenarioPathFromEnv() string {
	// A missing .env file is fine; the variable may be set directly.
	_ = godotenv.Load(".env")

	return os.Getenv("SWAPSIM_SCENARIO")
}

func runSimulate(cmd *cobra.Command, scenarioPath string) error {
	if scenarioPath == "" {
		return errors.New("no scenario provided: use --scenario or set SWAPSIM_SCENARIO")
	}

	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var opts []evm.BackendOption
	if sc.GasLimit > 0 {
		limit, err := safecast.Int64ToUint64(sc.GasLimit)
		if err != nil {
			return err
		}
		opts = append(opts, evm.WithCallGasLimit(limit))
	}

	backend, err := evm.NewBackend(opts...)
	if err != nil {
		return err
	}
	if err := sc.seed(backend); err != nil {
		return err
	}

	harness, capability := swapsim.New(backend, backend, backend, sc.Solver)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := zap.Must(zap.NewProduction()).Sugar()
	ctx = context.WithValue(ctx, sdk.ContextLoggerValue, sdk.Logger(logger))

	result, err := harness.Swap(ctx, capability, &sc.Request)
	if err != nil {
		return err
	}

	cmd.Printf("gas used: %d\n", result.GasUsed)
	for i, balance := range result.Balances {
		phase := "pre"
		tokenIdx := i
		if i >= len(sc.Request.Tokens) {
			phase = "post"
			tokenIdx = i - len(sc.Request.Tokens)
		}
		cmd.Printf("%-4s %s: %s\n", phase, sc.Request.Tokens[tokenIdx], balance)
	}

	return nil
}
