package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/config"
	"github.com/katalvlaran/creditflow/creditline"
	"github.com/katalvlaran/creditflow/creditline/pgstore"
	"github.com/katalvlaran/creditflow/payment"
)

// app is the state shared by subcommands once the root pre-run has loaded
// configuration and opened the store. close releases it.
type app struct {
	configPath string
	network    string

	cfg     *config.Config
	log     *zap.Logger
	store   creditline.Store
	cleanup func()
}

func newApp() *app { return &app{cleanup: func() {}} }

// execute runs the command line args against a. The store and logger are
// released even when the command fails.
func execute(ctx context.Context, a *app, args []string, out, errOut io.Writer) error {
	defer a.close()

	root := newRootCmd(a)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "creditflow",
		Short:         "Payment routing over a mutual-credit network",
		Long:          `Finds the cheapest route for a payment across chains of bilateral credit lines, or the largest amount that can be routed at all.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./creditflow.yaml)")
	root.PersistentFlags().StringVar(&a.network, "network", "", "YAML network snapshot; selects the yaml store")

	root.AddCommand(newRouteCmd(a), newMaxFlowCmd(a))

	return root
}

func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.network != "" {
		cfg.Store.Driver = config.DriverYAML
		cfg.Store.Path = a.network
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := pgstore.Connect(ctx, cfg.Database.DSN(), log)
		if err != nil {
			return err
		}
		a.store = pgstore.New(pool, pgstore.WithLogger(log))
		a.cleanup = pool.Close
	default:
		store, err := creditline.LoadFile(cfg.Store.Path)
		if err != nil {
			return err
		}
		log.Debug("network snapshot loaded", zap.String("path", cfg.Store.Path), zap.Int("lines", store.Len()))
		a.store = store
	}

	return nil
}

func (a *app) close() {
	a.cleanup()
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// paymentOptions maps configuration onto payment options.
func (a *app) paymentOptions() ([]payment.Option, error) {
	algo, err := a.cfg.Routing.MaxFlowAlgorithm()
	if err != nil {
		return nil, fmt.Errorf("routing.algorithm: %w", err)
	}

	return []payment.Option{
		payment.WithMaxFlowAlgorithm(algo),
		payment.WithMaxLines(a.cfg.Routing.MaxLines),
		payment.WithLogger(a.log),
	}, nil
}
