package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/payment"
)

func newRouteCmd(a *app) *cobra.Command {
	var from, to, amt string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the cheapest route for an exact amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := decimal.NewFromString(amt)
			if err != nil {
				return fmt.Errorf("--amount %q: %w", amt, err)
			}
			opts, err := a.paymentOptions()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			fg, err := payment.NewFlowGraph(ctx, a.store, from, to, opts...)
			if err != nil {
				return err
			}
			route, err := fg.ComputeExactAmount(ctx, value)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range route.Lines() {
				fmt.Fprintf(out, "%s %s->%s %s\n", t.Line.ID, t.Line.Owner, t.Line.Partner, t.Amount.StringFixed(amount.Scale))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "payer alias")
	cmd.Flags().StringVar(&to, "to", "", "recipient alias")
	cmd.Flags().StringVar(&amt, "amount", "", "amount to pay")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newMaxFlowCmd(a *app) *cobra.Command {
	var (
		from, to       string
		ignoreBalances bool
	)

	cmd := &cobra.Command{
		Use:   "maxflow",
		Short: "Compute the largest amount payable from one account to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.paymentOptions()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var res payment.MaxFlowResult
			if ignoreBalances {
				res, err = payment.Reputation(ctx, a.store, from, to, opts...)
			} else {
				var fg *payment.FlowGraph
				if fg, err = payment.NewFlowGraph(ctx, a.store, from, to, opts...); err == nil {
					res, err = fg.ComputeMaxFlow(ctx)
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "payer alias")
	cmd.Flags().StringVar(&to, "to", "", "recipient alias")
	cmd.Flags().BoolVar(&ignoreBalances, "ignore-balances", false, "count credit limits only")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
