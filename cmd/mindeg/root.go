// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mindeg/mmd"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mindeg",
		Short:         "Minimum degree orderings of sparse symmetric graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", logFormatJSON, "log format: json or console")
	root.AddCommand(newOrderCmd())

	return root
}

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order a generated mesh, a path or an edge list",
		RunE:  runOrder,
	}
	f := cmd.Flags()
	f.String("grid", "", "generate a ROWSxCOLS 5-point mesh")
	f.Int("path", 0, "generate a path of N vertices")
	f.String("input", "", "read an edge list (one \"u v\" pair per line)")
	f.Int("delta", mmd.DefaultDelta, "degree tolerance of a multiple elimination batch")
	f.Bool("single", false, "eliminate one vertex per update")
	f.Bool("no-aggressive", false, "disable aggressive store repacking")
	f.Bool("perm", false, "print the elimination sequence")
	f.Bool("metrics", false, "print the ordering counters")

	return cmd
}

func runOrder(cmd *cobra.Command, _ []string) error {
	var cfg orderConfig
	if _, err := loadConfig(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := loadGraph(&cfg)
	if err != nil {
		return err
	}
	log.Debug("graph loaded", zap.Int("n", g.Order()), zap.Int("arcs", g.Arcs()))

	reg := prometheus.NewRegistry()
	opts := []mmd.Option{
		mmd.WithContext(cmd.Context()),
		mmd.WithDelta(cfg.Delta),
		mmd.WithAggressiveRepack(!cfg.NoAggressive),
		mmd.WithLogger(log),
		mmd.WithMetrics(mmd.NewMetrics(reg, "mindeg")),
	}
	if cfg.Single {
		opts = append(opts, mmd.WithSingleElimination())
	}
	res, err := mmd.Order(g, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := res.Stats
	fmt.Fprintf(out, "n=%d arcs=%d batches=%d eliminations=%d compressions=%d outmatches=%d defrags=%d\n",
		g.Order(), g.Arcs(), res.Batches, s.Eliminations, s.Compressions, s.Outmatches, s.Defrags)
	if cfg.Perm {
		fmt.Fprintln(out, "sequence:", res.InvPerm)
	}
	if cfg.Metrics {
		return printMetrics(out, reg)
	}

	return nil
}

// printMetrics writes every counter of reg as "name value".
func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				fmt.Fprintf(w, "%s %g\n", mf.GetName(), c.GetValue())
			}
		}
	}

	return nil
}
