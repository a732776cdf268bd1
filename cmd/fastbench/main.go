// Command fastbench runs the predecessor-search benchmark over every
// configured engine and prints one JSON record per engine to stdout.
//
// Usage:
//
//	fastbench [tree_size [num_queries]]
//	fastbench --config run.yaml
//	fastbench --engines btree,sorted_slice 100000 1000000
//
// Malformed positional values fall back to the defaults (1,000,000
// keys, 5,000,000 queries) so a cross-language driver script can
// invoke every port identically without per-language validation.
// Diagnostics go to stderr; stdout carries only records.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fastbench/fastbench"
	"github.com/fastbench/fastbench/config"
	"github.com/fastbench/fastbench/engines"
	"github.com/fastbench/fastbench/internal/hostinfo"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		engineList []string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fastbench [tree_size [num_queries]]",
		Short: "Compare predecessor-search engines on a deterministic workload",
		Long: "fastbench measures rank/predecessor lookup throughput across " +
			"ordered-index engines (FAST FFI, google/btree, sorted slice, " +
			"eytzinger, bbolt, mdbx, rocksdb, sqlite) using a byte-identical " +
			"workload shared with the ports in other languages.",
		Version:       fastbench.Version(),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				log.WithError(err).Error("loading config")
				return err
			}
			cfg.ApplyArgs(args)
			if len(engineList) > 0 {
				cfg.Engines = engineList
			}
			if err := run(cfg); err != nil {
				log.WithError(err).Error("run failed")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringSliceVar(&engineList, "engines", nil,
		fmt.Sprintf("engines to run (known: %v)", engines.Names()))
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(cfg *config.Config) error {
	// Keep measurements and the mdbx engine's transactions on one
	// stable OS thread.
	runtime.LockOSThread()

	host, _ := hostinfo.Get()
	log.WithFields(logrus.Fields{
		"host":        host.String(),
		"go":          runtime.Version(),
		"tree_size":   cfg.TreeSize,
		"num_queries": cfg.NumQueries,
		"engines":     cfg.Engines,
	}).Info("starting benchmark run")

	w, err := fastbench.NewWorkload(cfg.TreeSize, cfg.NumQueries, cfg.Seed)
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range cfg.Engines {
		rec, err := runEngine(name, w, cfg)
		if err != nil {
			// Fatal for this engine only; later engines still run
			// and earlier records stay emitted.
			log.WithError(err).WithField("engine", name).Error("engine failed")
			failed++
			continue
		}
		if err := rec.Emit(os.Stdout); err != nil {
			return err
		}
		// Keep one engine's garbage out of the next one's timed pass.
		runtime.GC()
	}

	if failed > 0 {
		return fmt.Errorf("%d engine(s) failed", failed)
	}
	return nil
}

func runEngine(name string, w *fastbench.Workload, cfg *config.Config) (fastbench.Record, error) {
	eng, err := engines.Open(name, w.Keys, cfg.DataDir)
	if err != nil {
		return fastbench.Record{}, err
	}
	defer eng.Close()

	res := fastbench.Measure(eng, w.Queries)

	// The sink must escape or the lookups could be elided.
	log.WithFields(logrus.Fields{
		"engine":  name,
		"elapsed": res.Elapsed,
		"sink":    res.Sink,
	}).Debug("measurement complete")

	return fastbench.NewRecord("go", runtime.Version(), eng.Name(),
		len(w.Keys), res.Queries, res.Elapsed.Seconds()), nil
}
