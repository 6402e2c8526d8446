package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TrevorS/kmeans"
)

type runOptions struct {
	input         string
	threshold     float64
	thresholdSet  bool
	maxIterations int
	workers       int
	assignment    string
	format        string
	verbose       bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a dataset document",
		Long: `Cluster the instances of a dataset document around its starting centroids.

The document is YAML (or JSON) with the fields centroids, instances and the
optional threshold and max_iterations. Flags override document values.

Examples:
  kmeans run --input data.yaml
  kmeans run --input data.json --format json --threshold 1e-6
  cat data.yaml | kmeans run --input - --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.thresholdSet = cmd.Flags().Changed("threshold")
			return runCluster(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "dataset document path, - for stdin")
	flags.Float64Var(&opts.threshold, "threshold", 0, "relative distortion change to stop at (default from document, else 1e-4)")
	flags.IntVar(&opts.maxIterations, "max-iterations", 0, "iteration cap, 0 for none (default from document)")
	flags.IntVar(&opts.workers, "workers", 0, "goroutines for parallel assignment, 0 for NumCPU")
	flags.StringVar(&opts.assignment, "assignment", string(kmeans.AssignmentAuto), "assignment strategy: auto, serial or parallel")
	flags.StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml or json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every iteration to stderr")
	return cmd
}

func runCluster(cmd *cobra.Command, opts *runOptions) error {
	if opts.format != "yaml" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	ds, err := loadDataset(opts.input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := buildConfig(ds, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c, err := kmeans.New(cfg)
	if err != nil {
		return err
	}

	result, err := c.Cluster(cmd.Context(), ds.Centroids, ds.Instances)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), newReport(result), opts.format)
}

// buildConfig layers flags over the document over kmeans.DefaultConfig.
func buildConfig(ds *dataset, opts *runOptions, stderr io.Writer) (kmeans.Config, error) {
	cfg := kmeans.DefaultConfig()
	// An explicit threshold, zero included, always reaches validation.
	if ds.Threshold != nil {
		cfg.Threshold = *ds.Threshold
	}
	if opts.thresholdSet {
		cfg.Threshold = opts.threshold
	}
	if ds.MaxIterations != 0 {
		cfg.MaxIterations = ds.MaxIterations
	}
	if opts.maxIterations != 0 {
		cfg.MaxIterations = opts.maxIterations
	}
	cfg.Workers = opts.workers

	a, err := kmeans.ParseAssignment(opts.assignment)
	if err != nil {
		return cfg, err
	}
	cfg.Assignment = a

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = kmeans.NewTextLogger(stderr, level)
	return cfg, nil
}

func writeReport(w io.Writer, r report, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
