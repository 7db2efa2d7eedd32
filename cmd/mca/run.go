// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mca/config"
	"github.com/katalvlaran/mca/dataset"
	"github.com/katalvlaran/mca/mca"
)

func runCmd() *cobra.Command {
	var (
		cfgPath    string
		input      string
		cols       []string
		drop       []string
		ncols      string
		n          int
		noBenzecri bool
		tol        float64
		sparse     bool
		percent    float64
		greenacre  bool
		indexCol   bool
		skipRows   int
		delimiter  string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyse a CSV table and print the summary",
		Example: `  mca run --input wines.csv --index-col --skip-rows 1 --drop oak_type --cols e1_fruity,e1_woody
  mca run --input counts.csv --index-col --no-benzecri --n 2 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Input = input
			}
			if flags.Changed("cols") {
				cfg.Cols = cols
			}
			if flags.Changed("drop") {
				cfg.Drop = drop
			}
			if flags.Changed("ncols") {
				k, err := mca.ParseCount("ncols", ncols)
				if err != nil {
					return err
				}
				cfg.NCols = k
			}
			if flags.Changed("n") {
				cfg.N = n
			}
			if flags.Changed("no-benzecri") {
				cfg.Benzecri = !noBenzecri
			}
			if flags.Changed("tol") {
				cfg.Tol = tol
			}
			if flags.Changed("sparse") {
				cfg.Sparse = sparse
			}
			if flags.Changed("percent") {
				cfg.Percent = percent
			}
			if flags.Changed("greenacre") {
				cfg.Greenacre = greenacre
			}
			if flags.Changed("index-col") {
				cfg.IndexCol = indexCol
			}
			if flags.Changed("skip-rows") {
				cfg.SkipRows = skipRows
			}
			if flags.Changed("delimiter") {
				cfg.Delimiter = delimiter
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if cfg.Input == "" {
				return fmt.Errorf("run: --input is required")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			summary, err := analyse(cfg)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), cfg.Format, summary)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "YAML configuration file")
	f.StringVarP(&input, "input", "i", "", "CSV file to analyse")
	f.StringSliceVar(&cols, "cols", nil, "categorical columns to dummy-encode (sets K)")
	f.StringSliceVar(&drop, "drop", nil, "columns to drop before the analysis")
	f.StringVar(&ncols, "ncols", "", "number of variables K of an already encoded table")
	f.IntVar(&n, "n", 0, "number of factors to report (0: percent rule)")
	f.BoolVar(&noBenzecri, "no-benzecri", false, "disable the Benzécri eigenvalue correction")
	f.Float64Var(&tol, "tol", mca.DefaultTolerance, "eigenvalue cut-off for the rank")
	f.BoolVar(&sparse, "sparse", false, "use the truncated decomposition")
	f.Float64Var(&percent, "percent", mca.DefaultPercent, "share of inertia the reported factors must reach")
	f.BoolVar(&greenacre, "greenacre", true, "include Greenacre-adjusted explained variance")
	f.BoolVar(&indexCol, "index-col", false, "first CSV column holds row labels")
	f.IntVar(&skipRows, "skip-rows", 0, "lines to skip before the header")
	f.StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	f.StringVar(&format, "format", config.FormatJSON, "output format: json or yaml")
	return cmd
}

// analyse reads the table described by cfg and summarizes the fitted engine.
func analyse(cfg config.Config) (*mca.Summary, error) {
	opts := []dataset.Option{dataset.WithComma(cfg.Comma()), dataset.WithSkipRows(cfg.SkipRows)}
	if cfg.IndexCol {
		opts = append(opts, dataset.WithIndexColumn())
	}
	frame, err := dataset.ReadCSVFile(cfg.Input, opts...)
	if err != nil {
		return nil, err
	}
	if len(cfg.Drop) > 0 {
		if frame, err = frame.Drop(cfg.Drop...); err != nil {
			return nil, err
		}
	}
	log.Debug().
		Str("input", cfg.Input).
		Int("rows", frame.Rows()).
		Int("cols", frame.Cols()).
		Strs("encode", cfg.Cols).
		Msg("table loaded")

	m, err := mca.NewFromFrame(frame, cfg.Cols, append(cfg.Options(), mca.WithLogger(log.Logger))...)
	if err != nil {
		return nil, err
	}
	summary, err := m.Summarize(cfg.Percent, cfg.N)
	if err != nil {
		return nil, err
	}
	if !cfg.Greenacre {
		summary.GreenacreVariance = nil
	}
	return summary, nil
}

func writeSummary(w io.Writer, format string, s *mca.Summary) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
