// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command foldplot renders a PNG plot from a TOML description,
// folding selected axis ranges to make a broken axis.
//
// A minimal description looks like:
//
//	width = 450
//	height = 300
//	title = "Broken Axis Example"
//
//	[[series]]
//	kind = "bar"
//	x = [-31, -30, -29, -1, 0, 1, 29, 30, 31]
//	y = [22, 41, 13, 8, 172, 30, 19, 44, 25]
//
//	[xfold]
//	intervals = [[-28, -2, 0.015], [2, 28, 0.015]]
//	spine = "lower"
//
//	[yfold]
//	intervals = [[55, 145, 0.05]]
//	spine = "both"
//
// Run it with
//
//	foldplot -o out.png plot.toml
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wuyao1997/go-foldaxis/fold"
	"github.com/wuyao1997/go-foldaxis/plot"
)

func main() {
	var (
		output  string
		verbose bool
	)
	root := &cobra.Command{
		Use:          "foldplot <config.toml>",
		Short:        "foldplot renders plots with folded (broken) axes",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(logger, args[0], output)
		},
	}
	root.Flags().StringVarP(&output, "output", "o", "plot.png", "write the rendered PNG to `file`")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(logger *charmlog.Logger, configPath, output string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", configPath, err)
	}
	logger.Debug("loaded config", "series", len(cfg.Series), "width", cfg.Width, "height", cfg.Height)

	ax := plot.NewAxes()
	ax.SetTitle(cfg.Title)
	ax.SetXLabel(cfg.XLabel)
	ax.SetYLabel(cfg.YLabel)
	ax.Grid(cfg.Grid)

	if err := applyLimits(ax, cfg); err != nil {
		return err
	}
	if cfg.XTicks != nil {
		ax.SetXTicks(cfg.XTicks)
	}
	if cfg.YTicks != nil {
		ax.SetYTicks(cfg.YTicks)
	}

	for i, sc := range cfg.Series {
		if err := addSeries(ax, sc); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}

	if cfg.XFold != nil {
		if err := applyFold(logger, ax, fold.XAxis, cfg.XFold); err != nil {
			return fmt.Errorf("xfold: %w", err)
		}
	}
	if cfg.YFold != nil {
		if err := applyFold(logger, ax, fold.YAxis, cfg.YFold); err != nil {
			return fmt.Errorf("yfold: %w", err)
		}
	}

	img, err := ax.Render(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if err := plot.WritePNG(output, img); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info("wrote plot", "path", output)
	return nil
}

func applyLimits(ax *plot.Axes, cfg *config) error {
	if len(cfg.XLim) == 2 {
		ax.SetXLim(cfg.XLim[0], cfg.XLim[1])
	} else if len(cfg.XLim) != 0 {
		return fmt.Errorf("xlim: want [low, high], got %v", cfg.XLim)
	}
	if len(cfg.YLim) == 2 {
		ax.SetYLim(cfg.YLim[0], cfg.YLim[1])
	} else if len(cfg.YLim) != 0 {
		return fmt.Errorf("ylim: want [low, high], got %v", cfg.YLim)
	}
	return nil
}

func addSeries(ax *plot.Axes, sc seriesConfig) error {
	if len(sc.X) != len(sc.Y) {
		return fmt.Errorf("x and y lengths differ (%d vs %d)", len(sc.X), len(sc.Y))
	}
	col, err := parseColor(sc.Color)
	if err != nil {
		return err
	}
	switch sc.Kind {
	case "", "line":
		ax.Plot(sc.X, sc.Y, col)
	case "bar":
		w := sc.BarWidth
		if w == 0 {
			w = 0.8
		}
		ax.Bar(sc.X, sc.Y, w, col)
	default:
		return fmt.Errorf("unknown series kind %q", sc.Kind)
	}
	return nil
}

func applyFold(logger *charmlog.Logger, ax *plot.Axes, axis fold.Axis, fc *foldConfig) error {
	intervals, err := fc.intervals()
	if err != nil {
		return err
	}
	opts, err := fc.options(axis)
	if err != nil {
		return err
	}
	if err := fold.Fold(ax, intervals, opts); err != nil {
		return err
	}
	logger.Debug("folded axis", "axis", axis.String(), "intervals", len(intervals), "mode", opts.Mode.String())
	return nil
}
