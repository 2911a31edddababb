package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/plotkit/pkg/plotkit/export"
	"github.com/jmylchreest/plotkit/pkg/plotkit/frame"
	"github.com/jmylchreest/plotkit/pkg/plotkit/plot"
)

var demoOpts struct {
	outputDir string
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Export example charts from synthetic data",
	Long: `Export example charts built from 100 points of synthetic series data.

Two files are written: one at standard quality and one at a custom high-DPI
resolution (1600x1000 at 2.5x).`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVarP(&demoOpts.outputDir, "output-dir", "o", "",
		"Directory to write the example charts to (default: output dir from config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	outDir := demoOpts.outputDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	fig, err := plot.Lines(demoFrame(), plot.Config{Title: "Commits by Month"})
	if err != nil {
		return fmt.Errorf("failed to build figure: %w", err)
	}

	web, err := export.Export(fig, filepath.Join(outDir, "commits_web_quality"), export.Options{})
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := printExported(cmd, web); err != nil {
		return err
	}

	custom, err := export.ExportHighQuality(fig, filepath.Join(outDir, "commits_custom"), export.Options{
		Width:  1600,
		Height: 1000,
		Scale:  2.5,
	})
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	return printExported(cmd, custom)
}

// demoFrame builds 100 points of synthetic series data.
func demoFrame() *frame.Frame {
	const n = 100

	ts := make([]float64, n)
	y1 := make([]float64, n)
	y2 := make([]float64, n)
	y3 := make([]float64, n)

	for i := 0; i < n; i++ {
		x := float64(i)
		ts[i] = x
		y1[i] = math.Sin(math.Log(x+1)) * 2
		y2[i] = math.Exp(math.Sin(x/10)) - 2
		y3[i] = math.Log(x+1) * math.Sin(x/5)
	}

	f := frame.New()
	f.AddColumn("ts", ts)
	f.AddColumn("y1", y1)
	f.AddColumn("y2", y2)
	f.AddColumn("y3", y3)
	return f
}
