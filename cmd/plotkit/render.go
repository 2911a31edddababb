package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/plotkit/pkg/plotkit/export"
	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
	"github.com/jmylchreest/plotkit/pkg/plotkit/frame"
	"github.com/jmylchreest/plotkit/pkg/plotkit/plot"
)

var renderOpts struct {
	sheet       string
	xColumn     string
	yColumns    []string
	title       string
	xAxisTitle  string
	yAxisTitle  string
	output      string
	width       int
	height      int
	scale       float64
	highQuality bool
}

var renderCmd = &cobra.Command{
	Use:   "render [input.xlsx]",
	Short: "Render a themed line chart from a workbook",
	Long: `Render a themed line chart from an xlsx workbook and export it as PNG.

The first row of the sheet names the columns; one line trace is plotted per
y column against the x column.

Examples:
  # Plot every column against "ts"
  plotkit render data.xlsx --title "Commits by Month"

  # Pick columns and write a high-DPI image
  plotkit render data.xlsx --x date --y commits,reviews --high-quality -o out/commits`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderOpts.sheet, "sheet", "",
		"Workbook sheet to read (default: first sheet)")
	renderCmd.Flags().StringVar(&renderOpts.xColumn, "x", "",
		"Column plotted on the x axis (default: \"ts\")")
	renderCmd.Flags().StringSliceVar(&renderOpts.yColumns, "y", nil,
		"Columns plotted on the y axis (default: all except the x column)")
	renderCmd.Flags().StringVar(&renderOpts.title, "title", "",
		"Chart title")
	renderCmd.Flags().StringVar(&renderOpts.xAxisTitle, "x-title", "",
		"X axis title")
	renderCmd.Flags().StringVar(&renderOpts.yAxisTitle, "y-title", "",
		"Y axis title")
	renderCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "",
		"Output path, .png optional (default: <output dir>/<input name>)")
	renderCmd.Flags().IntVar(&renderOpts.width, "width", 0,
		"Image width in pixels (default: 1200)")
	renderCmd.Flags().IntVar(&renderOpts.height, "height", 0,
		"Image height in pixels (default: 800)")
	renderCmd.Flags().Float64Var(&renderOpts.scale, "scale", 0,
		"Scale multiplier for higher pixel density (default: 1.0, or 2.0 with --high-quality)")
	renderCmd.Flags().BoolVar(&renderOpts.highQuality, "high-quality", false,
		"Use the high-DPI export tier")
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	sheet := renderOpts.sheet
	if sheet == "" {
		sheet = cfg.Input.Sheet
	}
	xColumn := renderOpts.xColumn
	if xColumn == "" {
		xColumn = cfg.Input.XColumn
	}

	f, err := frame.LoadXLSX(inputPath, sheet)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}
	logger.Debug("loaded workbook", "path", inputPath, "columns", f.Columns(), "rows", f.Len())

	fig, err := plot.Lines(f, plot.Config{
		Title:      renderOpts.title,
		XColumn:    xColumn,
		YColumns:   renderOpts.yColumns,
		XAxisTitle: renderOpts.xAxisTitle,
		YAxisTitle: renderOpts.yAxisTitle,
	})
	if err != nil {
		return fmt.Errorf("failed to build figure: %w", err)
	}

	output := renderOpts.output
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		output = filepath.Join(cfg.Output.Dir, base)
	}

	path, err := exportFigure(fig, output, renderOpts.highQuality, export.Options{
		Width:  pickInt(renderOpts.width, cfg.Output.Width),
		Height: pickInt(renderOpts.height, cfg.Output.Height),
		Scale:  pickScale(renderOpts.scale, renderOpts.highQuality),
	})
	if err != nil {
		return err
	}

	return printExported(cmd, path)
}

func pickInt(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

// pickScale resolves the scale flag against the configured tier default.
func pickScale(flag float64, highQuality bool) float64 {
	if flag > 0 {
		return flag
	}
	if highQuality {
		return cfg.Output.HighQualityScale
	}
	return cfg.Output.Scale
}

func exportFigure(fig figure.Figure, output string, highQuality bool, opts export.Options) (string, error) {
	if highQuality {
		return export.ExportHighQuality(fig, output, opts)
	}
	return export.Export(fig, output, opts)
}

// printExported reports the written file and its size on stdout.
func printExported(cmd *cobra.Command, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat exported file: %w", err)
	}
	cmd.Printf("%s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
	return nil
}
