// Package plot builds styled line figures from tabular frames: one trace
// per requested y column, themed and titled in a single call.
package plot

import (
	"fmt"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
	"github.com/jmylchreest/plotkit/pkg/plotkit/frame"
	"github.com/jmylchreest/plotkit/pkg/plotkit/style"
)

// Defaults used when Config fields are left empty.
const (
	DefaultXColumn    = "ts"
	DefaultXAxisTitle = "Date"
	DefaultYAxisTitle = "Commits (Monthly)"
)

// Config selects the frame columns to plot and the figure labels.
type Config struct {
	Title      string
	XColumn    string   // default "ts"
	YColumns   []string // default: every column except the x column
	XAxisTitle string   // default "Date"
	YAxisTitle string   // default "Commits (Monthly)"
}

func (c Config) withDefaults(f *frame.Frame) Config {
	if c.XColumn == "" {
		c.XColumn = DefaultXColumn
	}
	if c.XAxisTitle == "" {
		c.XAxisTitle = DefaultXAxisTitle
	}
	if c.YAxisTitle == "" {
		c.YAxisTitle = DefaultYAxisTitle
	}
	if len(c.YColumns) == 0 {
		for _, name := range f.Columns() {
			if name != c.XColumn {
				c.YColumns = append(c.YColumns, name)
			}
		}
	}
	return c
}

// Lines builds a styled line figure from the frame: one trace per y column,
// named after the column, sharing the x column, with the theme applied and
// axis titles set. Missing columns fail with frame.ErrColumnNotFound.
func Lines(f *frame.Frame, cfg Config) (*figure.LineFigure, error) {
	cfg = cfg.withDefaults(f)

	x, err := f.Column(cfg.XColumn)
	if err != nil {
		return nil, fmt.Errorf("x column: %w", err)
	}
	if len(cfg.YColumns) == 0 {
		return nil, fmt.Errorf("no y columns to plot")
	}

	fig := figure.NewLineFigure()
	for _, name := range cfg.YColumns {
		y, err := f.Column(name)
		if err != nil {
			return nil, fmt.Errorf("y column: %w", err)
		}
		fig.AddLine(name, x, y)
	}

	style.Apply(fig, cfg.Title)
	fig.Layout().XAxisTitle = cfg.XAxisTitle
	fig.Layout().YAxisTitle = cfg.YAxisTitle

	return fig, nil
}
