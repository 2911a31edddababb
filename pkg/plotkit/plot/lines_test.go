package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/plotkit/pkg/plotkit/figure"
	"github.com/jmylchreest/plotkit/pkg/plotkit/frame"
	"github.com/jmylchreest/plotkit/pkg/plotkit/theme"
)

func testFrame() *frame.Frame {
	f := frame.New()
	f.AddColumn("ts", []float64{0, 1, 2, 3})
	f.AddColumn("y1", []float64{1, 2, 3, 4})
	f.AddColumn("y2", []float64{4, 3, 2, 1})
	return f
}

func TestLines_OneTracePerYColumn(t *testing.T) {
	fig, err := Lines(testFrame(), Config{
		Title:    "Commits by Month",
		YColumns: []string{"y1", "y2"},
	})
	require.NoError(t, err)

	traces := fig.Traces()
	require.Len(t, traces, 2)

	first := traces[0].(*figure.LineTrace)
	assert.Equal(t, "y1", first.Name())
	assert.Equal(t, []float64{0, 1, 2, 3}, first.X)
	assert.Equal(t, []float64{1, 2, 3, 4}, first.Y)

	second := traces[1].(*figure.LineTrace)
	assert.Equal(t, "y2", second.Name())
	assert.Equal(t, []float64{4, 3, 2, 1}, second.Y)
}

func TestLines_AppliesTheme(t *testing.T) {
	fig, err := Lines(testFrame(), Config{Title: "Commits by Month"})
	require.NoError(t, err)

	assert.Equal(t, "Commits by Month", fig.Layout().Title)
	assert.Equal(t, theme.Descriptor().Background, fig.Layout().PaperBackground)

	for i, tr := range fig.Traces() {
		line := tr.(*figure.LineTrace)
		assert.Equal(t, theme.AccentColor(i), line.LineColor())
	}
}

func TestLines_DefaultsToAllNonXColumns(t *testing.T) {
	fig, err := Lines(testFrame(), Config{Title: "t"})
	require.NoError(t, err)

	require.Len(t, fig.Traces(), 2)
	assert.Equal(t, "y1", fig.Traces()[0].Name())
	assert.Equal(t, "y2", fig.Traces()[1].Name())
}

func TestLines_AxisTitleDefaults(t *testing.T) {
	fig, err := Lines(testFrame(), Config{Title: "t"})
	require.NoError(t, err)

	assert.Equal(t, "Date", fig.Layout().XAxisTitle)
	assert.Equal(t, "Commits (Monthly)", fig.Layout().YAxisTitle)

	custom, err := Lines(testFrame(), Config{Title: "t", XAxisTitle: "Time", YAxisTitle: "Count"})
	require.NoError(t, err)
	assert.Equal(t, "Time", custom.Layout().XAxisTitle)
	assert.Equal(t, "Count", custom.Layout().YAxisTitle)
}

func TestLines_MissingColumns(t *testing.T) {
	f := frame.New()
	f.AddColumn("ts", []float64{0, 1})

	_, err := Lines(f, Config{Title: "t", XColumn: "absent"})
	require.Error(t, err)
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)

	_, err = Lines(f, Config{Title: "t", YColumns: []string{"absent"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)
}

func TestLines_NoYColumns(t *testing.T) {
	f := frame.New()
	f.AddColumn("ts", []float64{0, 1})

	_, err := Lines(f, Config{Title: "t"})

	require.Error(t, err)
}
