// Package frame provides the column-oriented tabular input figures are
// built from: named float64 series in a stable column order, loadable from
// xlsx workbooks.
package frame

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a requested column does not exist.
var ErrColumnNotFound = errors.New("column not found")

// Frame is an ordered collection of named numeric columns.
type Frame struct {
	order []string
	data  map[string][]float64
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{data: make(map[string][]float64)}
}

// AddColumn appends a column. Adding an existing name replaces its values
// but keeps the original position.
func (f *Frame) AddColumn(name string, values []float64) {
	if _, ok := f.data[name]; !ok {
		f.order = append(f.order, name)
	}
	f.data[name] = values
}

// Column returns the values of a named column.
func (f *Frame) Column(name string) ([]float64, error) {
	values, ok := f.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return values, nil
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	return f.order
}

// Len returns the number of rows, taken from the longest column.
func (f *Frame) Len() int {
	n := 0
	for _, values := range f.data {
		if len(values) > n {
			n = len(values)
		}
	}
	return n
}
