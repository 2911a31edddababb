// Package figure defines the narrow capability contract the styler and
// exporter need from a chart figure: a mutable layout and an ordered
// sequence of traces with optional color slots. It also provides the
// concrete line figure used by the rest of the module.
//
// The contract is deliberately small so the styling and export logic stays
// decoupled from any particular charting backend.
package figure
