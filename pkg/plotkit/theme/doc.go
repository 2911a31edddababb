// Package theme provides the fixed light design-system style applied to
// every exported chart. It exposes an immutable style descriptor for figure
// layouts and an ordered accent palette that is cycled across plotted
// series.
package theme
