package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/plotkit/pkg/plotkit/theme"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the accent palette and theme colors",
	Long: `Show the accent colors cycled across plotted series, in assignment
order, plus the core colors of the light theme.`,
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	cmd.Println("Accent palette (series colors, in assignment order):")
	for i, color := range theme.AccentPalette {
		cmd.Printf("  %2d  %s %s\n", i, swatch(color), color)
	}

	d := theme.Descriptor()
	cmd.Println("\nTheme colors:")
	cmd.Printf("  background %s %s\n", swatch(d.Background), d.Background)
	cmd.Printf("  surface    %s %s\n", swatch(d.Surface), d.Surface)
	cmd.Printf("  foreground %s %s\n", swatch(d.Foreground), d.Foreground)
	cmd.Printf("  border     %s %s\n", swatch(d.Border), d.Border)

	return nil
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██████")
}
