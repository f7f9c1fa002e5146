package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/acousticbem/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "acousticbem",
	Short: "Acoustic boundary element test driver",
	Long: `acousticbem - Acoustic Boundary Element Test Driver

A CLI tool that runs frequency sweeps of boundary element acoustic
problems and post-processes the solved surface fields.

Built-in scenarios:
  - plate   Baffled plate with prescribed sin(πx)·sin(πy) velocity,
            radiation ratio versus wavenumber
  - cavity  Closed cavity with an opening and a vibrating wall patch,
            structured per-element report with opening and wall power

Results can be written as ratio tables, text reports, plots and a
SQLite results database.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   acousticbem v%-43s║\n", version.Version)
		fmt.Println("  ║   Acoustic Boundary Element Test Driver                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Frequency sweeps of boundary element Helmholtz problems with")
		fmt.Println("  pressure, intensity, power and radiation ratio post-processing.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Baffled plate radiation ratio sweep")
		fmt.Println("    • Cavity with opening: per-element report and band powers")
		fmt.Println("    • Run definitions from JSON files")
		fmt.Println("    • CSV, text, plot and SQLite result outputs")
		fmt.Println()
		fmt.Println("  Use 'acousticbem --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
}
