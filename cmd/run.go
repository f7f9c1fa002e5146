package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/acousticbem/internal/bem"
	"github.com/alexiusacademia/acousticbem/internal/config"
	"github.com/spf13/cobra"
)

var (
	runConfigFile   string
	runMaxCondition float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sweep described by a JSON file",
	Long: `Run a frequency sweep from a JSON run definition.

JSON Format:
{
  "name": "plate-sweep",
  "scenario": "plate",
  "mesh": "plate",
  "frequencies": {"step": 10, "count": 100},
  "medium": {"sound_speed": 344.0, "density": 1.205},
  "solver": {"validate_geometry": true, "geometry_tolerance": 1e-6},
  "capacity": {"max_vertices": 4096, "max_elements": 2048, "max_field_points": 1024},
  "cavity": {"opening_elements": 6, "excited_from": 30},
  "field_points": [{"x": 0, "y": 0, "z": 0}],
  "incident_direction": {"x": 0, "y": 0, "z": 1},
  "outputs": {"ratio_csv": "ratio.csv", "report": "report.txt", "plot": "ratio.png", "chart": true, "db": "results.db"},
  "continue_on_error": false
}

Frequencies are given as "values" (list), "range" ("min:max:step") or
"step" and "count" (f_i = step·i). Omitted sections take the scenario
defaults.

Examples:
  acousticbem run --config plate.json`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "Path to run definition JSON file [required]")
	runCmd.Flags().Float64Var(&runMaxCondition, "max-condition", bem.DefaultMaxCondition, "Largest accepted condition number of the BEM system")

	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigFile)
	if err != nil {
		return fmt.Errorf("loading run config: %w", err)
	}
	if _, err := executeRun(cfg, runMaxCondition, os.Stdout); err != nil {
		return fmt.Errorf("run %q failed: %w", cfg.Name, err)
	}
	return nil
}
