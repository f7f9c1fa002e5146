package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/acousticbem/internal/store"
	"github.com/spf13/cobra"
)

var runsDB string

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "List stored runs or show the cases of one run",
	Long: `List the runs stored in a results database, or print the stored
cases of a single run.

Examples:
  acousticbem runs --db results.db
  acousticbem runs --db results.db 5f0c2a1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVar(&runsDB, "db", "", "SQLite results database [required]")
	runsCmd.MarkFlagRequired("db")
}

func runRuns(cmd *cobra.Command, args []string) error {
	s, err := store.Open(runsDB)
	if err != nil {
		return err
	}
	defer s.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if len(args) == 0 {
		runs, err := s.Runs()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "RUN\tNAME\tMESH\tELEMENTS\tCASES\tFAILED\n")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n", r.ID, r.Name, r.Mesh, r.Elements, r.Cases, r.Failures)
		}
		return nil
	}

	cases, err := s.Cases(args[0])
	if err != nil {
		return err
	}
	failures, err := s.Failures(args[0])
	if err != nil {
		return err
	}
	if len(cases) == 0 && len(failures) == 0 {
		return fmt.Errorf("run %s not found", args[0])
	}
	fmt.Fprintf(w, "#\tf (Hz)\tk (1/m)\tpower (W)\tratio\n")
	for _, c := range cases {
		fmt.Fprintf(w, "%d\t%.2f\t%.5f\t% .5e\t%.5f\n", c.Index+1, c.Frequency, c.Wavenumber, c.Power, c.Ratio)
	}
	failed := make([]int, 0, len(failures))
	for idx := range failures {
		failed = append(failed, idx)
	}
	sort.Ints(failed)
	for _, idx := range failed {
		fmt.Fprintf(w, "%d\t⚠ %s\n", idx+1, failures[idx])
	}
	return nil
}
