package cmd

import (
	"fmt"

	"github.com/alexiusacademia/acousticbem/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of acousticbem",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("acousticbem v%s\n", version.Version)
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
		fmt.Println("Acoustic Boundary Element Test Driver")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
