package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "resortgen",
		Short: "Ski-resort relational dataset generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(summaryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		outDir string
		format string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the simulation and export the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], outDir, format, seed)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory for CSV files")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the scenario seed")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without running the simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func summaryCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "summary [project-path]",
		Short: "Run the simulation in memory and print dataset statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSummary(args[0], seed)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the scenario seed")
	return cmd
}
