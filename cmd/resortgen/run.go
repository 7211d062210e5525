package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/frostline/resortgen/pkg/export"
	"github.com/frostline/resortgen/pkg/scenario"
	"github.com/frostline/resortgen/pkg/sim"
	"github.com/frostline/resortgen/pkg/summary"
	"github.com/frostline/resortgen/pkg/validation"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*scenario.Scenario, *validation.Report, error) {
	sc, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	schemaReport := validation.ValidateSchema(sc)
	return sc, schemaReport, nil
}

func runValidate(projectPath string) error {
	_, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

// simulate validates the scenario and runs the full simulation, returning
// the dataset and the run's warning report.
func simulate(projectPath string, seedOverride uint64) (*sim.Dataset, *validation.Report, error) {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return nil, nil, fmt.Errorf("scenario has validation errors")
	}
	if seedOverride != 0 {
		sc.Seed = seedOverride
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	simulation := sim.New(sc, logger)

	dataset, runReport, err := simulation.Run()
	if err != nil {
		return nil, runReport, err
	}
	return dataset, runReport, nil
}

func runGenerate(projectPath, outDir, format string, seedOverride uint64) error {
	dataset, runReport, err := simulate(projectPath, seedOverride)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		if err := export.WriteCSV(dataset, outDir); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "dataset written to %s/\n", outDir)
	case "json":
		if err := export.WriteJSON(dataset, os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}

	if len(runReport.Warnings) > 0 {
		fmt.Fprintln(os.Stderr)
		printValidationReport(runReport)
	}
	return nil
}

func runSummary(projectPath string, seedOverride uint64) error {
	dataset, runReport, err := simulate(projectPath, seedOverride)
	if err != nil {
		return err
	}

	printSummaryReport(summary.Summarize(dataset))

	if len(runReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(runReport)
	}
	return nil
}
