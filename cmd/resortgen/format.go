package main

import (
	"fmt"
	"sort"

	"github.com/frostline/resortgen/pkg/resort"
	"github.com/frostline/resortgen/pkg/summary"
	"github.com/frostline/resortgen/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSummaryReport(r *summary.Report) {
	fmt.Println("Dataset Summary")
	fmt.Println("===============")
	fmt.Println()

	fmt.Println("Records")
	fmt.Println("-------")
	fmt.Printf("  Users:        %8d\n", r.Counts.Users)
	fmt.Printf("  Rooms:        %8d\n", r.Counts.Rooms)
	fmt.Printf("  Instructors:  %8d\n", r.Counts.Instructors)
	fmt.Printf("  Equipment:    %8d\n", r.Counts.Equipment)
	fmt.Printf("  Bookings:     %8d\n", r.Counts.Bookings)
	fmt.Printf("  Rentals:      %8d\n", r.Counts.Rentals)
	fmt.Printf("  Lessons:      %8d\n", r.Counts.Lessons)
	fmt.Printf("  Transactions: %8d\n", r.Counts.Transactions)

	fmt.Println()
	fmt.Println("Revenue")
	fmt.Println("-------")
	fmt.Printf("  Gross:     %14s\n", r.Revenue.Gross.StringFixed(2))
	fmt.Printf("  Bookings:  %14s\n", r.Revenue.Bookings.StringFixed(2))
	fmt.Printf("  Rentals:   %14s\n", r.Revenue.Rentals.StringFixed(2))
	fmt.Printf("  Lessons:   %14s\n", r.Revenue.Lessons.StringFixed(2))

	methods := make([]string, 0, len(r.Revenue.ByMethod))
	for m := range r.Revenue.ByMethod {
		methods = append(methods, string(m))
	}
	sort.Strings(methods)
	for _, m := range methods {
		fmt.Printf("  via %-12s %11s\n", m+":", r.Revenue.ByMethod[resort.PaymentMethod(m)].StringFixed(2))
	}

	fmt.Println()
	fmt.Println("Stays")
	fmt.Println("-----")
	fmt.Printf("  Average nights: %.2f\n", r.Stays.AverageNights)
	fmt.Printf("  Peak occupancy: %d rooms on %s\n", r.Stays.PeakOccupancy, r.Stays.PeakDay)

	if len(r.Monthly) > 0 {
		fmt.Println()
		fmt.Println("Bookings by month")
		fmt.Println("-----------------")
		fmt.Printf("  %-8s %10s %14s\n", "Month", "Bookings", "Revenue")
		for _, row := range r.Monthly {
			fmt.Printf("  %-8s %10d %14s\n", row.Month, row.Bookings, row.Revenue.StringFixed(2))
		}
	}
}
