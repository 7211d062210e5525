// Package sim drives the two-phase daily simulation: a booking pass over the
// configured season, then an on-site activity pass over the full span of
// generated stays. Days advance strictly in order; later days' demand
// depends on earlier days' resource consumption, so day order is a
// correctness requirement, not a convenience.
package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/resort"
	"github.com/frostline/resortgen/pkg/sample"
	"github.com/frostline/resortgen/pkg/scenario"
	"github.com/frostline/resortgen/pkg/synth"
	"github.com/frostline/resortgen/pkg/validation"
)

// Dataset is the terminal state of a run: eight flat, append-only
// collections ready for export.
type Dataset struct {
	Users        []resort.User        `json:"users"`
	Rooms        []resort.Room        `json:"rooms"`
	Bookings     []resort.Booking     `json:"bookings"`
	Transactions []resort.Transaction `json:"transactions"`
	Instructors  []resort.Instructor  `json:"instructors"`
	Equipment    []resort.Equipment   `json:"equipment"`
	Rentals      []resort.Rental      `json:"rentals"`
	Lessons      []resort.Lesson      `json:"lessons"`
}

// Simulation orchestrates a single sequential run over the scenario's date
// range. All randomness flows from one seeded source, so runs with the same
// scenario and seed produce identical datasets.
type Simulation struct {
	sc         *scenario.Scenario
	seed       uint64
	rng        *sample.Source
	fields     synth.FieldSource
	catalog    *resort.Catalog
	population *Population
	logger     *log.Logger
}

// New builds a simulation from a scenario. A zero scenario seed is replaced
// with a time-derived one. A nil logger discards progress output.
func New(sc *scenario.Scenario, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := sc.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	rng := sample.New(seed)
	fields := synth.NewFaker(rng)

	return &Simulation{
		sc:         sc,
		seed:       seed,
		rng:        rng,
		fields:     fields,
		catalog:    resort.NewCatalog(sc.Catalog, fields, rng),
		population: NewPopulation(sc.Demand, fields, rng),
		logger:     logger,
	}
}

// Seed returns the seed the run is using, after any time-derived fallback.
func (s *Simulation) Seed() uint64 {
	return s.seed
}

// Run executes the booking phase over [start, end], then the activity phase
// over [start, latest checkout]. The returned report carries simulation
// warnings (demand dropped under the skip policy); under the abort policy
// the first exhausted pool fails the run instead.
func (s *Simulation) Run() (*Dataset, *validation.Report, error) {
	report := validation.NewReport()
	start := s.sc.Season.StartDate
	end := s.sc.Season.EndDate

	s.logger.Info("catalog ready",
		"rooms", len(s.catalog.Rooms),
		"instructors", len(s.catalog.Instructors),
		"equipment", len(s.catalog.Equipment),
		"seed", s.seed,
	)

	// Phase 1: bookings, one calendar day at a time.
	dayIndex := 0
	var runErr error
	date.Range(start, end, func(day date.Date) {
		if runErr != nil {
			return
		}
		growth := s.sc.Demand.GrowthOffset(dayIndex)
		dayIndex++

		skipped, err := s.population.GenerateBookings(day, growth, s.catalog, s.sc.InventoryPolicy)
		if err != nil {
			runErr = fmt.Errorf("booking phase, %s: %w", day, err)
			return
		}
		if skipped > 0 {
			s.logger.Warn("room pool exhausted, demand dropped", "day", day.String(), "dropped", skipped)
			report.AddWarning(validation.Result{
				Level:       validation.LevelSimulation,
				Message:     fmt.Sprintf("%s: room pool exhausted, %d booking(s) dropped", day, skipped),
				Path:        "catalog.rooms",
				ActualValue: skipped,
			})
		}
	})
	if runErr != nil {
		return nil, report, runErr
	}

	s.logger.Info("booking phase complete",
		"days", dayIndex,
		"users", len(s.population.Users()),
		"bookings", len(s.catalog.Bookings),
	)

	// Phase 2: on-site activity through the checkout tail, which may
	// extend past the season end.
	last := s.catalog.LatestCheckout()
	if last.IsZero() {
		last = end
	}

	date.Range(start, last, func(day date.Date) {
		if runErr != nil {
			return
		}
		skipped, err := s.population.SimulateActivity(day, s.catalog, s.sc.InventoryPolicy)
		if err != nil {
			runErr = fmt.Errorf("activity phase, %s: %w", day, err)
			return
		}
		if skipped > 0 {
			s.logger.Warn("activity pool exhausted, activity dropped", "day", day.String(), "dropped", skipped)
			report.AddWarning(validation.Result{
				Level:       validation.LevelSimulation,
				Message:     fmt.Sprintf("%s: %d activity unit(s) dropped on exhausted pools", day, skipped),
				ActualValue: skipped,
			})
		}
	})
	if runErr != nil {
		return nil, report, runErr
	}

	s.logger.Info("activity phase complete",
		"through", last.String(),
		"rentals", len(s.catalog.Rentals),
		"lessons", len(s.catalog.Lessons),
		"transactions", len(s.catalog.Transactions),
	)

	return &Dataset{
		Users:        s.population.Users(),
		Rooms:        s.catalog.Rooms,
		Bookings:     s.catalog.Bookings,
		Transactions: s.catalog.Transactions,
		Instructors:  s.catalog.Instructors,
		Equipment:    s.catalog.Equipment,
		Rentals:      s.catalog.Rentals,
		Lessons:      s.catalog.Lessons,
	}, report, nil
}
