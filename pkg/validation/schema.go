package validation

import (
	"fmt"

	"github.com/frostline/resortgen/pkg/scenario"
)

// ValidateSchema performs schema validation on a parsed Scenario. It checks
// structural correctness before any simulation work begins; an invalid
// configuration is rejected here rather than mid-run.
func ValidateSchema(sc *scenario.Scenario) *Report {
	r := NewReport()

	validateSeason(sc, r)
	validateCatalog(sc, r)
	validateDemand(sc, r)
	validatePolicy(sc, r)
	validateSeed(sc, r)

	return r
}

func validateSeason(sc *scenario.Scenario, r *Report) {
	if sc.Season.StartDate.IsZero() {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "season.start_date is required",
			Path:     "season.start_date",
			Expected: "a date in 2006-01-02 format",
		})
	}
	if sc.Season.EndDate.IsZero() {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "season.end_date is required",
			Path:     "season.end_date",
			Expected: "a date in 2006-01-02 format",
		})
	}
	if sc.Season.StartDate.IsZero() || sc.Season.EndDate.IsZero() {
		return
	}

	if sc.Season.EndDate.Before(sc.Season.StartDate) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("season ends (%s) before it starts (%s)", sc.Season.EndDate, sc.Season.StartDate),
			Path:        "season.end_date",
			ActualValue: sc.Season.EndDate.String(),
			Expected:    fmt.Sprintf(">= %s", sc.Season.StartDate),
		})
	}
}

func validateCatalog(sc *scenario.Scenario, r *Report) {
	pools := []struct {
		name string
		size int
	}{
		{"rooms", sc.Catalog.Rooms},
		{"instructors", sc.Catalog.Instructors},
		{"equipment", sc.Catalog.Equipment},
	}

	for _, p := range pools {
		if p.size <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("catalog.%s must be greater than 0", p.name),
				Path:        fmt.Sprintf("catalog.%s", p.name),
				ActualValue: p.size,
				Expected:    "> 0",
			})
		}
	}

	// A tiny room pool under the reference demand curve exhausts within
	// days. Not an error: scenarios do this deliberately to exercise the
	// inventory policy.
	if sc.Catalog.Rooms > 0 && sc.Catalog.Rooms < 50 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("catalog.rooms = %d is small for the default demand curve; expect exhausted inventory", sc.Catalog.Rooms),
			Path:        "catalog.rooms",
			ActualValue: sc.Catalog.Rooms,
			Suggestions: []string{
				"Increase catalog.rooms or lower demand",
				"Set inventory_policy: skip to drop overflow demand",
			},
		})
	}
}

func validateDemand(sc *scenario.Scenario, r *Report) {
	probs := []struct {
		name string
		p    float64
	}{
		{"premium_share", sc.Demand.PremiumShare},
		{"rental_probability", sc.Demand.RentalProbability},
		{"lesson_probability", sc.Demand.LessonProbability},
	}

	for _, pr := range probs {
		if pr.p < 0 || pr.p > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("demand.%s %.4f must be a probability", pr.name, pr.p),
				Path:        fmt.Sprintf("demand.%s", pr.name),
				ActualValue: pr.p,
				Expected:    "0 <= p <= 1",
			})
		}
	}

	if sc.Demand.GrowthPerDay < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("demand.growth_per_day %.4f must be non-negative", sc.Demand.GrowthPerDay),
			Path:        "demand.growth_per_day",
			ActualValue: sc.Demand.GrowthPerDay,
			Expected:    ">= 0",
		})
	}
}

func validatePolicy(sc *scenario.Scenario, r *Report) {
	switch sc.InventoryPolicy {
	case scenario.PolicySkip, scenario.PolicyAbort:
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("inventory_policy %q is not recognized", sc.InventoryPolicy),
			Path:        "inventory_policy",
			ActualValue: sc.InventoryPolicy,
			Expected:    `"skip" or "abort"`,
		})
	}
}

func validateSeed(sc *scenario.Scenario, r *Report) {
	if sc.Seed == 0 {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "seed is 0: a time-derived seed will be used and the run will not be reproducible",
			Path:    "seed",
		})
	}
}
