package scenario

import (
	"github.com/frostline/resortgen/pkg/date"
)

// Inventory policies decide what happens when a day's demand outruns the
// catalog: drop the rest of that day's demand, or fail the whole run.
const (
	PolicySkip  = "skip"
	PolicyAbort = "abort"
)

// Scenario is the top-level configuration for a generator run.
type Scenario struct {
	Version string     `yaml:"version" json:"version"`
	Season  SeasonDef  `yaml:"season" json:"season"`
	Catalog CatalogDef `yaml:"catalog" json:"catalog"`
	Demand  DemandDef  `yaml:"demand" json:"demand"`

	// InventoryPolicy is "skip" or "abort".
	InventoryPolicy string `yaml:"inventory_policy" json:"inventory_policy"`

	// Seed drives every random draw in the run. 0 means a time-derived
	// seed is chosen at startup, producing a non-reproducible run.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// SeasonDef is the simulated booking window. Both endpoints are inclusive;
// on-site activity may extend past EndDate to the latest checkout.
type SeasonDef struct {
	StartDate date.Date `yaml:"start_date" json:"start_date"`
	EndDate   date.Date `yaml:"end_date" json:"end_date"`
}

// CatalogDef sizes the fixed resource pools.
type CatalogDef struct {
	Rooms       int `yaml:"rooms" json:"rooms"`
	Instructors int `yaml:"instructors" json:"instructors"`
	Equipment   int `yaml:"equipment" json:"equipment"`
}

// DemandDef tunes daily demand and guest behavior.
type DemandDef struct {
	// GrowthPerDay is a secular growth term added to each day's demand,
	// multiplied by the day index. Held at zero by default.
	GrowthPerDay float64 `yaml:"growth_per_day" json:"growth_per_day"`

	// PremiumShare is the probability a booking is made as a premium
	// guest, who takes the most expensive available room instead of the
	// cheapest.
	PremiumShare float64 `yaml:"premium_share" json:"premium_share"`

	// RentalProbability and LessonProbability are the independent daily
	// chances of each activity for a guest who is on site.
	RentalProbability float64 `yaml:"rental_probability" json:"rental_probability"`
	LessonProbability float64 `yaml:"lesson_probability" json:"lesson_probability"`
}

// Default returns a scenario with the reference parameters. Loading a
// scenario file overlays it, so omitted fields keep these values.
func Default() *Scenario {
	return &Scenario{
		Version: "0.1.0",
		Catalog: CatalogDef{
			Rooms:       1500,
			Instructors: 150,
			Equipment:   300,
		},
		Demand: DemandDef{
			GrowthPerDay:      0,
			PremiumShare:      0.20,
			RentalProbability: 0.70,
			LessonProbability: 0.10,
		},
		InventoryPolicy: PolicySkip,
	}
}

// GrowthOffset returns the secular demand offset for the day at the given
// zero-based index into the season.
func (d DemandDef) GrowthOffset(dayIndex int) float64 {
	return d.GrowthPerDay * float64(dayIndex)
}
