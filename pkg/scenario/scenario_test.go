package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/frostline/resortgen/pkg/date"
)

func TestLoadProject(t *testing.T) {
	sc, err := LoadProject("../../examples/default-resort")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if sc.Version != "0.1.0" {
		t.Errorf("version = %q, want %q", sc.Version, "0.1.0")
	}
	if sc.Season.StartDate != date.New(2022, time.July, 1) {
		t.Errorf("start_date = %v, want 2022-07-01", sc.Season.StartDate)
	}
	if sc.Season.EndDate != date.New(2024, time.November, 1) {
		t.Errorf("end_date = %v, want 2024-11-01", sc.Season.EndDate)
	}

	if sc.Catalog.Rooms != 1500 {
		t.Errorf("rooms = %d, want 1500", sc.Catalog.Rooms)
	}
	if sc.Catalog.Instructors != 150 {
		t.Errorf("instructors = %d, want 150", sc.Catalog.Instructors)
	}
	if sc.Catalog.Equipment != 300 {
		t.Errorf("equipment = %d, want 300", sc.Catalog.Equipment)
	}

	if sc.Demand.PremiumShare != 0.2 {
		t.Errorf("premium_share = %v, want 0.2", sc.Demand.PremiumShare)
	}
	if sc.Demand.RentalProbability != 0.7 {
		t.Errorf("rental_probability = %v, want 0.7", sc.Demand.RentalProbability)
	}
	if sc.Demand.LessonProbability != 0.1 {
		t.Errorf("lesson_probability = %v, want 0.1", sc.Demand.LessonProbability)
	}
	if sc.Demand.GrowthPerDay != 0 {
		t.Errorf("growth_per_day = %v, want 0", sc.Demand.GrowthPerDay)
	}

	if sc.InventoryPolicy != PolicySkip {
		t.Errorf("inventory_policy = %q, want skip", sc.InventoryPolicy)
	}
	if sc.Seed != 20221101 {
		t.Errorf("seed = %d, want 20221101", sc.Seed)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	// A minimal scenario: omitted fields keep the reference defaults.
	dir := t.TempDir()
	path := filepath.Join(dir, "resort.yaml")
	minimal := `
season:
  start_date: 2023-12-01
  end_date: 2023-12-31
catalog:
  rooms: 40
`
	if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if sc.Catalog.Rooms != 40 {
		t.Errorf("rooms = %d, want explicit 40", sc.Catalog.Rooms)
	}
	if sc.Catalog.Instructors != 150 {
		t.Errorf("instructors = %d, want default 150", sc.Catalog.Instructors)
	}
	if sc.Catalog.Equipment != 300 {
		t.Errorf("equipment = %d, want default 300", sc.Catalog.Equipment)
	}
	if sc.Demand.PremiumShare != 0.20 {
		t.Errorf("premium_share = %v, want default 0.20", sc.Demand.PremiumShare)
	}
	if sc.InventoryPolicy != PolicySkip {
		t.Errorf("inventory_policy = %q, want default skip", sc.InventoryPolicy)
	}
	if sc.Seed != 0 {
		t.Errorf("seed = %d, want default 0", sc.Seed)
	}
}

func TestLoadExplicitZeroProbability(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resort.yaml")
	content := `
season:
  start_date: 2023-12-01
  end_date: 2023-12-31
demand:
  lesson_probability: 0.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sc.Demand.LessonProbability != 0 {
		t.Errorf("lesson_probability = %v, want explicit 0", sc.Demand.LessonProbability)
	}
	if sc.Demand.RentalProbability != 0.7 {
		t.Errorf("rental_probability = %v, want default 0.7", sc.Demand.RentalProbability)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestGrowthOffset(t *testing.T) {
	d := DemandDef{GrowthPerDay: 0.2}
	if got := d.GrowthOffset(0); got != 0 {
		t.Errorf("day 0 offset = %v, want 0", got)
	}
	if got := d.GrowthOffset(10); got != 2.0 {
		t.Errorf("day 10 offset = %v, want 2.0", got)
	}
}
