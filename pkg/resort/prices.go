package resort

import "github.com/shopspring/decimal"

// Rate tables. Prices derive from these fixed tables rather than per-item
// random draws so that identical room types always cost the same and the
// cheapest/priciest room selection is meaningful.
var (
	nightlyRates = map[RoomType]decimal.Decimal{
		RoomSingle: decimal.RequireFromString("90.00"),
		RoomSuite:  decimal.RequireFromString("145.00"),
	}

	hourlyRates = map[EquipmentCategory]decimal.Decimal{
		EquipSki:       decimal.RequireFromString("9.50"),
		EquipSnowboard: decimal.RequireFromString("9.00"),
		EquipHelmet:    decimal.RequireFromString("5.50"),
		EquipPoles:     decimal.RequireFromString("6.50"),
	}

	lessonRates = map[LessonLevel]decimal.Decimal{
		LevelBeginner:     decimal.RequireFromString("18.00"),
		LevelIntermediate: decimal.RequireFromString("30.00"),
		LevelAdvanced:     decimal.RequireFromString("45.00"),
	}
)

// NightlyRate returns the per-night price for a room type.
func NightlyRate(t RoomType) decimal.Decimal {
	return nightlyRates[t]
}

// HourlyRate returns the per-hour price for an equipment category.
func HourlyRate(c EquipmentCategory) decimal.Decimal {
	return hourlyRates[c]
}

// LessonRate returns the per-hour base price for a lesson level.
func LessonRate(l LessonLevel) decimal.Decimal {
	return lessonRates[l]
}
