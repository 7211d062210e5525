package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/resort"
	"github.com/frostline/resortgen/pkg/sim"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDataset() *sim.Dataset {
	dec := date.New(2023, time.December, 10)
	jan := date.New(2024, time.January, 5)

	return &sim.Dataset{
		Users: []resort.User{{ID: "u-1"}, {ID: "u-2"}},
		Rooms: []resort.Room{{ID: "r-1"}, {ID: "r-2"}, {ID: "r-3"}},
		Bookings: []resort.Booking{
			{ID: "b-1", UserID: "u-1", RoomID: "r-1", CheckInDate: dec, CheckOutDate: dec.AddDays(3), Price: money("270.00")},
			{ID: "b-2", UserID: "u-2", RoomID: "r-2", CheckInDate: jan, CheckOutDate: jan.AddDays(1), Price: money("145.00")},
		},
		Rentals: []resort.Rental{
			{ID: "re-1", UserID: "u-1", RentalDate: dec.Next(), Price: money("38.00")},
		},
		Lessons: []resort.Lesson{
			{ID: "le-1", UserID: "u-2", LessonDate: jan, Price: money("36.00")},
		},
		Transactions: []resort.Transaction{
			{ID: "t-1", UserID: "u-1", BookingID: "b-1", Amount: money("270.00"), PaymentMethod: "Paypal"},
			{ID: "t-2", UserID: "u-2", BookingID: "b-2", Amount: money("145.00"), PaymentMethod: "Credit Card"},
			{ID: "t-3", UserID: "u-1", RentalID: "re-1", Amount: money("38.00"), PaymentMethod: "Credit Card"},
			{ID: "t-4", UserID: "u-2", LessonID: "le-1", Amount: money("36.00"), PaymentMethod: "Debit Card"},
		},
	}
}

func TestSummarizeCounts(t *testing.T) {
	r := Summarize(testDataset())

	if r.Counts.Users != 2 || r.Counts.Rooms != 3 || r.Counts.Bookings != 2 {
		t.Errorf("counts = %+v", r.Counts)
	}
	if r.Counts.Rentals != 1 || r.Counts.Lessons != 1 || r.Counts.Transactions != 4 {
		t.Errorf("counts = %+v", r.Counts)
	}
}

func TestSummarizeRevenue(t *testing.T) {
	r := Summarize(testDataset())

	if !r.Revenue.Gross.Equal(money("489.00")) {
		t.Errorf("gross = %s, want 489.00", r.Revenue.Gross)
	}
	if !r.Revenue.Bookings.Equal(money("415.00")) {
		t.Errorf("booking revenue = %s, want 415.00", r.Revenue.Bookings)
	}
	if !r.Revenue.Rentals.Equal(money("38.00")) {
		t.Errorf("rental revenue = %s, want 38.00", r.Revenue.Rentals)
	}
	if !r.Revenue.Lessons.Equal(money("36.00")) {
		t.Errorf("lesson revenue = %s, want 36.00", r.Revenue.Lessons)
	}
	if !r.Revenue.ByMethod["Credit Card"].Equal(money("183.00")) {
		t.Errorf("credit card revenue = %s, want 183.00", r.Revenue.ByMethod["Credit Card"])
	}
}

func TestSummarizeStays(t *testing.T) {
	r := Summarize(testDataset())

	// Stays of 3 and 1 nights.
	if r.Stays.AverageNights != 2.0 {
		t.Errorf("average nights = %v, want 2.0", r.Stays.AverageNights)
	}
	if r.Stays.PeakOccupancy != 1 {
		t.Errorf("peak occupancy = %d, want 1 (no overlapping stays)", r.Stays.PeakOccupancy)
	}
}

func TestSummarizeMonthly(t *testing.T) {
	r := Summarize(testDataset())

	if len(r.Monthly) != 2 {
		t.Fatalf("monthly rows = %d, want 2", len(r.Monthly))
	}
	if r.Monthly[0].Month != "2023-12" || r.Monthly[1].Month != "2024-01" {
		t.Errorf("months = %s, %s; want sorted 2023-12, 2024-01", r.Monthly[0].Month, r.Monthly[1].Month)
	}
	if r.Monthly[0].Bookings != 1 || !r.Monthly[0].Revenue.Equal(money("270.00")) {
		t.Errorf("december row = %+v", r.Monthly[0])
	}
}

func TestSummarizeEmptyDataset(t *testing.T) {
	r := Summarize(&sim.Dataset{})

	if r.Counts.Bookings != 0 {
		t.Errorf("counts = %+v", r.Counts)
	}
	if !r.Revenue.Gross.Equal(decimal.Zero) {
		t.Errorf("gross = %s, want 0", r.Revenue.Gross)
	}
	if r.Stays.AverageNights != 0 {
		t.Errorf("average nights = %v, want 0", r.Stays.AverageNights)
	}
	if len(r.Monthly) != 0 {
		t.Errorf("monthly rows = %d, want 0", len(r.Monthly))
	}
}
