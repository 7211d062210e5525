// Package summary computes post-run analytics over a generated dataset:
// record counts, revenue broken down by stream and payment method, stay
// statistics, and a month-by-month booking series.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/resort"
	"github.com/frostline/resortgen/pkg/sim"
)

// Report is the complete dataset summary.
type Report struct {
	Counts  Counts       `json:"counts"`
	Revenue Revenue      `json:"revenue"`
	Stays   Stays        `json:"stays"`
	Monthly []MonthlyRow `json:"monthly"`
}

// Counts holds per-collection record counts.
type Counts struct {
	Users        int `json:"users"`
	Rooms        int `json:"rooms"`
	Instructors  int `json:"instructors"`
	Equipment    int `json:"equipment"`
	Bookings     int `json:"bookings"`
	Rentals      int `json:"rentals"`
	Lessons      int `json:"lessons"`
	Transactions int `json:"transactions"`
}

// Revenue aggregates transaction amounts.
type Revenue struct {
	Gross    decimal.Decimal                        `json:"gross"`
	Bookings decimal.Decimal                        `json:"bookings"`
	Rentals  decimal.Decimal                        `json:"rentals"`
	Lessons  decimal.Decimal                        `json:"lessons"`
	ByMethod map[resort.PaymentMethod]decimal.Decimal `json:"by_method"`
}

// Stays describes the booking population.
type Stays struct {
	AverageNights float64   `json:"average_nights"`
	PeakDay       date.Date `json:"peak_day"`
	PeakOccupancy int       `json:"peak_occupancy"`
}

// MonthlyRow is one month of the booking series, keyed by check-in month.
type MonthlyRow struct {
	Month    string          `json:"month"` // 2006-01
	Bookings int             `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// Summarize computes the full report for a dataset.
func Summarize(ds *sim.Dataset) *Report {
	return &Report{
		Counts:  countRecords(ds),
		Revenue: sumRevenue(ds),
		Stays:   stayStats(ds.Bookings),
		Monthly: monthlySeries(ds.Bookings),
	}
}

func countRecords(ds *sim.Dataset) Counts {
	return Counts{
		Users:        len(ds.Users),
		Rooms:        len(ds.Rooms),
		Instructors:  len(ds.Instructors),
		Equipment:    len(ds.Equipment),
		Bookings:     len(ds.Bookings),
		Rentals:      len(ds.Rentals),
		Lessons:      len(ds.Lessons),
		Transactions: len(ds.Transactions),
	}
}

func sumRevenue(ds *sim.Dataset) Revenue {
	rev := Revenue{
		ByMethod: make(map[resort.PaymentMethod]decimal.Decimal),
	}

	for _, t := range ds.Transactions {
		rev.Gross = rev.Gross.Add(t.Amount)
		rev.ByMethod[t.PaymentMethod] = rev.ByMethod[t.PaymentMethod].Add(t.Amount)

		switch {
		case t.BookingID != "":
			rev.Bookings = rev.Bookings.Add(t.Amount)
		case t.RentalID != "":
			rev.Rentals = rev.Rentals.Add(t.Amount)
		case t.LessonID != "":
			rev.Lessons = rev.Lessons.Add(t.Amount)
		}
	}

	return rev
}

func stayStats(bookings []resort.Booking) Stays {
	if len(bookings) == 0 {
		return Stays{}
	}

	totalNights := 0
	occupancy := make(map[date.Date]int)
	for _, b := range bookings {
		totalNights += b.Nights()
		date.Range(b.CheckInDate, b.CheckOutDate, func(day date.Date) {
			occupancy[day]++
		})
	}

	stays := Stays{
		AverageNights: float64(totalNights) / float64(len(bookings)),
	}
	for day, n := range occupancy {
		if n > stays.PeakOccupancy || (n == stays.PeakOccupancy && day.Before(stays.PeakDay)) {
			stays.PeakDay = day
			stays.PeakOccupancy = n
		}
	}
	return stays
}

func monthlySeries(bookings []resort.Booking) []MonthlyRow {
	byMonth := make(map[string]*MonthlyRow)
	for _, b := range bookings {
		key := b.CheckInDate.Time().Format("2006-01")
		row, ok := byMonth[key]
		if !ok {
			row = &MonthlyRow{Month: key}
			byMonth[key] = row
		}
		row.Bookings++
		row.Revenue = row.Revenue.Add(b.Price)
	}

	rows := make([]MonthlyRow, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}
