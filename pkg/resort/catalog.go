package resort

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/sample"
	"github.com/frostline/resortgen/pkg/scenario"
	"github.com/frostline/resortgen/pkg/synth"
)

// Catalog holds the three fixed resource pools and the append-only activity
// logs. Pools are generated once at construction and never change; bookings,
// rentals, lessons, and transactions only ever append.
//
// Occupancy is indexed by day as records are appended, so availability
// queries never rescan the logs.
type Catalog struct {
	Rooms       []Room
	Instructors []Instructor
	Equipment   []Equipment

	Bookings     []Booking
	Rentals      []Rental
	Lessons      []Lesson
	Transactions []Transaction

	roomBusy       map[date.Date]map[string]bool
	equipmentBusy  map[date.Date]map[string]bool
	instructorBusy map[date.Date]map[string]bool

	// guests lists the IDs of users whose stay covers each day, in
	// booking order.
	guests map[date.Date][]string
}

// NewCatalog pre-populates the pools with randomized attributes.
func NewCatalog(sizes scenario.CatalogDef, fields synth.FieldSource, rng *sample.Source) *Catalog {
	c := &Catalog{
		Rooms:       make([]Room, 0, sizes.Rooms),
		Instructors: make([]Instructor, 0, sizes.Instructors),
		Equipment:   make([]Equipment, 0, sizes.Equipment),

		roomBusy:       make(map[date.Date]map[string]bool),
		equipmentBusy:  make(map[date.Date]map[string]bool),
		instructorBusy: make(map[date.Date]map[string]bool),
		guests:         make(map[date.Date][]string),
	}

	for i := 0; i < sizes.Rooms; i++ {
		c.Rooms = append(c.Rooms, NewRoom(fields, rng))
	}
	for i := 0; i < sizes.Instructors; i++ {
		c.Instructors = append(c.Instructors, NewInstructor(fields, rng))
	}
	for i := 0; i < sizes.Equipment; i++ {
		c.Equipment = append(c.Equipment, NewEquipment(fields, rng))
	}

	return c
}

// RoomsAvailable returns every room not occupied by a booking whose stay
// interval contains the given day, sorted ascending by nightly price with
// room ID as a deterministic tiebreak. An empty result means every room is
// taken that day.
func (c *Catalog) RoomsAvailable(day date.Date) []Room {
	busy := c.roomBusy[day]
	out := make([]Room, 0, len(c.Rooms)-len(busy))
	for _, room := range c.Rooms {
		if !busy[room.ID] {
			out = append(out, room)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].PricePerNight.Cmp(out[j].PricePerNight); cmp != 0 {
			return cmp < 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// InstructorsAvailable returns every instructor without a lesson on the
// given day, in pool order.
func (c *Catalog) InstructorsAvailable(day date.Date) []Instructor {
	busy := c.instructorBusy[day]
	out := make([]Instructor, 0, len(c.Instructors)-len(busy))
	for _, ins := range c.Instructors {
		if !busy[ins.ID] {
			out = append(out, ins)
		}
	}
	return out
}

// EquipmentAvailable returns every item without a rental on the given day,
// in pool order.
func (c *Catalog) EquipmentAvailable(day date.Date) []Equipment {
	busy := c.equipmentBusy[day]
	out := make([]Equipment, 0, len(c.Equipment)-len(busy))
	for _, eq := range c.Equipment {
		if !busy[eq.ID] {
			out = append(out, eq)
		}
	}
	return out
}

// Price returns the computed price already stored on a record. Transactions
// go through this indirection rather than recomputing from the rate tables.
func (c *Catalog) Price(rec Priced) decimal.Decimal {
	return rec.Amount()
}

// AddBooking appends a booking and marks its room occupied, and its guest
// on site, for every day of the stay.
func (c *Catalog) AddBooking(b Booking) {
	c.Bookings = append(c.Bookings, b)
	date.Range(b.CheckInDate, b.CheckOutDate, func(day date.Date) {
		markBusy(c.roomBusy, day, b.RoomID)
		c.guests[day] = append(c.guests[day], b.UserID)
	})
}

// AddRental appends a rental and marks its equipment taken for the day.
func (c *Catalog) AddRental(r Rental) {
	c.Rentals = append(c.Rentals, r)
	markBusy(c.equipmentBusy, r.RentalDate, r.EquipmentID)
}

// AddLesson appends a lesson and marks its instructor taken for the day.
func (c *Catalog) AddLesson(l Lesson) {
	c.Lessons = append(c.Lessons, l)
	markBusy(c.instructorBusy, l.LessonDate, l.InstructorID)
}

// AddTransaction appends a transaction.
func (c *Catalog) AddTransaction(t Transaction) {
	c.Transactions = append(c.Transactions, t)
}

// GuestsOn returns the IDs of users on site on the given day, in booking
// order.
func (c *Catalog) GuestsOn(day date.Date) []string {
	return c.guests[day]
}

// LatestCheckout returns the latest checkout date over all bookings, or a
// zero date when there are none.
func (c *Catalog) LatestCheckout() date.Date {
	var latest date.Date
	for _, b := range c.Bookings {
		latest = date.Max(latest, b.CheckOutDate)
	}
	return latest
}

func markBusy(index map[date.Date]map[string]bool, day date.Date, id string) {
	if index[day] == nil {
		index[day] = make(map[string]bool)
	}
	index[day][id] = true
}
