// Package resort defines the ski-resort entities, the fixed attribute
// enumerations and price tables, and the Catalog holding the resource pools
// with their date-dependent availability.
package resort

import (
	"github.com/shopspring/decimal"

	"github.com/frostline/resortgen/pkg/date"
)

// RoomType classifies a room and determines its nightly rate.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomSuite  RoomType = "Suite"
)

// Specialisation is an instructor's discipline.
type Specialisation string

const (
	SpecSki       Specialisation = "Ski"
	SpecSnowboard Specialisation = "Snowboard"
)

// EquipmentCategory classifies a rentable item and determines its hourly rate.
type EquipmentCategory string

const (
	EquipSki       EquipmentCategory = "Ski"
	EquipSnowboard EquipmentCategory = "Snowboard"
	EquipHelmet    EquipmentCategory = "Helmet"
	EquipPoles     EquipmentCategory = "Poles"
)

// EquipmentSize is a garment-style size label.
type EquipmentSize string

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

// LessonLevel determines a lesson's hourly base price.
type LessonLevel string

const (
	LevelBeginner     LessonLevel = "Beginner"
	LevelIntermediate LessonLevel = "Intermediate"
	LevelAdvanced     LessonLevel = "Advanced"
)

// Fixed enumerations guest and catalog attributes are drawn from.
var (
	Nationalities = []string{"USA", "UK", "Canada", "Australia", "India", "Germany", "France", "Italy", "Japan", "China"}
	Genders       = []string{"Male", "Female", "Other"}

	RoomTypes           = []RoomType{RoomSingle, RoomSuite}
	Specialisations     = []Specialisation{SpecSki, SpecSnowboard}
	EquipmentCategories = []EquipmentCategory{EquipSki, EquipSnowboard, EquipHelmet, EquipPoles}
	EquipmentSizes      = []EquipmentSize{"S", "M", "L", "XL"}
	PaymentMethods      = []PaymentMethod{"Credit Card", "Debit Card", "Paypal"}
	LessonLevels        = []LessonLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
)

// User is a guest. Immutable once created; bookings, rentals, and lessons
// reference it by ID.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender"`
}

// Room is a catalog pool entry. Created once, never mutated.
type Room struct {
	ID            string          `json:"id"`
	Type          RoomType        `json:"type"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Description   string          `json:"description"`
}

// Instructor is a catalog pool entry.
type Instructor struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Specialisation Specialisation `json:"specialisation"`
}

// Equipment is a catalog pool entry.
type Equipment struct {
	ID           string            `json:"id"`
	Category     EquipmentCategory `json:"category"`
	Brand        string            `json:"brand"`
	Model        string            `json:"model"`
	Size         EquipmentSize     `json:"size"`
	PricePerHour decimal.Decimal   `json:"price_per_hour"`
}

// Booking is a stay in a room over [CheckInDate, CheckOutDate].
type Booking struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	CheckInDate  date.Date       `json:"check_in_date"`
	CheckOutDate date.Date       `json:"check_out_date"`
	RoomID       string          `json:"room_id"`
	Price        decimal.Decimal `json:"price"`
}

// Nights returns the length of the stay in nights.
func (b Booking) Nights() int {
	return b.CheckInDate.DaysUntil(b.CheckOutDate)
}

// Contains reports whether the stay interval includes the given day.
func (b Booking) Contains(day date.Date) bool {
	return !day.Before(b.CheckInDate) && !day.After(b.CheckOutDate)
}

// Rental is a single-day equipment hire.
type Rental struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	RentalDate    date.Date       `json:"rental_date"`
	EquipmentID   string          `json:"equipment_id"`
	DurationHours int             `json:"duration_hours"`
	Price         decimal.Decimal `json:"price"`
}

// Lesson is a single-day session with an instructor.
type Lesson struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	LessonDate    date.Date       `json:"lesson_date"`
	InstructorID  string          `json:"instructor_id"`
	Level         LessonLevel     `json:"level"`
	DurationHours int             `json:"duration_hours"`
	Price         decimal.Decimal `json:"price"`
}

// Transaction is a payment for exactly one booking, rental, or lesson.
type Transaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	BookingID       string          `json:"booking_id,omitempty"`
	RentalID        string          `json:"rental_id,omitempty"`
	LessonID        string          `json:"lesson_id,omitempty"`
	TransactionDate date.Date       `json:"transaction_date"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
}

// Priced is implemented by the records a transaction can pay for.
type Priced interface {
	Amount() decimal.Decimal
}

func (b Booking) Amount() decimal.Decimal { return b.Price }
func (r Rental) Amount() decimal.Decimal  { return r.Price }
func (l Lesson) Amount() decimal.Decimal  { return l.Price }
