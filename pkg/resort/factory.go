package resort

import (
	"github.com/shopspring/decimal"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/sample"
	"github.com/frostline/resortgen/pkg/synth"
)

// Stay length in nights: bounded normal, almost always 3.
const (
	stayMeanNights = 3
	stayStdNights  = 0.22
	stayMinNights  = 1
	stayMaxNights  = 7
)

// NewUser generates a guest with randomized demographics.
func NewUser(fields synth.FieldSource, rng *sample.Source) User {
	return User{
		ID:          fields.UUID(),
		FirstName:   fields.FirstName(),
		LastName:    fields.LastName(),
		Email:       fields.Email(),
		Phone:       fields.Phone(),
		Address:     fields.Address(),
		Age:         rng.BoundedNormalInt(38, 7, 16, 60),
		Nationality: pickOne(rng, Nationalities),
		Gender:      pickOne(rng, Genders),
	}
}

// NewRoom generates a pool room. Singles sleep one; suites sleep two or three.
func NewRoom(fields synth.FieldSource, rng *sample.Source) Room {
	roomType := pickOne(rng, RoomTypes)
	capacity := 1
	if roomType == RoomSuite {
		capacity = rng.IntBetween(2, 4)
	}
	return Room{
		ID:            fields.UUID(),
		Type:          roomType,
		Capacity:      capacity,
		PricePerNight: NightlyRate(roomType),
		Description:   fields.Paragraph(),
	}
}

// NewInstructor generates a pool instructor.
func NewInstructor(fields synth.FieldSource, rng *sample.Source) Instructor {
	return Instructor{
		ID:             fields.UUID(),
		FirstName:      fields.FirstName(),
		LastName:       fields.LastName(),
		Phone:          fields.Phone(),
		Email:          fields.Email(),
		Specialisation: pickOne(rng, Specialisations),
	}
}

// NewEquipment generates a pool item.
func NewEquipment(fields synth.FieldSource, rng *sample.Source) Equipment {
	category := pickOne(rng, EquipmentCategories)
	return Equipment{
		ID:           fields.UUID(),
		Category:     category,
		Brand:        fields.Company(),
		Model:        fields.Word(),
		Size:         pickOne(rng, EquipmentSizes),
		PricePerHour: HourlyRate(category),
	}
}

// NewBooking creates a stay starting on checkIn. Premium guests take the
// most expensive available room, everyone else the cheapest. Returns
// ExhaustedInventoryError when every room is taken that day.
func NewBooking(user User, checkIn date.Date, c *Catalog, premium bool, fields synth.FieldSource, rng *sample.Source) (Booking, error) {
	nights := rng.BoundedNormalInt(stayMeanNights, stayStdNights, stayMinNights, stayMaxNights)

	avail := c.RoomsAvailable(checkIn)
	if len(avail) == 0 {
		return Booking{}, &ExhaustedInventoryError{Resource: "rooms", Day: checkIn}
	}
	room := avail[0]
	if premium {
		room = avail[len(avail)-1]
	}

	return Booking{
		ID:           fields.UUID(),
		UserID:       user.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(nights),
		RoomID:       room.ID,
		Price:        room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}

// NewRental hires a uniformly chosen available item for one to eight hours.
func NewRental(user User, day date.Date, c *Catalog, fields synth.FieldSource, rng *sample.Source) (Rental, error) {
	eq, err := sample.Pick(rng, c.EquipmentAvailable(day))
	if err != nil {
		return Rental{}, &ExhaustedInventoryError{Resource: "equipment", Day: day}
	}
	hours := rng.BoundedNormalInt(4, 1, 1, 8)

	return Rental{
		ID:            fields.UUID(),
		UserID:        user.ID,
		RentalDate:    day,
		EquipmentID:   eq.ID,
		DurationHours: hours,
		Price:         eq.PricePerHour.Mul(decimal.NewFromInt(int64(hours))),
	}, nil
}

// NewLesson books a uniformly chosen available instructor for one or two
// hours at a uniformly chosen level.
func NewLesson(user User, day date.Date, c *Catalog, fields synth.FieldSource, rng *sample.Source) (Lesson, error) {
	ins, err := sample.Pick(rng, c.InstructorsAvailable(day))
	if err != nil {
		return Lesson{}, &ExhaustedInventoryError{Resource: "instructors", Day: day}
	}
	level := pickOne(rng, LessonLevels)
	hours := rng.IntBetween(1, 3)

	return Lesson{
		ID:            fields.UUID(),
		UserID:        user.ID,
		LessonDate:    day,
		InstructorID:  ins.ID,
		Level:         level,
		DurationHours: hours,
		Price:         LessonRate(level).Mul(decimal.NewFromInt(int64(hours))),
	}, nil
}

// NewTransaction records the payment for a booking, rental, or lesson.
// Booking payments are backdated 3 to 29 days before check-in; rentals and
// lessons are paid on the day. The amount is looked up from the referenced
// record, never recomputed.
func NewTransaction(ref Priced, activityDate date.Date, c *Catalog, fields synth.FieldSource, rng *sample.Source) Transaction {
	t := Transaction{
		ID:              fields.UUID(),
		TransactionDate: activityDate,
		Amount:          c.Price(ref),
		PaymentMethod:   pickOne(rng, PaymentMethods),
	}

	switch v := ref.(type) {
	case Booking:
		t.UserID = v.UserID
		t.BookingID = v.ID
		t.TransactionDate = activityDate.AddDays(-rng.IntBetween(3, 30))
	case Rental:
		t.UserID = v.UserID
		t.RentalID = v.ID
	case Lesson:
		t.UserID = v.UserID
		t.LessonID = v.ID
	}

	return t
}

// pickOne draws uniformly from a fixed non-empty enumeration, where the
// empty-choice error cannot occur.
func pickOne[T any](rng *sample.Source, items []T) T {
	v, _ := sample.Pick(rng, items)
	return v
}
