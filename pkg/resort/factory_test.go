package resort

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/sample"
)

func TestNewUserAttributes(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(2)

	for i := 0; i < 200; i++ {
		u := NewUser(fields, rng)
		require.NotEmpty(t, u.ID)
		assert.GreaterOrEqual(t, u.Age, 16)
		assert.LessOrEqual(t, u.Age, 60)
		assert.Contains(t, Nationalities, u.Nationality)
		assert.Contains(t, Genders, u.Gender)
	}
}

func TestNewRoomCapacityByType(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(2)

	sawSuite := false
	for i := 0; i < 100; i++ {
		r := NewRoom(fields, rng)
		switch r.Type {
		case RoomSingle:
			assert.Equal(t, 1, r.Capacity)
		case RoomSuite:
			sawSuite = true
			assert.GreaterOrEqual(t, r.Capacity, 2)
			assert.LessOrEqual(t, r.Capacity, 3)
		}
		assert.True(t, r.PricePerNight.Equal(NightlyRate(r.Type)))
	}
	assert.True(t, sawSuite, "no suite generated in 100 rooms")
}

func TestNewBookingStayAndPrice(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(3)
	c := newTestCatalog(t, 50, 1, 1)
	user := NewUser(fields, rng)
	checkIn := date.New(2023, time.December, 20)

	for i := 0; i < 40; i++ {
		b, err := NewBooking(user, checkIn, c, false, fields, rng)
		require.NoError(t, err)

		nights := b.Nights()
		assert.True(t, b.CheckOutDate.After(b.CheckInDate), "checkout must be after check-in")
		assert.GreaterOrEqual(t, nights, 1)
		assert.LessOrEqual(t, nights, 7)

		var room Room
		for _, r := range c.Rooms {
			if r.ID == b.RoomID {
				room = r
			}
		}
		require.NotEmpty(t, room.ID, "booked room must exist in the pool")
		assert.True(t, b.Price.Equal(room.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))),
			"price %s != %s x %d nights", b.Price, room.PricePerNight, nights)

		c.AddBooking(b)
	}
}

func TestNewBookingPremiumSelection(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(4)
	c := newTestCatalog(t, 40, 1, 1)
	user := NewUser(fields, rng)
	day := date.New(2024, time.January, 10)

	avail := c.RoomsAvailable(day)
	require.NotEmpty(t, avail)
	cheapest := avail[0]
	priciest := avail[len(avail)-1]

	b, err := NewBooking(user, day, c, false, fields, rng)
	require.NoError(t, err)
	assert.Equal(t, cheapest.ID, b.RoomID, "non-premium guest should get the cheapest room")

	p, err := NewBooking(user, day, c, true, fields, rng)
	require.NoError(t, err)
	assert.Equal(t, priciest.ID, p.RoomID, "premium guest should get the priciest room")
}

func TestNewBookingExhaustedRooms(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(5)
	c := newTestCatalog(t, 2, 1, 1)
	day := date.New(2024, time.January, 10)

	for i := 0; i < 2; i++ {
		u := NewUser(fields, rng)
		b, err := NewBooking(u, day, c, false, fields, rng)
		require.NoError(t, err)
		c.AddBooking(b)
	}

	u := NewUser(fields, rng)
	_, err := NewBooking(u, day, c, false, fields, rng)
	require.Error(t, err)
	assert.True(t, IsExhaustedInventory(err))
	assert.Contains(t, err.Error(), "rooms")
}

func TestNewRentalDurationAndPrice(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(6)
	c := newTestCatalog(t, 1, 1, 30)
	user := NewUser(fields, rng)
	day := date.New(2024, time.February, 1)

	for i := 0; i < 25; i++ {
		r, err := NewRental(user, day, c, fields, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.DurationHours, 1)
		assert.LessOrEqual(t, r.DurationHours, 8)

		var eq Equipment
		for _, e := range c.Equipment {
			if e.ID == r.EquipmentID {
				eq = e
			}
		}
		require.NotEmpty(t, eq.ID)
		assert.True(t, r.Price.Equal(eq.PricePerHour.Mul(decimal.NewFromInt(int64(r.DurationHours)))))

		c.AddRental(r)
	}
}

func TestNewRentalExhausted(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(7)
	c := newTestCatalog(t, 1, 1, 1)
	user := NewUser(fields, rng)
	day := date.New(2024, time.February, 1)

	r, err := NewRental(user, day, c, fields, rng)
	require.NoError(t, err)
	c.AddRental(r)

	_, err = NewRental(user, day, c, fields, rng)
	require.Error(t, err)
	assert.True(t, IsExhaustedInventory(err))
}

func TestNewLessonLevelAndPrice(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(8)
	c := newTestCatalog(t, 1, 30, 1)
	user := NewUser(fields, rng)
	day := date.New(2024, time.February, 2)

	for i := 0; i < 25; i++ {
		l, err := NewLesson(user, day, c, fields, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, l.DurationHours, 1)
		assert.LessOrEqual(t, l.DurationHours, 2)
		assert.Contains(t, LessonLevels, l.Level)
		assert.True(t, l.Price.Equal(LessonRate(l.Level).Mul(decimal.NewFromInt(int64(l.DurationHours)))))

		c.AddLesson(l)
	}
}

func TestNewTransactionBookingBackdated(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(9)
	c := newTestCatalog(t, 5, 1, 1)
	user := NewUser(fields, rng)
	checkIn := date.New(2024, time.February, 20)

	for i := 0; i < 50; i++ {
		b, err := NewBooking(user, checkIn, c, false, fields, rng)
		require.NoError(t, err)

		tx := NewTransaction(b, checkIn, c, fields, rng)
		assert.Equal(t, b.ID, tx.BookingID)
		assert.Empty(t, tx.RentalID)
		assert.Empty(t, tx.LessonID)
		assert.Equal(t, user.ID, tx.UserID)
		assert.True(t, tx.Amount.Equal(b.Price), "amount must be copied from the booking")
		assert.Contains(t, PaymentMethods, tx.PaymentMethod)

		offset := tx.TransactionDate.DaysUntil(checkIn)
		assert.GreaterOrEqual(t, offset, 3, "payment at least 3 days before check-in")
		assert.LessOrEqual(t, offset, 29, "payment at most 29 days before check-in")
	}
}

func TestNewTransactionSameDayActivities(t *testing.T) {
	fields := &stubFields{}
	rng := sample.New(10)
	c := newTestCatalog(t, 1, 5, 5)
	user := NewUser(fields, rng)
	day := date.New(2024, time.February, 21)

	r, err := NewRental(user, day, c, fields, rng)
	require.NoError(t, err)
	tx := NewTransaction(r, day, c, fields, rng)
	assert.Equal(t, r.ID, tx.RentalID)
	assert.Equal(t, day, tx.TransactionDate)
	assert.True(t, tx.Amount.Equal(r.Price))

	l, err := NewLesson(user, day, c, fields, rng)
	require.NoError(t, err)
	tx = NewTransaction(l, day, c, fields, rng)
	assert.Equal(t, l.ID, tx.LessonID)
	assert.Equal(t, day, tx.TransactionDate)
	assert.True(t, tx.Amount.Equal(l.Price))
}
