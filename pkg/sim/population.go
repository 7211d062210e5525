package sim

import (
	"time"

	"github.com/frostline/resortgen/pkg/date"
	"github.com/frostline/resortgen/pkg/resort"
	"github.com/frostline/resortgen/pkg/sample"
	"github.com/frostline/resortgen/pkg/scenario"
	"github.com/frostline/resortgen/pkg/synth"
)

// Population manages the set of generated guests: it sizes each day's
// demand, creates guests with their bookings, and dispatches on-site
// behavior.
type Population struct {
	users []resort.User
	byID  map[string]resort.User

	demand scenario.DemandDef
	fields synth.FieldSource
	rng    *sample.Source
}

// NewPopulation creates an empty population.
func NewPopulation(demand scenario.DemandDef, fields synth.FieldSource, rng *sample.Source) *Population {
	return &Population{
		byID:   make(map[string]resort.User),
		demand: demand,
		fields: fields,
		rng:    rng,
	}
}

// Users returns every guest created so far, in creation order.
func (p *Population) Users() []resort.User {
	return p.users
}

// SizeDailyDemand returns the number of new guests arriving to book on the
// given day. Base demand is Normal(25,5); shoulder months (October, May) add
// Normal(5,2), pre-season months (November, April) add Normal(10,4), and
// winter (December through March) adds Normal(25,5). Weekends add a uniform
// integer in [5,10). growthOffset is a caller-supplied secular term. The
// result is floored and never negative.
func (p *Population) SizeDailyDemand(day date.Date, growthOffset float64) int {
	n := p.rng.Normal(25, 5)

	switch day.Month {
	case time.October, time.May:
		n += p.rng.Normal(5, 2)
	case time.November, time.April:
		n += p.rng.Normal(10, 4)
	case time.December, time.January, time.February, time.March:
		n += p.rng.Normal(25, 5)
	}

	if day.IsWeekend() {
		n += float64(p.rng.IntBetween(5, 10))
	}

	n += growthOffset

	if n < 0 {
		return 0
	}
	return int(n)
}

// GenerateBookings creates the day's demand: each new guest makes exactly
// one booking checking in on the given day, premium with probability
// demand.premium_share, plus its backdated payment.
//
// When the room pool is exhausted mid-day the inventory policy decides the
// outcome: under "skip" the rest of the day's demand is dropped and the
// dropped count returned; under "abort" the error is returned as is. A
// guest whose booking is dropped is not added to the population.
func (p *Population) GenerateBookings(day date.Date, growthOffset float64, c *resort.Catalog, policy string) (skipped int, err error) {
	n := p.SizeDailyDemand(day, growthOffset)

	for i := 0; i < n; i++ {
		user := resort.NewUser(p.fields, p.rng)
		premium := p.rng.Chance(p.demand.PremiumShare)

		booking, err := resort.NewBooking(user, day, c, premium, p.fields, p.rng)
		if err != nil {
			if policy == scenario.PolicyAbort || !resort.IsExhaustedInventory(err) {
				return 0, err
			}
			// Every later attempt today hits the same empty pool.
			return n - i, nil
		}

		p.users = append(p.users, user)
		p.byID[user.ID] = user

		c.AddBooking(booking)
		c.AddTransaction(resort.NewTransaction(booking, day, c, p.fields, p.rng))
	}

	return 0, nil
}

// UsersOnSite returns every guest whose stay interval contains the given
// day, in booking order.
func (p *Population) UsersOnSite(day date.Date, c *resort.Catalog) []resort.User {
	ids := c.GuestsOn(day)
	out := make([]resort.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := p.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out
}

// SimulateActivity walks the guests on site on the given day. Each guest
// independently rents equipment with demand.rental_probability and takes a
// lesson with demand.lesson_probability; the checks are independent, so a
// guest may do neither, either, or both. Every activity appends a same-day
// payment.
//
// Exhausted equipment or instructor pools follow the inventory policy the
// same way GenerateBookings does, per resource kind.
func (p *Population) SimulateActivity(day date.Date, c *resort.Catalog, policy string) (skipped int, err error) {
	equipmentOut := false
	instructorsOut := false

	for _, user := range p.UsersOnSite(day, c) {
		if p.rng.Chance(p.demand.RentalProbability) {
			if equipmentOut {
				skipped++
			} else {
				rental, err := resort.NewRental(user, day, c, p.fields, p.rng)
				switch {
				case err == nil:
					c.AddRental(rental)
					c.AddTransaction(resort.NewTransaction(rental, day, c, p.fields, p.rng))
				case policy == scenario.PolicyAbort || !resort.IsExhaustedInventory(err):
					return 0, err
				default:
					equipmentOut = true
					skipped++
				}
			}
		}

		if p.rng.Chance(p.demand.LessonProbability) {
			if instructorsOut {
				skipped++
			} else {
				lesson, err := resort.NewLesson(user, day, c, p.fields, p.rng)
				switch {
				case err == nil:
					c.AddLesson(lesson)
					c.AddTransaction(resort.NewTransaction(lesson, day, c, p.fields, p.rng))
				case policy == scenario.PolicyAbort || !resort.IsExhaustedInventory(err):
					return 0, err
				default:
					instructorsOut = true
					skipped++
				}
			}
		}
	}

	return skipped, nil
}
