// Package export writes a generated dataset out as flat tables: one CSV
// file per collection, or a single JSON document.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/frostline/resortgen/pkg/sim"
)

// WriteCSV writes the eight collections as CSV files into dir, creating it
// if needed. Files are named after their collection (users.csv, rooms.csv,
// and so on). Dates use the 2006-01-02 layout; prices keep two decimals.
func WriteCSV(ds *sim.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	files := []struct {
		name   string
		header []string
		rows   func() [][]string
	}{
		{"users", []string{"id", "first_name", "last_name", "email", "phone", "address", "age", "nationality", "gender"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Users))
			for _, u := range ds.Users {
				rows = append(rows, []string{u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address, strconv.Itoa(u.Age), u.Nationality, u.Gender})
			}
			return rows
		}},
		{"rooms", []string{"id", "type", "capacity", "price_per_night", "description"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Rooms))
			for _, r := range ds.Rooms {
				rows = append(rows, []string{r.ID, string(r.Type), strconv.Itoa(r.Capacity), r.PricePerNight.StringFixed(2), r.Description})
			}
			return rows
		}},
		{"instructors", []string{"id", "first_name", "last_name", "phone", "email", "specialisation"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Instructors))
			for _, ins := range ds.Instructors {
				rows = append(rows, []string{ins.ID, ins.FirstName, ins.LastName, ins.Phone, ins.Email, string(ins.Specialisation)})
			}
			return rows
		}},
		{"equipment", []string{"id", "category", "brand", "model", "size", "price_per_hour"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Equipment))
			for _, eq := range ds.Equipment {
				rows = append(rows, []string{eq.ID, string(eq.Category), eq.Brand, eq.Model, string(eq.Size), eq.PricePerHour.StringFixed(2)})
			}
			return rows
		}},
		{"bookings", []string{"id", "user_id", "check_in_date", "check_out_date", "room_id", "price"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Bookings))
			for _, b := range ds.Bookings {
				rows = append(rows, []string{b.ID, b.UserID, b.CheckInDate.String(), b.CheckOutDate.String(), b.RoomID, b.Price.StringFixed(2)})
			}
			return rows
		}},
		{"rentals", []string{"id", "user_id", "rental_date", "equipment_id", "duration_hours", "price"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Rentals))
			for _, r := range ds.Rentals {
				rows = append(rows, []string{r.ID, r.UserID, r.RentalDate.String(), r.EquipmentID, strconv.Itoa(r.DurationHours), r.Price.StringFixed(2)})
			}
			return rows
		}},
		{"lessons", []string{"id", "user_id", "lesson_date", "instructor_id", "level", "duration_hours", "price"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Lessons))
			for _, l := range ds.Lessons {
				rows = append(rows, []string{l.ID, l.UserID, l.LessonDate.String(), l.InstructorID, string(l.Level), strconv.Itoa(l.DurationHours), l.Price.StringFixed(2)})
			}
			return rows
		}},
		{"transactions", []string{"id", "user_id", "booking_id", "rental_id", "lesson_id", "transaction_date", "amount", "payment_method"}, func() [][]string {
			rows := make([][]string, 0, len(ds.Transactions))
			for _, t := range ds.Transactions {
				rows = append(rows, []string{t.ID, t.UserID, t.BookingID, t.RentalID, t.LessonID, t.TransactionDate.String(), t.Amount.StringFixed(2), string(t.PaymentMethod)})
			}
			return rows
		}},
	}

	for _, f := range files {
		if err := writeCSVFile(filepath.Join(dir, f.name+".csv"), f.header, f.rows()); err != nil {
			return fmt.Errorf("writing %s.csv: %w", f.name, err)
		}
	}
	return nil
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}
