// Package synth supplies realistic-looking field values (names, contact
// details, free text) and unique identifiers for generated records. Callers
// depend on the FieldSource contract only; the default implementation is
// backed by gofakeit and draws from the same seeded stream as the rest of
// the run, so identical seeds produce identical datasets.
package synth

import (
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/frostline/resortgen/pkg/sample"
)

// FieldSource produces one plausible value per call.
type FieldSource interface {
	FirstName() string
	LastName() string
	Email() string
	Phone() string
	Address() string
	Company() string
	Word() string
	Paragraph() string
	UUID() string
}

// Faker is the gofakeit-backed FieldSource.
type Faker struct {
	gf  *gofakeit.Faker
	ids io.Reader
}

var _ FieldSource = (*Faker)(nil)

// NewFaker builds a Faker over the given sample source.
func NewFaker(src *sample.Source) *Faker {
	return &Faker{
		gf:  gofakeit.NewFaker(src, false),
		ids: &streamReader{src: src},
	}
}

func (f *Faker) FirstName() string { return f.gf.FirstName() }
func (f *Faker) LastName() string  { return f.gf.LastName() }
func (f *Faker) Email() string     { return f.gf.Email() }
func (f *Faker) Phone() string     { return f.gf.PhoneFormatted() }
func (f *Faker) Company() string   { return f.gf.Company() }
func (f *Faker) Word() string      { return f.gf.Word() }

func (f *Faker) Address() string {
	return f.gf.Address().Address
}

func (f *Faker) Paragraph() string {
	return f.gf.Paragraph(1, 3, 12, " ")
}

// UUID returns a version 4 UUID drawn from the seeded stream rather than
// crypto/rand, keeping identifiers reproducible per seed.
func (f *Faker) UUID() string {
	id, err := uuid.NewRandomFromReader(f.ids)
	if err != nil {
		// streamReader cannot fail.
		return uuid.NewString()
	}
	return id.String()
}

// streamReader adapts a sample.Source to io.Reader for UUID generation.
type streamReader struct {
	src *sample.Source
}

func (r *streamReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.src.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
