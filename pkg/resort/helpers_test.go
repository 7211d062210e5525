package resort

import (
	"fmt"

	"github.com/frostline/resortgen/pkg/synth"
)

// stubFields is a deterministic FieldSource for tests: every value is a
// labeled counter.
type stubFields struct {
	n int
}

var _ synth.FieldSource = (*stubFields)(nil)

func (s *stubFields) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%04d", prefix, s.n)
}

func (s *stubFields) FirstName() string { return s.next("first") }
func (s *stubFields) LastName() string  { return s.next("last") }
func (s *stubFields) Email() string     { return s.next("email") }
func (s *stubFields) Phone() string     { return s.next("phone") }
func (s *stubFields) Address() string   { return s.next("addr") }
func (s *stubFields) Company() string   { return s.next("brand") }
func (s *stubFields) Word() string      { return s.next("model") }
func (s *stubFields) Paragraph() string { return s.next("text") }
func (s *stubFields) UUID() string      { return s.next("id") }
