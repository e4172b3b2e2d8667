// Package ids is the identifier service: it issues opaque unique ids
// for nodes and runtime instances and defines the interning rules for
// wollok.lang.Number and wollok.lang.String (spec §4.7, §6). Adapted
// from the teacher's pkg/ident package slot — a small, sharply-scoped
// identifier utility package — repurposed from case-insensitive name
// comparison (a DWScript concern this language does not share) to id
// issuance and interning.
package ids

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Generator mints a fresh, globally-unique opaque id. It never
// produces a string with the "N!" or "S!" prefix (spec §6).
type Generator interface {
	New() string
}

// UUIDGenerator is the default Generator, backed by google/uuid (the
// same library termfx-morfx and Sumatoshi-tech-codefang depend on in
// the retrieval pack).
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.NewString() }

// NumberPrefix and StringPrefix are the interning prefixes spec §4.7
// reserves; a Generator must never emit either.
const (
	NumberPrefix = "N!"
	StringPrefix = "S!"
)

// DefaultDecimalPrecision is used when no configuration overrides it
// (spec §4.7 example uses 5; internal/config exposes the tunable).
const DefaultDecimalPrecision = 5

// Service issues ids, applying the interning rules for the two
// primitive modules and delegating everything else to its Generator.
type Service struct {
	gen       Generator
	precision int
}

// New builds a Service with the given Generator and decimal
// precision. A nil Generator defaults to UUIDGenerator{}; a
// non-positive precision defaults to DefaultDecimalPrecision.
func New(gen Generator, precision int) *Service {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	if precision <= 0 {
		precision = DefaultDecimalPrecision
	}
	return &Service{gen: gen, precision: precision}
}

// NumberID rounds value to the service's decimal precision and
// returns both the canonical "N!"-prefixed interning id and the
// rounded value to store as innerValue (spec §4.7 "Number"). -0 is
// normalized to 0 before formatting so that createInstance(-0.0) and
// createInstance(0.0) intern to the same id (SPEC_FULL §5 decision).
// NaN is rejected: it has no canonical decimal form and comparing two
// NaN instances for interning equality would be meaningless.
func (s *Service) NumberID(value float64) (id string, rounded float64, err error) {
	if math.IsNaN(value) {
		return "", 0, fmt.Errorf("ids: cannot intern NaN as a Number instance")
	}
	if math.IsInf(value, 0) {
		return "", 0, fmt.Errorf("ids: cannot intern infinite value as a Number instance")
	}
	rounded = roundTo(value, s.precision)
	if rounded == 0 {
		rounded = 0 // normalizes -0 to 0
	}
	canonical := strconv.FormatFloat(rounded, 'f', s.precision, 64)
	return NumberPrefix + canonical, rounded, nil
}

// StringID returns the canonical "S!"-prefixed interning id for a
// String instance (spec §4.7 "String"): interning by exact value, no
// rounding involved.
func (s *Service) StringID(value string) string {
	return StringPrefix + value
}

// Fresh mints a non-interned id for any other module (spec §4.7
// "Otherwise").
func (s *Service) Fresh() string {
	return s.gen.New()
}

func roundTo(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}
