package date

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the standard period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains returns true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Overlaps returns true when the two ranges share at least one day.
func (r Range) Overlaps(o Range) bool { return !r.To.Before(o.From) && !o.To.Before(r.From) }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Period returns the standard period of this range if it matches one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From.Day() == 1 && r.From.Month() == r.To.Month() && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Monthly, false
	}
}

// Identifier computes a unique identifier for the Range, using a short
// insightful name (2025-Q3, 2025-07, 2025) when the range is a standard period.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Monthly:
		return fmt.Sprintf("%d-%02d", r.From.Year(), r.From.Month())
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return fmt.Sprintf("%d", r.From.Year())
	default:
		panic("unknown period")
	}
}

// ParseRange parses a range identifier as produced by Identifier:
// "2025", "2025-07", "2025-Q3", or "2025-01-01_2025-06-30".
func ParseRange(str string) (Range, error) {
	if from, to, found := strings.Cut(str, "_"); found {
		f, err := Parse(from)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", str, err)
		}
		t, err := Parse(to)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", str, err)
		}
		if t.Before(f) {
			return Range{}, fmt.Errorf("invalid range %q: end before start", str)
		}
		return Range{From: f, To: t}, nil
	}

	var y, m, q int
	if n, err := fmt.Sscanf(str, "%d-Q%d", &y, &q); err == nil && n == 2 && q >= 1 && q <= 4 {
		return NewRange(New(y, time.Month((q-1)*3+1), 1), Quarterly), nil
	}
	if n, err := fmt.Sscanf(str, "%d-%d", &y, &m); err == nil && n == 2 && m >= 1 && m <= 12 {
		return NewRange(New(y, time.Month(m), 1), Monthly), nil
	}
	if n, err := fmt.Sscanf(str, "%d", &y); err == nil && n == 1 && y >= 1000 && len(str) == 4 {
		return NewRange(New(y, time.January, 1), Yearly), nil
	}
	return Range{}, fmt.Errorf("invalid range %q", str)
}

func (r Range) MarshalJSON() ([]byte, error) { return []byte(fmt.Sprintf("%q", r.Identifier())), nil }

func (r *Range) UnmarshalJSON(bytes []byte) error {
	str := strings.Trim(string(bytes), `"`)
	p, err := ParseRange(str)
	if err != nil {
		return err
	}
	*r = p
	return nil
}

func (r Range) MarshalYAML() (any, error) { return r.Identifier(), nil }

func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	p, err := ParseRange(str)
	if err != nil {
		return err
	}
	*r = p
	return nil
}
