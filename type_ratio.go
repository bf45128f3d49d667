package dashboard

import "fmt"

// Ratio is a signed ratio that may be undefined, typically the result of a
// division whose denominator is zero or absent. The zero value is undefined.
// Undefined is a distinct outcome, never coerced to 0 or infinity, so that
// downstream aggregation cannot mistake "no answer" for "zero".
type Ratio struct {
	Value   float64
	Defined bool
}

// DefinedRatio returns a defined Ratio holding v.
func DefinedRatio(v float64) Ratio { return Ratio{Value: v, Defined: true} }

// Percent returns the ratio expressed as a percentage. It panics when the
// ratio is undefined; callers must check Defined first.
func (r Ratio) Percent() Percent {
	if !r.Defined {
		panic("percent of an undefined ratio")
	}
	return Percent(100 * r.Value)
}

// String renders the ratio, or "n/a" when undefined.
func (r Ratio) String() string {
	if !r.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", r.Value)
}
