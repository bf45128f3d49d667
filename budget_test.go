package dashboard

import (
	"testing"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

func testBudget(planned, actual float64) Budget {
	return Budget{
		ID: "b", ProjectID: "p", Category: Compute,
		Planned: M(planned, "USD"), Actual: M(actual, "USD"),
		Period: date.NewRange(date.New(2025, 1, 1), date.Quarterly),
	}
}

func TestBudgetVariance(t *testing.T) {
	b := testBudget(1000, 1200)
	if got, want := b.Variance().String(), M(200, "USD").String(); got != want {
		t.Errorf("Variance() = %s, want %s", got, want)
	}
	if !b.IsOverBudget() {
		t.Error("IsOverBudget() = false on a 20% overrun")
	}
	pct := b.VariancePercent()
	if !pct.Defined || pct.Value != 0.2 {
		t.Errorf("VariancePercent() = %v, want 0.2", pct)
	}

	under := testBudget(1000, 800)
	if under.IsOverBudget() {
		t.Error("IsOverBudget() = true under plan")
	}
	if got := under.VariancePercent(); !got.Defined || got.Value != -0.2 {
		t.Errorf("VariancePercent() = %v, want -0.2", got)
	}
}

func TestBudgetVariancePercentZeroPlan(t *testing.T) {
	b := testBudget(0, 500)
	if got := b.VariancePercent(); got.Defined {
		t.Errorf("VariancePercent() = %v, want undefined on a zero plan", got)
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := testBudget(1000, 900).Validate(); err != nil {
		t.Fatalf("valid budget rejected: %v", err)
	}

	negative := testBudget(1000, 900)
	negative.Planned = M(-1, "USD")
	if err := negative.Validate(); err == nil {
		t.Error("Validate() accepted a negative planned amount")
	}

	mixed := testBudget(1000, 900)
	mixed.Actual = M(900, "EUR")
	if err := mixed.Validate(); err == nil {
		t.Error("Validate() accepted mixed currencies")
	}

	noPeriod := testBudget(1000, 900)
	noPeriod.Period = date.Range{}
	if err := noPeriod.Validate(); err == nil {
		t.Error("Validate() accepted a missing period")
	}
}
