package dashboard

import (
	"strings"
	"testing"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

func varianceSnapshot() *Snapshot {
	q1 := date.NewRange(date.New(2025, 1, 1), date.Quarterly)
	start := date.New(2025, 1, 1)
	return &Snapshot{
		Projects: []Project{
			{ID: "p1", Name: "Alpha", Status: Production, Priority: High, Owner: "a", StartDate: start},
			{ID: "p2", Name: "Beta", Status: Development, Priority: Low, Owner: "b", StartDate: start},
		},
		Budgets: []Budget{
			{ID: "b1", ProjectID: "p1", Category: Compute, Planned: M(1000, "USD"), Actual: M(1200, "USD"), Period: q1},
			{ID: "b2", ProjectID: "p1", Category: Personnel, Planned: M(2000, "USD"), Actual: M(1800, "USD"), Period: q1},
			{ID: "b3", ProjectID: "p2", Category: Compute, Planned: M(500, "USD"), Actual: M(500, "USD"), Period: q1},
		},
	}
}

func TestComputeVariance(t *testing.T) {
	report := ComputeVariance(varianceSnapshot())

	total := report.Total
	if total.Err != nil {
		t.Fatalf("total: unexpected error: %v", total.Err)
	}
	if got, want := total.Planned.String(), M(3500, "USD").String(); got != want {
		t.Errorf("total planned = %s, want %s", got, want)
	}
	if got, want := total.Variance.String(), M(0, "USD").String(); got != want {
		t.Errorf("total variance = %s, want %s", got, want)
	}
	if total.OverBudget {
		t.Error("total flagged over budget, want on budget")
	}

	if len(report.ByProject) != 2 {
		t.Fatalf("got %d project groups, want 2", len(report.ByProject))
	}
	alpha := report.ByProject[0]
	if alpha.Key != "Alpha" {
		t.Fatalf("first project group = %q, want Alpha (sorted by key)", alpha.Key)
	}
	if !alpha.OverBudget {
		t.Error("Alpha not flagged over budget")
	}

	var compute VarianceGroup
	for _, g := range report.ByCategory {
		if g.Key == string(Compute) {
			compute = g
		}
	}
	// compute: planned 1500, actual 1700
	if got, want := compute.Variance.String(), M(200, "USD").String(); got != want {
		t.Errorf("compute variance = %s, want %s", got, want)
	}
	if !compute.Percent.Defined {
		t.Error("compute variance percent undefined, want defined")
	}
}

func TestComputeVarianceZeroPlan(t *testing.T) {
	q1 := date.NewRange(date.New(2025, 1, 1), date.Quarterly)
	snap := &Snapshot{
		Projects: []Project{{ID: "p1", Name: "Alpha", Status: Production, Priority: High, Owner: "a", StartDate: q1.From}},
		Budgets: []Budget{
			{ID: "b1", ProjectID: "p1", Category: Compute, Planned: M(0, "USD"), Actual: M(300, "USD"), Period: q1},
		},
	}
	report := ComputeVariance(snap)
	if report.Total.Percent.Defined {
		t.Errorf("variance percent = %v, want undefined on a zero plan", report.Total.Percent)
	}
	if !report.Total.OverBudget {
		t.Error("spending against a zero plan not flagged over budget")
	}
}

func TestComputeVarianceMixedCurrencies(t *testing.T) {
	q1 := date.NewRange(date.New(2025, 1, 1), date.Quarterly)
	snap := &Snapshot{
		Projects: []Project{{ID: "p1", Name: "Alpha", Status: Production, Priority: High, Owner: "a", StartDate: q1.From}},
		Budgets: []Budget{
			{ID: "b1", ProjectID: "p1", Category: Compute, Planned: M(100, "USD"), Actual: M(100, "USD"), Period: q1},
			{ID: "b2", ProjectID: "p1", Category: APICalls, Planned: M(100, "EUR"), Actual: M(100, "EUR"), Period: q1},
		},
	}
	report := ComputeVariance(snap)
	if report.Total.Err == nil {
		t.Fatal("total aggregated mixed currencies, want error")
	}
	if !strings.Contains(report.Total.Err.Error(), "mixed currencies") {
		t.Errorf("error = %v, want mixed currencies", report.Total.Err)
	}
	// per-category groups are single-currency and must still aggregate
	for _, g := range report.ByCategory {
		if g.Err != nil {
			t.Errorf("category %s: unexpected error: %v", g.Key, g.Err)
		}
	}
}
