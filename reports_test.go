package dashboard

import (
	"strings"
	"testing"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

func summarySnapshot() *Snapshot {
	start := date.New(2025, 1, 1)
	q1 := date.NewRange(start, date.Quarterly)
	snap := &Snapshot{
		Projects: []Project{
			{ID: "p1", Name: "Alpha", Status: Production, Priority: Critical, Owner: "a", StartDate: start},
			{ID: "p2", Name: "Beta", Status: Planning, Priority: Medium, Owner: "b", StartDate: start},
		},
		KPIs: []KPI{
			{ID: "k1", ProjectID: "p1", Metric: "accuracy", Target: 1, Actual: 0.5, RecordedOn: start},
		},
		Budgets: []Budget{
			{ID: "b1", ProjectID: "p1", Category: Compute, Planned: M(1000, "USD"), Actual: M(1400, "USD"), Period: q1},
		},
		Risks: []Risk{
			{ID: "r1", ProjectID: "p1", Description: "d", Probability: 4, Impact: 4, Status: RiskOpen},
		},
	}
	snap.normalize()
	return snap
}

func TestNewExecutiveSummaryReport(t *testing.T) {
	on := date.New(2025, 7, 1)
	r := NewExecutiveSummaryReport(DefaultConfig(), summarySnapshot(), on)

	if r.TotalProjects != 2 || r.ActiveProjects != 1 {
		t.Errorf("projects = %d total %d active, want 2 and 1", r.TotalProjects, r.ActiveProjects)
	}
	if r.StatusCounts[Production] != 1 || r.StatusCounts[Planning] != 1 {
		t.Errorf("status counts = %v", r.StatusCounts)
	}
	if len(r.CriticalProjects) != 1 || r.CriticalProjects[0] != "Alpha" {
		t.Errorf("critical projects = %v, want [Alpha]", r.CriticalProjects)
	}
	if !r.Budget.OverBudget {
		t.Error("portfolio budget not flagged over budget")
	}
	if r.KPICount != 1 || r.OnTarget != 0 {
		t.Errorf("kpis = %d tracked %d on target, want 1 and 0", r.KPICount, r.OnTarget)
	}
	if len(r.Underachieving) != 1 || r.Underachieving[0] != "Alpha/accuracy" {
		t.Errorf("underachieving = %v, want [Alpha/accuracy]", r.Underachieving)
	}
	if r.Matrix.CriticalCount() != 1 {
		t.Errorf("matrix critical count = %d, want 1", r.Matrix.CriticalCount())
	}
	if len(r.Recommendations) == 0 {
		t.Fatal("no recommendations generated")
	}
}

func TestUnderachievingInverseMetrics(t *testing.T) {
	start := date.New(2025, 1, 1)
	snap := &Snapshot{
		Projects: []Project{
			{ID: "p1", Name: "Alpha", Status: Production, Priority: High, Owner: "a", StartDate: start},
			{ID: "p2", Name: "Beta", Status: Production, Priority: High, Owner: "b", StartDate: start},
			{ID: "p3", Name: "Gamma", Status: Production, Priority: High, Owner: "c", StartDate: start},
		},
		KPIs: []KPI{
			{ID: "k1", ProjectID: "p1", Metric: "latency", Target: 100, Actual: 1000, RecordedOn: start},
			{ID: "k2", ProjectID: "p2", Metric: "latency", Target: 100, Actual: 90, RecordedOn: start},
			{ID: "k3", ProjectID: "p3", Metric: "latency", Target: 100, Actual: 0, RecordedOn: start},
		},
	}
	snap.normalize()
	cfg := DefaultConfig()
	cfg.LowerIsBetter = map[string]bool{"latency": true}

	r := NewExecutiveSummaryReport(cfg, snap, date.New(2025, 7, 1))
	if len(r.Underachieving) != 1 || r.Underachieving[0] != "Alpha/latency" {
		t.Errorf("underachieving = %v, want [Alpha/latency]", r.Underachieving)
	}
	if r.OnTarget != 2 {
		t.Errorf("on target = %d, want 2", r.OnTarget)
	}
}

func TestRecommendationRules(t *testing.T) {
	on := date.New(2025, 7, 1)

	t.Run("overrun names the project", func(t *testing.T) {
		r := NewExecutiveSummaryReport(DefaultConfig(), summarySnapshot(), on)
		var found bool
		for _, rec := range r.Recommendations {
			if strings.Contains(rec, "Budget review") && strings.Contains(rec, "Alpha") {
				found = true
			}
		}
		if !found {
			t.Errorf("recommendations %v do not call out Alpha's overrun", r.Recommendations)
		}
	})

	t.Run("healthy portfolio gets the fallback", func(t *testing.T) {
		start := date.New(2025, 1, 1)
		snap := &Snapshot{Projects: []Project{
			{ID: "p1", Name: "Alpha", Status: Production, Priority: High, Owner: "a", StartDate: start},
		}}
		r := NewExecutiveSummaryReport(DefaultConfig(), snap, on)
		if len(r.Recommendations) != 1 || !strings.Contains(r.Recommendations[0], "performing well") {
			t.Errorf("recommendations = %v, want the single fallback", r.Recommendations)
		}
	})

	t.Run("planning-heavy portfolio suggests acceleration", func(t *testing.T) {
		start := date.New(2025, 1, 1)
		snap := &Snapshot{Projects: []Project{
			{ID: "p1", Name: "A", Status: Planning, Priority: High, Owner: "a", StartDate: start},
			{ID: "p2", Name: "B", Status: Planning, Priority: High, Owner: "b", StartDate: start},
			{ID: "p3", Name: "C", Status: Production, Priority: High, Owner: "c", StartDate: start},
		}}
		r := NewExecutiveSummaryReport(DefaultConfig(), snap, on)
		var found bool
		for _, rec := range r.Recommendations {
			if strings.Contains(rec, "Pipeline acceleration") {
				found = true
			}
		}
		if !found {
			t.Errorf("recommendations = %v, want a pipeline acceleration bullet", r.Recommendations)
		}
	})
}

func TestNewRiskRegisterReport(t *testing.T) {
	on := date.New(2025, 7, 1)
	r := NewRiskRegisterReport(summarySnapshot(), on)
	if len(r.Register) != 1 {
		t.Fatalf("register has %d entries, want 1", len(r.Register))
	}
	if r.Register[0].ProjectName != "Alpha" {
		t.Errorf("register entry project = %q, want Alpha (joined by id)", r.Register[0].ProjectName)
	}
}

func TestNewOverviewReport(t *testing.T) {
	on := date.New(2025, 7, 1)
	r := NewOverviewReport(DefaultConfig(), summarySnapshot(), on)
	if r.OpenRisks != 1 || r.KPICount != 1 {
		t.Errorf("open risks/kpis = %d/%d, want 1/1", r.OpenRisks, r.KPICount)
	}
	if r.BudgetErr != nil {
		t.Fatalf("budget totals: %v", r.BudgetErr)
	}
	if got, want := r.Actual.String(), M(1400, "USD").String(); got != want {
		t.Errorf("actual total = %s, want %s", got, want)
	}
}
