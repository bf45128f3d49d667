package dashboard

import (
	"strings"
	"testing"
)

const seedFixture = `
projects:
  - name: Churn Model
    status: Production
    priority: High
    owner: Ada
    department: Data Science
    start_date: 2025-01-15
    kpis:
      - metric: accuracy
        target: 0.9
        actual: 0.93
        recorded_on: 2025-06-01
    budgets:
      - category: compute
        planned: 12000
        actual: 11000
        period: 2025-Q2
    risks:
      - description: Training data staleness
        probability: 3
        impact: 4
  - name: Support Bot
    owner: Lin
    start_date: 2025-03-01
`

func TestSeed(t *testing.T) {
	store := testStore(t)
	n, err := Seed(store, strings.NewReader(seedFixture))
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("seeded %d projects, want 2", n)
	}

	snap, err := TakeSnapshot(store, Filter{})
	if err != nil {
		t.Fatalf("TakeSnapshot: %v", err)
	}

	churn := snap.Projects[0] // High outranks Medium in the canonical order
	if churn.Name != "Churn Model" {
		t.Fatalf("first project = %q, want Churn Model", churn.Name)
	}
	if churn.Status != Production || churn.Priority != High {
		t.Errorf("status/priority = %s/%s, want canonical production/high", churn.Status, churn.Priority)
	}
	if churn.ID == "" {
		t.Error("seeded project has no generated id")
	}

	if len(snap.KPIs) != 1 || snap.KPIs[0].ProjectID != churn.ID {
		t.Errorf("kpis = %+v, want one bound to %s", snap.KPIs, churn.ID)
	}
	if len(snap.Budgets) != 1 || snap.Budgets[0].Category != Compute {
		t.Errorf("budgets = %+v", snap.Budgets)
	}
	if len(snap.Risks) != 1 || snap.Risks[0].Status != RiskOpen {
		t.Errorf("risks = %+v, want one defaulted to open", snap.Risks)
	}

	bot := snap.Projects[1]
	if bot.Status != Planning || bot.Priority != Medium {
		t.Errorf("defaults = %s/%s, want planning/medium", bot.Status, bot.Priority)
	}
}

func TestSeedRejectsInvalidProject(t *testing.T) {
	in := "projects:\n  - name: Broken\n    start_date: 2025-01-01\n"
	if _, err := Seed(testStore(t), strings.NewReader(in)); err == nil {
		t.Error("Seed accepted a project without an owner")
	}
}
