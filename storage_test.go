package dashboard

import (
	"testing"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

func TestSnapshotCanonicalOrder(t *testing.T) {
	store := testStore(t)
	start := date.New(2025, 1, 1)
	add := func(id, name string, priority Priority) {
		p := Project{ID: id, Name: name, Status: Development, Priority: priority, Owner: "o", StartDate: start}
		if err := store.AddProject(p); err != nil {
			t.Fatalf("AddProject(%s): %v", name, err)
		}
	}
	add("p1", "Zeta", Low)
	add("p2", "Alpha", Low)
	add("p3", "Omega", Critical)

	risk := func(id string, p, i int) Risk {
		return Risk{ID: id, ProjectID: "p1", Description: "d", Probability: p, Impact: i, Status: RiskOpen}
	}
	for _, r := range []Risk{risk("r1", 1, 2), risk("r2", 5, 5), risk("r3", 3, 3)} {
		if err := store.AddRisk(r); err != nil {
			t.Fatalf("AddRisk: %v", err)
		}
	}

	snap, err := TakeSnapshot(store, Filter{})
	if err != nil {
		t.Fatalf("TakeSnapshot: %v", err)
	}

	// priority outranks name, name breaks ties
	gotProjects := []string{snap.Projects[0].Name, snap.Projects[1].Name, snap.Projects[2].Name}
	wantProjects := []string{"Omega", "Alpha", "Zeta"}
	for i := range wantProjects {
		if gotProjects[i] != wantProjects[i] {
			t.Fatalf("project order = %v, want %v", gotProjects, wantProjects)
		}
	}

	// risks by score, highest first
	gotRisks := []string{snap.Risks[0].ID, snap.Risks[1].ID, snap.Risks[2].ID}
	wantRisks := []string{"r2", "r3", "r1"}
	for i := range wantRisks {
		if gotRisks[i] != wantRisks[i] {
			t.Fatalf("risk order = %v, want %v", gotRisks, wantRisks)
		}
	}
}

func TestLatestKPIsAndSeries(t *testing.T) {
	store := testStore(t)
	storeProject(t, store, "p1", "Alpha", "")
	entries := []struct {
		metric string
		on     date.Date
		actual float64
	}{
		{"accuracy", date.New(2025, 1, 1), 0.80},
		{"accuracy", date.New(2025, 3, 1), 0.85},
		{"accuracy", date.New(2025, 2, 1), 0.82},
		{"latency", date.New(2025, 2, 1), 120},
	}
	for _, e := range entries {
		k := KPI{ID: NewID(), ProjectID: "p1", Metric: e.metric, Target: 1, Actual: e.actual, RecordedOn: e.on}
		if err := store.AddKPI(k); err != nil {
			t.Fatalf("AddKPI: %v", err)
		}
	}

	snap, err := TakeSnapshot(store, Filter{})
	if err != nil {
		t.Fatalf("TakeSnapshot: %v", err)
	}

	series := snap.Series("p1", "accuracy")
	if len(series) != 3 {
		t.Fatalf("series has %d points, want 3", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i].RecordedOn.Before(series[i-1].RecordedOn) {
			t.Errorf("series out of order at %d: %s before %s", i, series[i].RecordedOn, series[i-1].RecordedOn)
		}
	}

	latest := snap.LatestKPIs("p1")
	if len(latest) != 2 {
		t.Fatalf("latest has %d entries, want 2", len(latest))
	}
	if latest[0].Metric != "accuracy" || latest[0].Actual != 0.85 {
		t.Errorf("latest accuracy = %+v, want the 2025-03-01 entry", latest[0])
	}
	if latest[1].Metric != "latency" {
		t.Errorf("latest[1] = %+v, want latency", latest[1])
	}
}

func TestSnapshotProjectLookup(t *testing.T) {
	snap := &Snapshot{Projects: []Project{{ID: "p1", Name: "Alpha"}}}
	if _, ok := snap.Project("p1"); !ok {
		t.Error("Project(p1) not found")
	}
	if _, ok := snap.Project("ghost"); ok {
		t.Error("Project(ghost) found")
	}
}
