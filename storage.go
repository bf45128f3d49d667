package dashboard

import (
	"sort"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// Filter narrows a storage read. The zero value selects everything.
type Filter struct {
	ProjectID  string     // keep records owned by this project
	Department string     // keep projects of this department
	Range      date.Range // keep dated records within this range
}

// Storage is the port through which records are read. Implementations must
// return the current persisted state; the analytics engine never writes
// through it.
type Storage interface {
	Projects(f Filter) ([]Project, error)
	KPIs(f Filter) ([]KPI, error)
	Budgets(f Filter) ([]Budget, error)
	Risks(f Filter) ([]Risk, error)
}

// Snapshot is a consistent read of all record kinds, taken once before a
// computation begins. All analytics are pure functions of a Snapshot, so two
// runs over the same snapshot produce identical results.
type Snapshot struct {
	Projects []Project
	KPIs     []KPI
	Budgets  []Budget
	Risks    []Risk
}

// TakeSnapshot reads all four record kinds from storage in one pass.
func TakeSnapshot(s Storage, f Filter) (*Snapshot, error) {
	projects, err := s.Projects(f)
	if err != nil {
		return nil, err
	}
	kpis, err := s.KPIs(f)
	if err != nil {
		return nil, err
	}
	budgets, err := s.Budgets(f)
	if err != nil {
		return nil, err
	}
	risks, err := s.Risks(f)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Projects: projects, KPIs: kpis, Budgets: budgets, Risks: risks}
	snap.normalize()
	return snap, nil
}

// normalize sorts every slice into its canonical deterministic order.
func (s *Snapshot) normalize() {
	sort.Slice(s.Projects, func(i, j int) bool {
		a, b := s.Projects[i], s.Projects[j]
		if a.Priority.rank() != b.Priority.rank() {
			return a.Priority.rank() < b.Priority.rank()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	sort.Slice(s.KPIs, func(i, j int) bool {
		a, b := s.KPIs[i], s.KPIs[j]
		if a.ProjectID != b.ProjectID {
			return a.ProjectID < b.ProjectID
		}
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		if a.RecordedOn != b.RecordedOn {
			return a.RecordedOn.Before(b.RecordedOn)
		}
		return a.ID < b.ID
	})
	sort.Slice(s.Budgets, func(i, j int) bool {
		a, b := s.Budgets[i], s.Budgets[j]
		if a.ProjectID != b.ProjectID {
			return a.ProjectID < b.ProjectID
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.ID < b.ID
	})
	sort.Slice(s.Risks, func(i, j int) bool {
		a, b := s.Risks[i], s.Risks[j]
		if a.Score() != b.Score() {
			return a.Score() > b.Score()
		}
		return a.ID < b.ID
	})
}

// Project returns the project with the given id, if present.
func (s *Snapshot) Project(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectKPIs returns the KPI entries owned by a project, in series order.
func (s *Snapshot) ProjectKPIs(projectID string) []KPI {
	var out []KPI
	for _, k := range s.KPIs {
		if k.ProjectID == projectID {
			out = append(out, k)
		}
	}
	return out
}

// ProjectBudgets returns the budget entries owned by a project.
func (s *Snapshot) ProjectBudgets(projectID string) []Budget {
	var out []Budget
	for _, b := range s.Budgets {
		if b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	return out
}

// ProjectRisks returns the risk entries owned by a project, highest score first.
func (s *Snapshot) ProjectRisks(projectID string) []Risk {
	var out []Risk
	for _, r := range s.Risks {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out
}

// LatestKPIs returns, for each metric of a project, the most recent entry.
// Results are ordered by metric name.
func (s *Snapshot) LatestKPIs(projectID string) []KPI {
	latest := make(map[string]KPI)
	for _, k := range s.ProjectKPIs(projectID) {
		// series order guarantees the last seen entry is the most recent
		latest[k.Metric] = k
	}
	metrics := make([]string, 0, len(latest))
	for m := range latest {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)
	out := make([]KPI, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, latest[m])
	}
	return out
}

// Series returns the time-ordered values of one metric of a project.
func (s *Snapshot) Series(projectID, metric string) []KPI {
	var out []KPI
	for _, k := range s.ProjectKPIs(projectID) {
		if k.Metric == metric {
			out = append(out, k)
		}
	}
	return out
}
