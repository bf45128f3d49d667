package dashboard

import (
	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// Reports are plain data computed once from a snapshot; the renderer package
// turns them into documents without recomputing anything. The generation
// date is supplied by the caller so that a report is a pure function of
// (snapshot, config, date) and regenerating it is byte-identical.

// OverviewReport is the full portfolio overview: health breakdown, project
// listing and quick stats.
type OverviewReport struct {
	GeneratedOn date.Date
	Health      PortfolioHealth
	Projects    []Project
	// Planned and Actual are the portfolio-wide budget totals.
	Planned, Actual Money
	// BudgetErr marks totals that could not be aggregated (mixed currencies).
	BudgetErr error
	OpenRisks int
	KPICount  int
}

// NewOverviewReport computes the portfolio overview from a snapshot.
func NewOverviewReport(cfg Config, snap *Snapshot, on date.Date) *OverviewReport {
	r := &OverviewReport{
		GeneratedOn: on,
		Health:      ComputePortfolioHealth(cfg, snap),
		Projects:    snap.Projects,
		KPICount:    len(snap.KPIs),
	}
	total := groupVariance("total", snap.Budgets)
	r.Planned, r.Actual, r.BudgetErr = total.Planned, total.Actual, total.Err
	for _, risk := range snap.Risks {
		if risk.IsOpen() {
			r.OpenRisks++
		}
	}
	return r
}

// BudgetVarianceReport is the budget variance analysis with its generation date.
type BudgetVarianceReport struct {
	GeneratedOn date.Date
	Variance    VarianceReport
}

// NewBudgetVarianceReport computes the budget variance report from a snapshot.
func NewBudgetVarianceReport(snap *Snapshot, on date.Date) *BudgetVarianceReport {
	return &BudgetVarianceReport{GeneratedOn: on, Variance: ComputeVariance(snap)}
}

// RiskRegisterEntry is one row of the risk register, joined with its project name.
type RiskRegisterEntry struct {
	Risk
	ProjectName string
}

// RiskRegisterReport is the portfolio risk register: status counts, the
// probability x impact matrix, and the detailed register sorted by score.
type RiskRegisterReport struct {
	GeneratedOn date.Date
	Matrix      RiskMatrix
	Register    []RiskRegisterEntry
}

// NewRiskRegisterReport computes the risk register report from a snapshot.
func NewRiskRegisterReport(snap *Snapshot, on date.Date) *RiskRegisterReport {
	r := &RiskRegisterReport{GeneratedOn: on, Matrix: ComputeRiskMatrix(snap.Risks)}
	names := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		names[p.ID] = p.Name
	}
	for _, risk := range snap.Risks { // already sorted by score desc, id asc
		name, ok := names[risk.ProjectID]
		if !ok {
			name = risk.ProjectID
		}
		r.Register = append(r.Register, RiskRegisterEntry{Risk: risk, ProjectName: name})
	}
	return r
}
