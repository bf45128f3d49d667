package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// ExecutiveSummaryReport condenses the portfolio into counts, dimension
// averages and narrative recommendations for an executive audience.
type ExecutiveSummaryReport struct {
	GeneratedOn date.Date
	Health      PortfolioHealth

	TotalProjects  int
	ActiveProjects int
	// StatusCounts follows ProjectStatuses order; zero-count statuses are kept.
	StatusCounts map[ProjectStatus]int
	// CriticalProjects lists the names of critical-priority projects.
	CriticalProjects []string

	Budget VarianceGroup // portfolio-wide totals

	KPICount int
	OnTarget int
	// AvgAchievement is the mean achievement rate across latest KPI
	// entries, undefined with no usable entries.
	AvgAchievement Ratio
	// Trends counts metric series per direction.
	Trends map[TrendDirection]int
	// Underachieving lists metrics whose latest achievement is below 70%.
	Underachieving []string

	Matrix RiskMatrix

	// Recommendations are deterministic threshold-rule bullets, never
	// free-form generation.
	Recommendations []string
}

// thresholds behind the recommendation rules.
const (
	recDimensionFloor  = 70.0 // a dimension averaging below this draws a recommendation
	recAchievementBar  = 0.70 // a KPI below 70% of target is underachieving
	recPlanningShare   = 0.40 // more than 40% of projects still planning
	recOverrunSeverity = 0.20 // a project overrunning by more than 20% is called out
)

// NewExecutiveSummaryReport computes the executive summary from a snapshot.
func NewExecutiveSummaryReport(cfg Config, snap *Snapshot, on date.Date) *ExecutiveSummaryReport {
	r := &ExecutiveSummaryReport{
		GeneratedOn:   on,
		Health:        ComputePortfolioHealth(cfg, snap),
		TotalProjects: len(snap.Projects),
		StatusCounts:  make(map[ProjectStatus]int),
		Trends:        make(map[TrendDirection]int),
		Budget:        groupVariance("total", snap.Budgets),
		Matrix:        ComputeRiskMatrix(snap.Risks),
	}
	for _, p := range snap.Projects {
		r.StatusCounts[p.Status]++
		if p.IsActive() {
			r.ActiveProjects++
		}
		if p.Priority == Critical {
			r.CriticalProjects = append(r.CriticalProjects, p.Name)
		}
	}

	var achievementSum float64
	var achievementN int
	for _, p := range snap.Projects {
		for _, k := range snap.LatestKPIs(p.ID) {
			r.KPICount++
			rate := k.AchievementRate()
			if !rate.Defined {
				continue
			}
			if k.IsOnTarget(cfg.LowerIsBetter[k.Metric]) {
				r.OnTarget++
			}
			directed := directedRate(cfg, k)
			achievementSum += clamp(directed.Value, 0, 1.5)
			achievementN++
			if directed.Value < recAchievementBar {
				r.Underachieving = append(r.Underachieving, fmt.Sprintf("%s/%s", p.Name, k.Metric))
			}
		}
	}
	if achievementN > 0 {
		r.AvgAchievement = DefinedRatio(achievementSum / float64(achievementN))
	}
	sort.Strings(r.Underachieving)

	for _, t := range ComputeTrends(cfg, snap) {
		r.Trends[t.Direction]++
	}

	r.Recommendations = recommendations(cfg, snap, r)
	return r
}

// recommendations derives the narrative bullets from fixed threshold rules
// over the computed metrics.
func recommendations(cfg Config, snap *Snapshot, r *ExecutiveSummaryReport) []string {
	var recs []string

	if avg := dimensionAverage(r.Health.Projects, func(h HealthScore) float64 { return h.Budget }); avg.Defined && avg.Value < recDimensionFloor {
		if over := overrunProjects(snap); len(over) > 0 {
			recs = append(recs, fmt.Sprintf(
				"Budget review: %d project(s) are over budget by more than %.0f%%: %s. Implement cost controls.",
				len(over), recOverrunSeverity*100, strings.Join(over, ", ")))
		} else {
			recs = append(recs, "Budget review: spending is drifting from plan across the portfolio. Implement cost controls.")
		}
	}
	if avg := dimensionAverage(r.Health.Projects, func(h HealthScore) float64 { return h.Risk }); avg.Defined && avg.Value < recDimensionFloor {
		recs = append(recs, "Risk mitigation: prioritize mitigation plans for high-impact risks in the active portfolio.")
	}
	if n := len(r.Underachieving); n > 0 {
		recs = append(recs, fmt.Sprintf(
			"KPI improvement: %d KPI(s) are below %.0f%% of target. Consider resource reallocation or scope adjustment.",
			n, recAchievementBar*100))
	}
	if r.TotalProjects > 0 {
		planning := float64(r.StatusCounts[Planning]) / float64(r.TotalProjects)
		if planning > recPlanningShare {
			recs = append(recs, "Pipeline acceleration: a large portion of the portfolio is still in planning. Consider accelerating development timelines.")
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Portfolio is performing well. Continue current trajectory.")
	}
	return recs
}

// dimensionAverage averages one health dimension across scorable projects.
func dimensionAverage(scores []HealthScore, dim func(HealthScore) float64) Ratio {
	var sum, n float64
	for _, h := range scores {
		if h.Err != nil {
			continue
		}
		sum += dim(h)
		n++
	}
	if n == 0 {
		return Ratio{}
	}
	return DefinedRatio(sum / n)
}

// overrunProjects names the projects over budget by more than the severity
// threshold, sorted by name.
func overrunProjects(snap *Snapshot) []string {
	var out []string
	for _, p := range snap.Projects {
		g := groupVariance(p.Name, snap.ProjectBudgets(p.ID))
		if g.Err == nil && g.Percent.Defined && g.Percent.Value > recOverrunSeverity {
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}
