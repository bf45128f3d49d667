package dashboard

import (
	"fmt"
	"math"
)

// statusHealth is the fixed lookup table mapping a project status to its
// health contribution. Adding a status means adding a row here; every status
// must have one.
var statusHealth = map[ProjectStatus]float64{
	Production:  100,
	Testing:     80,
	Development: 60,
	Planning:    40,
	Retired:     0,
}

// HealthScore is the weighted 0-100 composite for one project, with its
// dimension breakdown kept for transparency.
type HealthScore struct {
	ProjectID   string
	ProjectName string
	// Dimensions, each normalized to 0-100 before weighting.
	Status float64
	Risk   float64
	Budget float64
	KPI    float64
	// Overall is the weighted sum rounded to the nearest integer and
	// clamped to [0, 100].
	Overall int
	// Err marks a project whose score could not be computed; the other
	// fields are then meaningless.
	Err error
}

// PortfolioHealth aggregates per-project scores into a portfolio-wide view.
type PortfolioHealth struct {
	Projects []HealthScore
	// Overall is the arithmetic mean of the per-project overall scores,
	// each project weighing the same. Undefined with zero scorable
	// projects (insufficient data).
	Overall Ratio
}

// ComputeHealth scores a single project.
func ComputeHealth(cfg Config, project Project, risks []Risk, budgets []Budget, kpis []KPI) HealthScore {
	hs := HealthScore{ProjectID: project.ID, ProjectName: project.Name}

	status, ok := statusHealth[project.Status]
	if !ok {
		hs.Err = fmt.Errorf("project %q: no health contribution for status %q", project.Name, project.Status)
		return hs
	}
	hs.Status = status
	hs.Risk = riskDimension(risks)
	budget, err := budgetDimension(cfg, budgets)
	if err != nil {
		hs.Err = fmt.Errorf("project %q: %w", project.Name, err)
		return hs
	}
	hs.Budget = budget
	hs.KPI = kpiDimension(cfg, kpis)

	w := cfg.Weights
	composite := w.Status*hs.Status + w.Risk*hs.Risk + w.Budget*hs.Budget + w.KPI*hs.KPI
	hs.Overall = int(clamp(math.Round(composite), 0, 100))
	return hs
}

// ComputePortfolioHealth scores every project and averages the results.
// A project that cannot be scored keeps its error marker and is excluded
// from the average; it never aborts the other projects.
func ComputePortfolioHealth(cfg Config, snap *Snapshot) PortfolioHealth {
	ph := PortfolioHealth{}
	var sum, n float64
	for _, p := range snap.Projects {
		hs := ComputeHealth(cfg, p, snap.ProjectRisks(p.ID), snap.ProjectBudgets(p.ID), snap.LatestKPIs(p.ID))
		ph.Projects = append(ph.Projects, hs)
		if hs.Err == nil {
			sum += float64(hs.Overall)
			n++
		}
	}
	if n > 0 {
		ph.Overall = DefinedRatio(sum / n)
	}
	return ph
}

// riskDimension maps the open risks onto 0-100: no recorded (or no open)
// risk scores 100, absence of recorded risk is not penalized; the average
// normalized score of open risks is then inverted, so a single risk at
// maximum probability x impact scores 0.
func riskDimension(risks []Risk) float64 {
	var sum, n float64
	for _, r := range risks {
		if !r.IsOpen() {
			continue
		}
		sum += r.NormalizedScore()
		n++
	}
	if n == 0 {
		return 100
	}
	return clamp(100-(sum/n)*100, 0, 100)
}

// budgetDimension maps the total variance ratio onto 0-100: on or under
// plan scores 100, and the score decays linearly to 0 at the configured
// overrun saturation. No budget data is neutral (or 0 when the neutral
// policy is off); a plan of zero with actual spending is a full overrun.
func budgetDimension(cfg Config, budgets []Budget) (float64, error) {
	if len(budgets) == 0 {
		if cfg.NoDataNeutral {
			return 100, nil
		}
		return 0, nil
	}
	var planned, actual Money
	for _, b := range budgets {
		if !planned.SameCurrency(b.Planned) {
			return 0, fmt.Errorf("budget entries in mixed currencies %s and %s", planned.Currency(), b.Planned.Currency())
		}
		planned = planned.Add(b.Planned)
		actual = actual.Add(b.Actual)
	}
	variance := actual.Sub(planned).Div(planned)
	if !variance.Defined {
		// nothing planned: no spending is neutral, any spending is a full overrun
		if actual.IsZero() {
			if cfg.NoDataNeutral {
				return 100, nil
			}
			return 0, nil
		}
		return 0, nil
	}
	if variance.Value <= 0 {
		return 100, nil
	}
	return clamp(100*(1-variance.Value/cfg.OverrunSaturation), 0, 100), nil
}

// kpiRateCap bounds the achievement rate so over-achievement caps its bonus
// at 120%.
const kpiRateCap = 1.2

// directedRate orients an achievement rate so that higher is always better.
// A lower-is-better metric inverts to Target/Actual, and a zero actual on
// such a metric beats any target, so it maps to the over-achievement cap.
func directedRate(cfg Config, k KPI) Ratio {
	rate := k.AchievementRate()
	if !rate.Defined || !cfg.LowerIsBetter[k.Metric] {
		return rate
	}
	if rate.Value == 0 {
		return DefinedRatio(kpiRateCap)
	}
	return DefinedRatio(1 / rate.Value)
}

// kpiDimension averages the direction-adjusted achievement rates of the
// latest KPI entries, each clamped to [0, kpiRateCap], then scales to 0-100
// where full achievement scores 100. Entries with a zero target carry no
// defined rate and are skipped. No usable KPI data is neutral (or 0 when the
// neutral policy is off).
func kpiDimension(cfg Config, kpis []KPI) float64 {
	var sum, n float64
	for _, k := range kpis {
		rate := directedRate(cfg, k)
		if !rate.Defined {
			continue
		}
		sum += clamp(rate.Value, 0, kpiRateCap)
		n++
	}
	if n == 0 {
		if cfg.NoDataNeutral {
			return 100
		}
		return 0
	}
	return clamp(100*(sum/n), 0, 100)
}

// Label buckets an overall score into a qualitative label for narratives.
func Label(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Attention"
	}
}
