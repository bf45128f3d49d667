package dashboard

import "fmt"

// ROIResult is the return-on-investment outcome for one project. The ratio
// keeps its raw numerator and denominator for auditability, and is undefined
// when the project carries no actual cost.
type ROIResult struct {
	ProjectID   string
	ProjectName string
	// Cost is the total actual spending across the project's budget entries.
	Cost Money
	// Value is the value generated, derived from KPI achievement.
	Value Money
	// ROI is (Value - Cost) / Cost, undefined when Cost is zero or absent.
	ROI Ratio
	// Err marks a project whose ROI could not be computed at all
	// (e.g. budget entries in mixed currencies). The other fields are then
	// meaningless.
	Err error
}

// ComputeROI calculates the return on investment of a single project from
// its budget and KPI entries.
//
// The value generated is derived from KPI achievement: when the config maps
// a metric to a monetary unit value, the latest actual of that metric
// contributes actual x unit value. Metrics with no monetary mapping
// contribute through a proxy instead: the total cost scaled by the average
// achievement rate (clamped to [0, 1.5]) across those metrics, so full
// achievement values the spending at par.
//
// With no budget entries, or a zero total cost, the ROI is undefined rather
// than zero. With no KPI entries the value generated is zero and the ROI is
// at most -1 (a pure loss), which is an answer, not an error.
func ComputeROI(cfg Config, project Project, budgets []Budget, kpis []KPI) ROIResult {
	res := ROIResult{ProjectID: project.ID, ProjectName: project.Name}

	var cost Money
	for _, b := range budgets {
		if !cost.SameCurrency(b.Actual) {
			res.Err = fmt.Errorf("project %q: budget entries in mixed currencies %s and %s",
				project.Name, cost.Currency(), b.Actual.Currency())
			return res
		}
		cost = cost.Add(b.Actual)
	}
	res.Cost = cost

	// Latest entry per metric drives the value; history only matters to trends.
	latest := latestByMetric(kpis)

	var value Money
	var proxySum float64
	var proxyCount int
	for _, k := range latest {
		if unit, ok := cfg.MetricValue[k.Metric]; ok {
			value = value.Add(M(k.Actual*unit, cost.Currency()))
			continue
		}
		if rate := k.AchievementRate(); rate.Defined {
			proxySum += clamp(rate.Value, 0, 1.5)
			proxyCount++
		}
	}
	if proxyCount > 0 {
		value = value.Add(cost.MulFloat(proxySum / float64(proxyCount)))
	}
	res.Value = value

	if cost.IsZero() {
		return res // undefined ROI, reported as such
	}
	res.ROI = value.Sub(cost).Div(cost)
	return res
}

// ComputePortfolioROI calculates the ROI of every project in the snapshot.
// Results keep the snapshot's project order; a failure on one project is
// recorded in its result and never aborts the others.
func ComputePortfolioROI(cfg Config, snap *Snapshot) []ROIResult {
	results := make([]ROIResult, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		results = append(results, ComputeROI(cfg, p, snap.ProjectBudgets(p.ID), snap.ProjectKPIs(p.ID)))
	}
	return results
}

// latestByMetric keeps the most recent entry of each metric, in series order.
func latestByMetric(kpis []KPI) []KPI {
	index := make(map[string]int)
	var out []KPI
	for _, k := range kpis {
		if i, ok := index[k.Metric]; ok {
			if !out[i].RecordedOn.After(k.RecordedOn) {
				out[i] = k
			}
			continue
		}
		index[k.Metric] = len(out)
		out = append(out, k)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
