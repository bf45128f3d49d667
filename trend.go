package dashboard

import "math"

// TrendDirection classifies the movement of a KPI series.
type TrendDirection string

const (
	Improving        TrendDirection = "improving"
	Declining        TrendDirection = "declining"
	Stable           TrendDirection = "stable"
	InsufficientData TrendDirection = "insufficient-data"
)

// TrendResult is the classification of one metric's series for one project,
// with the underlying delta kept for transparency.
type TrendResult struct {
	ProjectID string
	Metric    string
	Direction TrendDirection
	// First and Last are the series endpoints the delta is computed from.
	First, Last float64
	// Delta is the relative change (last-first)/|first|. When the series
	// starts at zero the relative change is undefined and Delta is +/-Inf
	// in spirit; it is reported as the absolute change instead.
	Delta float64
	// Points is the number of samples in the series.
	Points int
}

// ComputeTrend classifies the direction of a time-ordered KPI series for one
// metric. It compares the first and last values of the series: a relative
// change within the tolerance band is Stable, anything larger is Improving
// or Declining. For lower-is-better metrics (error rate, latency) the sign
// is inverted, so a falling series improves.
//
// Fewer than two points cannot show a direction and classify as
// InsufficientData, never as Stable.
func ComputeTrend(cfg Config, projectID, metric string, series []KPI) TrendResult {
	res := TrendResult{ProjectID: projectID, Metric: metric, Points: len(series)}
	if len(series) < 2 {
		res.Direction = InsufficientData
		return res
	}
	first := series[0].Actual
	last := series[len(series)-1].Actual
	res.First, res.Last = first, last

	var change float64
	if first == 0 {
		// no base to compute a relative change from: any movement away from
		// zero beyond the tolerance counts as a change of the full band
		res.Delta = last
		if last == 0 {
			change = 0
		} else {
			change = math.Copysign(cfg.TrendTolerance+1, last)
		}
	} else {
		change = (last - first) / math.Abs(first)
		res.Delta = change
	}

	switch {
	case math.Abs(change) <= cfg.TrendTolerance:
		res.Direction = Stable
	case (change > 0) != cfg.LowerIsBetter[metric]:
		res.Direction = Improving
	default:
		res.Direction = Declining
	}
	return res
}

// ComputeTrends classifies every (project, metric) series in the snapshot,
// in the snapshot's deterministic order.
func ComputeTrends(cfg Config, snap *Snapshot) []TrendResult {
	var out []TrendResult
	type key struct{ project, metric string }
	seen := make(map[key]bool)
	for _, k := range snap.KPIs {
		id := key{k.ProjectID, k.Metric}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, ComputeTrend(cfg, k.ProjectID, k.Metric, snap.Series(k.ProjectID, k.Metric)))
	}
	return out
}
