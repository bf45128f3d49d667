package dashboard

import (
	"fmt"
	"sort"
)

// VarianceGroup is the planned vs actual outcome for one group of budget
// entries (a project, a category, or the whole portfolio).
type VarianceGroup struct {
	// Key identifies the group: a project name, a category, or "total".
	Key     string
	Planned Money
	Actual  Money
	// Variance is Actual - Planned; positive means over budget.
	Variance Money
	// Percent is the variance as a ratio of the plan, undefined iff the
	// planned total is zero.
	Percent Ratio
	// OverBudget is set when actual spending exceeds the plan.
	OverBudget bool
	// Err marks a group that could not be aggregated (mixed currencies).
	Err error
}

// VarianceReport is the budget variance analysis over a set of entries.
type VarianceReport struct {
	Total      VarianceGroup
	ByProject  []VarianceGroup
	ByCategory []VarianceGroup
}

// ComputeVariance aggregates budget entries into per-project, per-category
// and portfolio-wide variance groups. Group order is deterministic: sorted
// by group key. A group that fails to aggregate carries an error marker and
// never aborts the others.
func ComputeVariance(snap *Snapshot) VarianceReport {
	names := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		names[p.ID] = p.Name
	}

	byProject := make(map[string][]Budget)
	byCategory := make(map[string][]Budget)
	for _, b := range snap.Budgets {
		name, ok := names[b.ProjectID]
		if !ok {
			name = b.ProjectID // orphan entries still show up, by id
		}
		byProject[name] = append(byProject[name], b)
		byCategory[string(b.Category)] = append(byCategory[string(b.Category)], b)
	}

	return VarianceReport{
		Total:      groupVariance("total", snap.Budgets),
		ByProject:  sortedGroups(byProject),
		ByCategory: sortedGroups(byCategory),
	}
}

func sortedGroups(groups map[string][]Budget) []VarianceGroup {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]VarianceGroup, 0, len(keys))
	for _, k := range keys {
		out = append(out, groupVariance(k, groups[k]))
	}
	return out
}

func groupVariance(key string, budgets []Budget) VarianceGroup {
	g := VarianceGroup{Key: key}
	for _, b := range budgets {
		if !g.Planned.SameCurrency(b.Planned) {
			g.Err = fmt.Errorf("cannot aggregate amounts in mixed currencies %s and %s", g.Planned.Currency(), b.Planned.Currency())
			return g
		}
		g.Planned = g.Planned.Add(b.Planned)
		g.Actual = g.Actual.Add(b.Actual)
	}
	g.Variance = g.Actual.Sub(g.Planned)
	g.Percent = g.Variance.Div(g.Planned)
	g.OverBudget = g.Actual.GreaterThan(g.Planned)
	return g
}
