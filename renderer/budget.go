package renderer

import (
	"fmt"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

// BudgetVariance composes the budget variance report into a document.
func BudgetVariance(r *dashboard.BudgetVarianceReport) *Document {
	d := &Document{
		Title: "Budget Variance",
		Meta:  []string{fmt.Sprintf("Generated: %s", r.GeneratedOn)},
	}
	d.Sections = append(d.Sections,
		section("Portfolio Total", varianceTable([]dashboard.VarianceGroup{r.Variance.Total}, "")),
		section("By Project", varianceTable(r.Variance.ByProject, "Project")),
		section("By Category", varianceTable(r.Variance.ByCategory, "Category")),
	)
	return d
}

// varianceTable renders variance groups as a table. The key column header is
// empty for the single-row portfolio total.
func varianceTable(groups []dashboard.VarianceGroup, key string) Table {
	if key == "" {
		key = "Scope"
	}
	t := Table{Header: []string{key, "Planned", "Actual", "Variance", "Variance %", "Status"}}
	for _, g := range groups {
		if g.Err != nil {
			t.Rows = append(t.Rows, []string{title(g.Key), "-", "-", "-", "-", fmt.Sprintf("error: %v", g.Err)})
			continue
		}
		status := "on budget"
		if g.OverBudget {
			status = "over budget"
		}
		t.Rows = append(t.Rows, []string{
			title(g.Key),
			g.Planned.String(),
			g.Actual.String(),
			g.Variance.SignedString(),
			percent(g.Percent),
			status,
		})
	}
	return t
}
