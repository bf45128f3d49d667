package renderer

import (
	"fmt"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

// statusBadge is a short text indicator for project status listings.
var statusBadge = map[dashboard.ProjectStatus]string{
	dashboard.Planning:    "[PLAN]",
	dashboard.Development: "[DEV]",
	dashboard.Testing:     "[TEST]",
	dashboard.Production:  "[PROD]",
	dashboard.Retired:     "[RET]",
}

// Overview composes the portfolio overview report into a document.
func Overview(r *dashboard.OverviewReport) *Document {
	d := &Document{
		Title: "AI Portfolio Overview",
		Meta:  []string{fmt.Sprintf("Generated: %s", r.GeneratedOn)},
	}

	d.Sections = append(d.Sections, healthSection(r.Health))

	projects := Table{Header: []string{"Project", "Status", "Priority", "Owner", "Department"}}
	for _, p := range r.Projects {
		projects.Rows = append(projects.Rows, []string{
			p.Name,
			fmt.Sprintf("%s %s", statusBadge[p.Status], title(string(p.Status))),
			title(string(p.Priority)),
			p.Owner,
			p.Department,
		})
	}
	d.Sections = append(d.Sections, section("Projects", projects))

	var budgetLine string
	if r.BudgetErr != nil {
		budgetLine = fmt.Sprintf("Total budget: unavailable (%v)", r.BudgetErr)
	} else {
		budgetLine = fmt.Sprintf("Total budget: %s planned / %s actual", r.Planned, r.Actual)
	}
	active := 0
	for _, p := range r.Projects {
		if p.IsActive() {
			active++
		}
	}
	d.Sections = append(d.Sections, section("Quick Stats", Bullets{
		fmt.Sprintf("Total projects: %d", len(r.Projects)),
		fmt.Sprintf("Active projects: %d", active),
		budgetLine,
		fmt.Sprintf("Open risks: %d", r.OpenRisks),
		fmt.Sprintf("KPIs tracked: %d", r.KPICount),
	}))
	return d
}

// healthSection renders the portfolio health breakdown shared by the
// overview and the executive summary.
func healthSection(h dashboard.PortfolioHealth) Section {
	if !h.Overall.Defined {
		return section("Health Score",
			Paragraph("Insufficient data: no scorable project in the portfolio."))
	}

	breakdown := Table{Header: []string{"Project", "Status", "Risk", "Budget", "KPI", "Overall"}}
	for _, p := range h.Projects {
		if p.Err != nil {
			breakdown.Rows = append(breakdown.Rows, []string{p.ProjectName, "-", "-", "-", "-", fmt.Sprintf("error: %v", p.Err)})
			continue
		}
		breakdown.Rows = append(breakdown.Rows, []string{
			p.ProjectName,
			score(p.Status), score(p.Risk), score(p.Budget), score(p.KPI),
			fmt.Sprintf("%d", p.Overall),
		})
	}
	return section(
		fmt.Sprintf("Health Score: %.0f/100 (%s)", h.Overall.Value, dashboard.Label(h.Overall.Value)),
		breakdown,
	)
}
