package renderer

import (
	"fmt"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

// ExecutiveSummary composes the executive summary report into a document.
func ExecutiveSummary(r *dashboard.ExecutiveSummaryReport) *Document {
	d := &Document{
		Title: "Executive Summary",
		Meta:  []string{fmt.Sprintf("Generated: %s", r.GeneratedOn)},
	}

	d.Sections = append(d.Sections, healthSection(r.Health))

	status := Table{Header: []string{"Status", "Projects"}}
	for _, s := range dashboard.ProjectStatuses {
		status.Rows = append(status.Rows, []string{title(string(s)), fmt.Sprintf("%d", r.StatusCounts[s])})
	}
	portfolio := Section{Heading: "Portfolio", Blocks: []Block{
		Bullets{
			fmt.Sprintf("Total projects: %d (%d active)", r.TotalProjects, r.ActiveProjects),
			criticalLine(r.CriticalProjects),
		},
		status,
	}}
	d.Sections = append(d.Sections, portfolio)

	d.Sections = append(d.Sections, section("Budget", varianceTable([]dashboard.VarianceGroup{r.Budget}, "")))

	kpi := Bullets{
		fmt.Sprintf("KPIs tracked: %d, on target: %d", r.KPICount, r.OnTarget),
		fmt.Sprintf("Average achievement: %s", percent(r.AvgAchievement)),
		fmt.Sprintf("Metric trends: %d improving, %d stable, %d declining",
			r.Trends[dashboard.Improving], r.Trends[dashboard.Stable], r.Trends[dashboard.Declining]),
	}
	if n := len(r.Underachieving); n > 0 {
		kpi = append(kpi, fmt.Sprintf("Underachieving: %d", n))
	}
	d.Sections = append(d.Sections, section("KPIs", kpi))

	risks := Section{Heading: "Risks", Blocks: []Block{
		Paragraph(fmt.Sprintf("%d risks tracked, %d open, %d critical.",
			r.Matrix.Total(), r.Matrix.Open, r.Matrix.CriticalCount())),
		matrixTable(r.Matrix),
	}}
	d.Sections = append(d.Sections, risks)

	d.Sections = append(d.Sections, section("Recommendations", Bullets(r.Recommendations)))
	return d
}

func criticalLine(names []string) string {
	if len(names) == 0 {
		return "Critical-priority projects: none"
	}
	return fmt.Sprintf("Critical-priority projects: %s", joinList(names))
}
