package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/renderer"
)

type healthCmd struct {
	date      string
	projectID string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display health scores for the portfolio" }
func (*healthCmd) Usage() string {
	return `apd health [-d <date>] [-project <id>]

  Displays the composite health score per project (status, risk, budget and
  KPI dimensions) and the portfolio average.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.projectID, "project", "", "Restrict to one project")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, snap, err := LoadSnapshot(dashboard.Filter{ProjectID: c.projectID})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	health := dashboard.ComputePortfolioHealth(cfg, snap)
	doc := &renderer.Document{
		Title: "Portfolio Health",
		Meta:  []string{fmt.Sprintf("Generated: %s", on)},
	}
	tbl := renderer.Table{Header: []string{"Project", "Status", "Risk", "Budget", "KPI", "Overall", "Label"}}
	for _, h := range health.Projects {
		if h.Err != nil {
			tbl.Rows = append(tbl.Rows, []string{h.ProjectName, "-", "-", "-", "-", "-", fmt.Sprintf("error: %v", h.Err)})
			continue
		}
		tbl.Rows = append(tbl.Rows, []string{
			h.ProjectName,
			fmt.Sprintf("%.0f", h.Status),
			fmt.Sprintf("%.0f", h.Risk),
			fmt.Sprintf("%.0f", h.Budget),
			fmt.Sprintf("%.0f", h.KPI),
			fmt.Sprintf("%d", h.Overall),
			dashboard.Label(float64(h.Overall)),
		})
	}
	section := renderer.Section{Blocks: []renderer.Block{tbl}}
	if health.Overall.Defined {
		section.Heading = fmt.Sprintf("Portfolio: %.0f/100 (%s)", health.Overall.Value, dashboard.Label(health.Overall.Value))
	} else {
		section.Heading = "Portfolio: no scorable project"
	}
	doc.Sections = append(doc.Sections, section)

	printMarkdown(renderer.Markdown(doc))
	return subcommands.ExitSuccess
}
