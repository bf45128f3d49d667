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

type trendCmd struct {
	date      string
	projectID string
	metric    string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display KPI trends across the portfolio" }
func (*trendCmd) Usage() string {
	return `apd trend [-d <date>] [-project <id>] [-metric <name>]

  Displays the direction of each metric's time series: improving, declining
  or stable. Series with fewer than two points have no trend.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.projectID, "project", "", "Restrict to one project")
	f.StringVar(&c.metric, "metric", "", "Restrict to one metric")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	names := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		names[p.ID] = p.Name
	}

	doc := &renderer.Document{
		Title: "KPI Trends",
		Meta:  []string{fmt.Sprintf("Generated: %s", on)},
	}
	tbl := renderer.Table{Header: []string{"Project", "Metric", "First", "Last", "Change", "Points", "Direction"}}
	for _, t := range dashboard.ComputeTrends(cfg, snap) {
		if c.metric != "" && t.Metric != c.metric {
			continue
		}
		name, ok := names[t.ProjectID]
		if !ok {
			name = t.ProjectID
		}
		change := "n/a"
		if t.Direction != dashboard.InsufficientData {
			change = dashboard.Percent(100 * t.Delta).SignedString()
		}
		tbl.Rows = append(tbl.Rows, []string{
			name, t.Metric,
			fmt.Sprintf("%g", t.First), fmt.Sprintf("%g", t.Last),
			change, fmt.Sprintf("%d", t.Points), string(t.Direction),
		})
	}
	doc.Sections = append(doc.Sections, renderer.Section{Heading: "Metric Series", Blocks: []renderer.Block{tbl}})

	printMarkdown(renderer.Markdown(doc))
	return subcommands.ExitSuccess
}
