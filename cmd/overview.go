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

type overviewCmd struct {
	date       string
	department string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the portfolio overview" }
func (*overviewCmd) Usage() string {
	return `apd overview [-d <date>] [-dept <department>]

  Displays the portfolio overview: health breakdown, project listing and
  quick stats.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.department, "dept", "", "Restrict to one department")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, snap, err := LoadSnapshot(dashboard.Filter{Department: c.department})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Markdown(renderer.Overview(dashboard.NewOverviewReport(cfg, snap, on))))
	return subcommands.ExitSuccess
}
