package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/date"
	"github.com/onurcandonmezer/ai-project-dashboard/renderer"
)

type budgetCmd struct {
	date   string
	period string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display the budget variance analysis" }
func (*budgetCmd) Usage() string {
	return `apd budget [-d <date>] [-period <range>]

  Displays planned vs actual spending, per project and per category.
  The optional period restricts the analysis to budget lines overlapping it,
  e.g. -period 2025-Q3.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.period, "period", "", "Budget period to report on")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var filter dashboard.Filter
	if c.period != "" {
		r, err := date.ParseRange(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.Range = r
	}
	_, snap, err := LoadSnapshot(filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Markdown(renderer.BudgetVariance(dashboard.NewBudgetVarianceReport(snap, on))))
	return subcommands.ExitSuccess
}
