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

type risksCmd struct {
	date      string
	projectID string
}

func (*risksCmd) Name() string     { return "risks" }
func (*risksCmd) Synopsis() string { return "display the risk register and matrix" }
func (*risksCmd) Usage() string {
	return `apd risks [-d <date>] [-project <id>]

  Displays the probability x impact matrix and the risk register sorted by
  score, highest first.
`
}

func (c *risksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.projectID, "project", "", "Restrict to one project")
}

func (c *risksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	_, snap, err := LoadSnapshot(dashboard.Filter{ProjectID: c.projectID})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Markdown(renderer.RiskRegister(dashboard.NewRiskRegisterReport(snap, on))))
	return subcommands.ExitSuccess
}
