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

type roiCmd struct {
	date      string
	projectID string
}

func (*roiCmd) Name() string     { return "roi" }
func (*roiCmd) Synopsis() string { return "display return on investment per project" }
func (*roiCmd) Usage() string {
	return `apd roi [-d <date>] [-project <id>]

  Displays the estimated return on investment per project. Projects without
  recorded spending have no defined ROI and are shown as n/a.
`
}

func (c *roiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.projectID, "project", "", "Restrict to one project")
}

func (c *roiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	doc := &renderer.Document{
		Title: "Return on Investment",
		Meta:  []string{fmt.Sprintf("Generated: %s", on)},
	}
	tbl := renderer.Table{Header: []string{"Project", "Cost", "Estimated Value", "ROI"}}
	for _, r := range dashboard.ComputePortfolioROI(cfg, snap) {
		if r.Err != nil {
			tbl.Rows = append(tbl.Rows, []string{r.ProjectName, "-", "-", fmt.Sprintf("error: %v", r.Err)})
			continue
		}
		roi := "n/a"
		if r.ROI.Defined {
			roi = r.ROI.Percent().SignedString()
		}
		tbl.Rows = append(tbl.Rows, []string{r.ProjectName, r.Cost.String(), r.Value.String(), roi})
	}
	doc.Sections = append(doc.Sections, renderer.Section{Heading: "Projects", Blocks: []renderer.Block{tbl}})

	printMarkdown(renderer.Markdown(doc))
	return subcommands.ExitSuccess
}
