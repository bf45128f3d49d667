package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/date"
	"github.com/onurcandonmezer/ai-project-dashboard/renderer"
)

type publishCmd struct {
	outputDir string
	date      string
	format    string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generate all reports to a directory" }

func (*publishCmd) Usage() string {
	return `apd publish [-o <dir>] [-d <date>] [-format md|html|all]

  Generates every report (overview, summary, budget, risks) and saves them
  to the output directory, in markdown, HTML or both. Publishing twice from
  unchanged data produces identical files.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.date, "d", "", "Report date, today by default (YYYY-MM-DD)")
	f.StringVar(&c.format, "format", "all", "Output format: md, html or all")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "md" && c.format != "html" && c.format != "all" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want md, html or all\n", c.format)
		return subcommands.ExitUsageError
	}
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, snap, err := LoadSnapshot(dashboard.Filter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	docs := map[string]*renderer.Document{
		"overview": renderer.Overview(dashboard.NewOverviewReport(cfg, snap, on)),
		"summary":  renderer.ExecutiveSummary(dashboard.NewExecutiveSummaryReport(cfg, snap, on)),
		"budget":   renderer.BudgetVariance(dashboard.NewBudgetVarianceReport(snap, on)),
		"risks":    renderer.RiskRegister(dashboard.NewRiskRegisterReport(snap, on)),
	}
	for _, name := range []string{"overview", "summary", "budget", "risks"} {
		doc := docs[name]
		if c.format == "md" || c.format == "all" {
			if st := c.write(name+".md", on, renderer.Markdown(doc)); st != subcommands.ExitSuccess {
				return st
			}
		}
		if c.format == "html" || c.format == "all" {
			if st := c.write(name+".html", on, renderer.HTML(doc)); st != subcommands.ExitSuccess {
				return st
			}
		}
	}
	return subcommands.ExitSuccess
}

// write saves one rendered report under <outputDir>/<date>/.
func (c *publishCmd) write(name string, on date.Date, content string) subcommands.ExitStatus {
	dir := filepath.Join(c.outputDir, on.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory for %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Generated %s\n", path)
	return subcommands.ExitSuccess
}
