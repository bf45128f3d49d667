// Package cmd implements the CLI application to manage a portfolio of AI
// projects.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

// Commands lists the subcommands to register.
// A main package iterates over it and calls Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&addProjectCmd{},
	&addKPICmd{},
	&addBudgetCmd{},
	&addRiskCmd{},
	&seedCmd{},
	&importCmd{},
	&overviewCmd{},
	&summaryCmd{},
	&healthCmd{},
	&roiCmd{},
	&trendCmd{},
	&budgetCmd{},
	&risksCmd{},
	&publishCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".dashboard", "Path to the portfolio data folder (JSONL files)")
var configFile = flag.String("config", "", "Path to the analytics configuration file (YAML), defaults are used when absent")

// OpenStore opens the application data folder.
func OpenStore() *dashboard.FileStore {
	return dashboard.NewFileStore(*dataDir)
}

// LoadConfig loads the analytics configuration, DefaultConfig when no file
// is configured.
func LoadConfig() (dashboard.Config, error) {
	if *configFile == "" {
		return dashboard.DefaultConfig(), nil
	}
	f, err := os.Open(*configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dashboard.Config{}, fmt.Errorf("config file %q does not exist", *configFile)
		}
		return dashboard.Config{}, fmt.Errorf("could not open config file %q: %w", *configFile, err)
	}
	defer f.Close()
	return dashboard.LoadConfig(f)
}

// LoadSnapshot reads everything needed for a report in one pass.
func LoadSnapshot(f dashboard.Filter) (dashboard.Config, *dashboard.Snapshot, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return dashboard.Config{}, nil, err
	}
	snap, err := dashboard.TakeSnapshot(OpenStore(), f)
	if err != nil {
		return dashboard.Config{}, nil, err
	}
	return cfg, snap, nil
}

// parseReportDate parses the -d flag of report commands, today by default.
func parseReportDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders markdown for the terminal. It falls back to the raw
// text when the renderer cannot be built (e.g. no usable terminal).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
