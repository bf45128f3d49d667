package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
	"github.com/onurcandonmezer/ai-project-dashboard/date"
)

type addBudgetCmd struct {
	projectID string
	category  string
	planned   float64
	actual    float64
	currency  string
	period    string
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "add a budget line for a project" }
func (*addBudgetCmd) Usage() string {
	return `add-budget -project <id> -category <cat> -planned <amount> -actual <amount> [-currency <code>] [-period <range>]

  Adds a planned vs actual spending line:
  - category: compute, api_calls, personnel, infrastructure or other.
  - period: a quarter (2025-Q3), a month (2025-07), a year (2025) or from_to dates.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectID, "project", "", "Project id (required)")
	f.StringVar(&c.category, "category", "other", "Spending category")
	f.Float64Var(&c.planned, "planned", 0, "Planned amount")
	f.Float64Var(&c.actual, "actual", 0, "Actual amount spent")
	f.StringVar(&c.currency, "currency", "USD", "Currency, 3-letter code")
	f.StringVar(&c.period, "period", date.Today().StartOf(date.Quarterly).String()+"_"+date.Today().EndOf(date.Quarterly).String(), "Budget period")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := dashboard.ParseBudgetCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	period, err := date.ParseRange(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	b := dashboard.Budget{
		ID:        dashboard.NewID(),
		ProjectID: c.projectID,
		Category:  category,
		Planned:   dashboard.M(c.planned, c.currency),
		Actual:    dashboard.M(c.actual, c.currency),
		Period:    period,
	}
	if err := OpenStore().AddBudget(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding budget: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s budget %s planned / %s actual for project %s\n", b.Category, b.Planned, b.Actual, b.ProjectID)
	return subcommands.ExitSuccess
}
