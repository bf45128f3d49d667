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

type addProjectCmd struct {
	name        string
	description string
	status      string
	priority    string
	owner       string
	department  string
	model       string
	useCase     string
	start       string
	target      string
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "add a new AI project to the portfolio" }
func (*addProjectCmd) Usage() string {
	return `add-project -name <name> -owner <owner> [-status <status>] [-priority <priority>]

  Adds a new project to the portfolio:
  - name: The project name (required). Must be unique enough to recognize it in reports.
  - owner: The person accountable for the project (required).
  - status: planning, development, testing, production or retired (default planning).
  - priority: low, medium, high or critical (default medium).
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name (required)")
	f.StringVar(&c.description, "desc", "", "Short project description")
	f.StringVar(&c.status, "status", "planning", "Lifecycle status")
	f.StringVar(&c.priority, "priority", "medium", "Business priority")
	f.StringVar(&c.owner, "owner", "", "Project owner (required)")
	f.StringVar(&c.department, "dept", "", "Owning department")
	f.StringVar(&c.model, "model", "", "AI model or platform used")
	f.StringVar(&c.useCase, "use-case", "", "Business use case")
	f.StringVar(&c.start, "start", date.Today().String(), "Start date (YYYY-MM-DD)")
	f.StringVar(&c.target, "target", "", "Target completion date (YYYY-MM-DD)")
}

func (c *addProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := dashboard.ParseProjectStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	priority, err := dashboard.ParsePriority(c.priority)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	p := dashboard.Project{
		ID:          dashboard.NewID(),
		Name:        c.name,
		Description: c.description,
		Status:      status,
		Priority:    priority,
		Owner:       c.owner,
		Department:  c.department,
		ModelUsed:   c.model,
		UseCase:     c.useCase,
		StartDate:   start,
	}
	if c.target != "" {
		target, err := date.Parse(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target date: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.TargetDate = &target
	}

	if err := OpenStore().AddProject(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding project: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added project %q with id %s\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}
