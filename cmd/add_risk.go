package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

type addRiskCmd struct {
	projectID   string
	description string
	probability int
	impact      int
	mitigation  string
	status      string
}

func (*addRiskCmd) Name() string     { return "add-risk" }
func (*addRiskCmd) Synopsis() string { return "register a risk for a project" }
func (*addRiskCmd) Usage() string {
	return `add-risk -project <id> -desc <text> -probability <1-5> -impact <1-5> [-mitigation <text>] [-status <status>]

  Registers a risk on the 1-5 probability and impact scales. The combined
  score (probability x impact) places the risk on the 5x5 matrix.
`
}

func (c *addRiskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectID, "project", "", "Project id (required)")
	f.StringVar(&c.description, "desc", "", "Risk description (required)")
	f.IntVar(&c.probability, "probability", 3, "Likelihood on a 1-5 scale")
	f.IntVar(&c.impact, "impact", 3, "Impact on a 1-5 scale")
	f.StringVar(&c.mitigation, "mitigation", "", "Mitigation plan")
	f.StringVar(&c.status, "status", "open", "open, mitigating or resolved")
}

func (c *addRiskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := dashboard.ParseRiskStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	r := dashboard.Risk{
		ID:          dashboard.NewID(),
		ProjectID:   c.projectID,
		Description: c.description,
		Probability: c.probability,
		Impact:      c.impact,
		Mitigation:  c.mitigation,
		Status:      status,
	}
	if err := OpenStore().AddRisk(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding risk: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered risk %s (score %d, %s) for project %s\n", r.ID, r.Score(), r.Level(), r.ProjectID)
	return subcommands.ExitSuccess
}
