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

type addKPICmd struct {
	projectID string
	metric    string
	target    float64
	actual    float64
	unit      string
	on        string
}

func (*addKPICmd) Name() string     { return "add-kpi" }
func (*addKPICmd) Synopsis() string { return "record a KPI measurement for a project" }
func (*addKPICmd) Usage() string {
	return `add-kpi -project <id> -metric <name> -target <v> -actual <v> [-unit <unit>] [-d <date>]

  Records one measurement of a project metric. Successive measurements of the
  same metric form its time series for trend analysis.
`
}

func (c *addKPICmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectID, "project", "", "Project id (required)")
	f.StringVar(&c.metric, "metric", "", "Metric name, e.g. accuracy (required)")
	f.Float64Var(&c.target, "target", 0, "Target value")
	f.Float64Var(&c.actual, "actual", 0, "Measured value")
	f.StringVar(&c.unit, "unit", "", "Measurement unit")
	f.StringVar(&c.on, "d", date.Today().String(), "Measurement date (YYYY-MM-DD)")
}

func (c *addKPICmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	k := dashboard.KPI{
		ID:         dashboard.NewID(),
		ProjectID:  c.projectID,
		Metric:     c.metric,
		Target:     c.target,
		Actual:     c.actual,
		Unit:       c.unit,
		RecordedOn: on,
	}
	if err := OpenStore().AddKPI(k); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding KPI: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s = %g (target %g) for project %s\n", k.Metric, k.Actual, k.Target, k.ProjectID)
	return subcommands.ExitSuccess
}
