package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

type seedCmd struct {
	file string
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load a YAML fixture into the portfolio" }
func (*seedCmd) Usage() string {
	return `apd seed -f <file>

  Loads projects with their KPIs, budgets and risks from a YAML fixture.
  Records without ids get generated ones. Useful to bootstrap a demo
  portfolio or a test environment.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "seed.yaml", "YAML fixture file")
}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening fixture %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	n, err := dashboard.Seed(OpenStore(), file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding from %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Seeded %d project(s) into %s\n", n, *dataDir)
	return subcommands.ExitSuccess
}
