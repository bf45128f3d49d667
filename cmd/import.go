package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import projects from a JSON export" }
func (*importCmd) Usage() string {
	return `apd import -f <file>

  Imports projects from a JSON export of another tracking tool. The importer
  probes the usual layouts ($.projects, $.data.projects, ...) and maps the
  usual field spellings. Records it cannot make sense of are reported and
  skipped, the rest is imported.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON export file (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f flag is required.")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	n, errs, err := dashboard.Import(OpenStore(), file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "Warning: skipped record: %v\n", e)
	}
	fmt.Printf("Imported %d project(s) from %s\n", n, c.file)
	return subcommands.ExitSuccess
}
