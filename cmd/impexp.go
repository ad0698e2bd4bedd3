package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gestaopro/bankroll"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the whole state with a backup document" }
func (*importCmd) Usage() string {
	return `gpro import -f <file>

  Imports a backup document, replacing the current state entirely. Both the
  current multi-bankroll schema and the legacy flat schema are accepted;
  legacy documents are migrated on the fly.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Backup file to import.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required.")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := store.ImportFrom(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	st := store.State()
	fmt.Printf("Imported %d bankroll(s) from %s\n", len(st.Bankrolls), c.file)
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole state to a backup document" }
func (*exportCmd) Usage() string {
	return `gpro export [-f <file>]

  Exports the full state as a JSON backup. Without -f the file is named
  after today's date in the current directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Destination file. Defaults to a date-stamped name.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	name := c.file
	if name == "" {
		name = bankroll.ExportFilename(bankroll.Today())
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := store.ExportTo(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported state to %s\n", name)
	return subcommands.ExitSuccess
}
