package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gestaopro/bankroll/renderer"
	"github.com/google/subcommands"
)

// bankNewCmd holds the flags for the 'bank-new' subcommand.
type bankNewCmd struct {
	name    string
	initial string
}

func (*bankNewCmd) Name() string     { return "bank-new" }
func (*bankNewCmd) Synopsis() string { return "create a bankroll and switch to it" }
func (*bankNewCmd) Usage() string {
	return `gpro bank-new -n <name> -a <initial>

  Creates a new bankroll with its own ledger and challenges, and makes it
  the active one.
`
}

func (c *bankNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the bankroll (e.g. the bookmaker).")
	f.StringVar(&c.initial, "a", "", "Starting capital of the bankroll.")
}

func (c *bankNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required.")
		return subcommands.ExitUsageError
	}
	initial, err := parseMoneyArg("initial", c.initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.CreateBankroll(c.name, initial)
	b := store.ActiveBankroll()
	fmt.Printf("Created bankroll %s (%s), now active\n", b.Name, b.ID)
	return subcommands.ExitSuccess
}

// bankSwitchCmd holds the flags for the 'bank-switch' subcommand.
type bankSwitchCmd struct {
	id string
}

func (*bankSwitchCmd) Name() string     { return "bank-switch" }
func (*bankSwitchCmd) Synopsis() string { return "change the active bankroll" }
func (*bankSwitchCmd) Usage() string {
	return `gpro bank-switch -id <bankroll>

  Makes the given bankroll the active one. All transaction and challenge
  commands operate on the active bankroll.
`
}

func (c *bankSwitchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Bankroll to activate.")
}

func (c *bankSwitchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.SwitchBankroll(c.id)
	b := store.ActiveBankroll()
	if b.ID != c.id {
		fmt.Fprintf(os.Stderr, "Error: no bankroll %q.\n", c.id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Active bankroll is now %s (%s)\n", b.Name, b.ID)
	return subcommands.ExitSuccess
}

// bankListCmd implements the 'bank-list' subcommand.
type bankListCmd struct{}

func (*bankListCmd) Name() string     { return "bank-list" }
func (*bankListCmd) Synopsis() string { return "list every bankroll" }
func (*bankListCmd) Usage() string {
	return `gpro bank-list

  Lists every bankroll with its balance. The active one is starred.
`
}

func (*bankListCmd) SetFlags(f *flag.FlagSet) {}

func (*bankListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderBankList(renderer.NewBankList(store.State())))
	return subcommands.ExitSuccess
}

// bankRmCmd holds the flags for the 'bank-rm' subcommand.
type bankRmCmd struct {
	id string
}

func (*bankRmCmd) Name() string     { return "bank-rm" }
func (*bankRmCmd) Synopsis() string { return "delete a bankroll" }
func (*bankRmCmd) Usage() string {
	return `gpro bank-rm -id <bankroll>

  Deletes the bankroll with its whole ledger. The last remaining bankroll
  cannot be deleted.
`
}

func (c *bankRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Bankroll to delete.")
}

func (c *bankRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(store.State().Bankrolls) <= 1 {
		fmt.Fprintln(os.Stderr, "Error: cannot delete the last bankroll.")
		return subcommands.ExitFailure
	}
	known := false
	for _, b := range store.State().Bankrolls {
		if b.ID == c.id {
			known = true
			break
		}
	}
	if !known {
		fmt.Fprintf(os.Stderr, "Error: no bankroll %q.\n", c.id)
		return subcommands.ExitFailure
	}

	store.DeleteBankroll(c.id)
	fmt.Printf("Deleted bankroll %s, active is now %s\n", c.id, store.ActiveBankroll().Name)
	return subcommands.ExitSuccess
}

// setInitialCmd holds the flags for the 'set-initial' subcommand.
type setInitialCmd struct {
	amount string
}

func (*setInitialCmd) Name() string     { return "set-initial" }
func (*setInitialCmd) Synopsis() string { return "change the starting capital of the active bankroll" }
func (*setInitialCmd) Usage() string {
	return `gpro set-initial -a <amount>

  Changes the starting capital. The current balance and ROI are re-derived
  from the new baseline.
`
}

func (c *setInitialCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "New starting capital.")
}

func (c *setInitialCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseMoneyArg("amount", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.SetInitialBankroll(amount)
	fmt.Printf("Initial bankroll of %s set to %s\n", store.ActiveBankroll().Name, amount)
	return subcommands.ExitSuccess
}
