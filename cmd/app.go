// Package cmd implements the CLI application to manage betting bankrolls.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gestaopro/bankroll"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&betCmd{}, "transactions")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&settleCmd{}, "transactions")
	c.Register(&rmTxCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&challengeNewCmd{}, "challenges")
	c.Register(&challengeDayCmd{}, "challenges")
	c.Register(&challengeShowCmd{}, "challenges")
	c.Register(&challengeListCmd{}, "challenges")
	c.Register(&challengeRestartCmd{}, "challenges")
	c.Register(&challengeRmCmd{}, "challenges")

	c.Register(&bankNewCmd{}, "bankrolls")
	c.Register(&bankSwitchCmd{}, "bankrolls")
	c.Register(&bankListCmd{}, "bankrolls")
	c.Register(&bankRmCmd{}, "bankrolls")
	c.Register(&setInitialCmd{}, "bankrolls")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&configCmd{}, "data")
	c.Register(&resetCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateDir = flag.String("state-dir", "", "Path to the folder holding the application state. Defaults to $BANKROLL_HOME or ~/.gestaopro.")

// StateDir resolves the state folder: the -state-dir flag when given, then
// $BANKROLL_HOME, then .gestaopro under the user home directory. Resolution is
// lazy so a .env file loaded by the main package is taken into account.
func StateDir() string {
	if *stateDir != "" {
		return *stateDir
	}
	if dir := os.Getenv("BANKROLL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gestaopro"
	}
	return filepath.Join(home, ".gestaopro")
}

// LoadStore opens the state slot and loads the persisted state into a store.
// Every mutation on the returned store is persisted back to the slot.
func LoadStore() (*bankroll.Store, error) {
	slot, err := bankroll.OpenSlot(StateDir())
	if err != nil {
		return nil, err
	}
	st, err := slot.Load()
	if err != nil {
		return nil, err
	}
	return bankroll.NewStore(st, slot), nil
}

// parseMoneyArg parses a monetary flag value, reporting the flag name on error.
func parseMoneyArg(name, value string) (bankroll.Money, error) {
	m, err := bankroll.ParseMoney(value)
	if err != nil {
		return bankroll.Money{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return m, nil
}
