package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gestaopro/bankroll"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// settleCmd holds the flags for the 'settle' subcommand.
type settleCmd struct {
	id     string
	result string
	stake  string
	odds   string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "settle or edit a recorded bet" }
func (*settleCmd) Usage() string {
	return `gpro settle -id <transaction> -r <result> [-a <stake>] [-o <odds>]

  Updates the result of a bet (win, loss, void, or back to pending). The
  return amount is re-derived from the new values. Stake and odds can be
  corrected at the same time.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to update.")
	f.StringVar(&c.result, "r", "", "New result (pending, win, loss, void).")
	f.StringVar(&c.stake, "a", "", "Corrected stake, unchanged when omitted.")
	f.StringVar(&c.odds, "o", "", "Corrected odds, unchanged when omitted.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var u bankroll.TransactionUpdate
	if c.result != "" {
		result, err := bankroll.ParseBetResult(c.result)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		u.Result = &result
	}
	if c.stake != "" {
		stake, err := parseMoneyArg("stake", c.stake)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		u.Stake = &stake
	}
	if c.odds != "" {
		odds, err := decimal.NewFromString(c.odds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing odds %q: %v\n", c.odds, err)
			return subcommands.ExitUsageError
		}
		u.Odds = &odds
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if store.ActiveBankroll().Transaction(c.id) == nil {
		fmt.Fprintf(os.Stderr, "Error: no transaction %q in the active bankroll.\n", c.id)
		return subcommands.ExitFailure
	}

	store.UpdateTransaction(c.id, u)

	tx := store.ActiveBankroll().Transaction(c.id)
	fmt.Printf("Updated %s: %s staking %s, return %s\n", tx.ID, tx.Result, tx.Stake, tx.Return)
	return subcommands.ExitSuccess
}

// rmTxCmd holds the flags for the 'rm' subcommand.
type rmTxCmd struct {
	id string
}

func (*rmTxCmd) Name() string     { return "rm" }
func (*rmTxCmd) Synopsis() string { return "delete a transaction from the active bankroll" }
func (*rmTxCmd) Usage() string {
	return `gpro rm -id <transaction>

  Deletes the transaction. All derived metrics are recomputed without it.
`
}

func (c *rmTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to delete.")
}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if store.ActiveBankroll().Transaction(c.id) == nil {
		fmt.Fprintf(os.Stderr, "Error: no transaction %q in the active bankroll.\n", c.id)
		return subcommands.ExitFailure
	}

	store.DeleteTransaction(c.id)
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
