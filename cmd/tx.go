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

// betCmd holds the flags for the 'bet' subcommand.
type betCmd struct {
	date        string
	description string
	stake       string
	odds        string
	result      string
	sport       string
	market      string
}

func (*betCmd) Name() string     { return "bet" }
func (*betCmd) Synopsis() string { return "record a bet in the active bankroll" }
func (*betCmd) Usage() string {
	return `gpro bet -a <amount> -o <odds> [-d <date>] [-m <description>] [-r <result>] [-sport <sport>] [-market <market>]

  Records a bet. The stake is committed immediately; the return amount is
  derived from the result (pending by default, settle it later with 'settle').
`
}

func (c *betCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the bet. See the user manual for supported date formats.")
	f.StringVar(&c.description, "m", "", "Description of the bet (e.g. \"Flamengo ML\").")
	f.StringVar(&c.stake, "a", "", "Amount staked.")
	f.StringVar(&c.odds, "o", "", "Decimal odds of the bet (e.g. 1.85).")
	f.StringVar(&c.result, "r", "pending", "Result of the bet (pending, win, loss, void).")
	f.StringVar(&c.sport, "sport", "", "Sport of the event.")
	f.StringVar(&c.market, "market", "", "Market of the bet (e.g. ML, over/under).")
}

func (c *betCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := bankroll.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	stake, err := parseMoneyArg("stake", c.stake)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	odds, err := decimal.NewFromString(c.odds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing odds %q: %v\n", c.odds, err)
		return subcommands.ExitUsageError
	}
	result, err := bankroll.ParseBetResult(c.result)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := bankroll.NewBet(on, c.description, stake, odds, result)
	tx.Sport = c.sport
	tx.Market = c.market
	store.AddTransaction(tx)

	fmt.Printf("Recorded bet %s: %s at %s on %s\n", tx.ID, stake, odds, on)
	return subcommands.ExitSuccess
}

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	date        string
	description string
	amount      string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record funds added to the active bankroll" }
func (*depositCmd) Usage() string {
	return `gpro deposit -a <amount> [-d <date>] [-m <description>]

  Records a deposit into the active bankroll.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the deposit.")
	f.StringVar(&c.description, "m", "", "Description of the deposit.")
	f.StringVar(&c.amount, "a", "", "Amount deposited.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeMovement(c.date, c.description, c.amount, bankroll.NewDeposit)
}

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct {
	date        string
	description string
	amount      string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record funds taken out of the active bankroll" }
func (*withdrawCmd) Usage() string {
	return `gpro withdraw -a <amount> [-d <date>] [-m <description>]

  Records a withdrawal from the active bankroll.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the withdrawal.")
	f.StringVar(&c.description, "m", "", "Description of the withdrawal.")
	f.StringVar(&c.amount, "a", "", "Amount withdrawn.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeMovement(c.date, c.description, c.amount, bankroll.NewWithdrawal)
}

// executeMovement shares the deposit/withdraw flow: both are plain cash
// movements differing only in the constructor.
func executeMovement(date, description, amount string, build func(bankroll.Date, string, bankroll.Money) bankroll.Transaction) subcommands.ExitStatus {
	on, err := bankroll.ParseDate(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	m, err := parseMoneyArg("amount", amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := build(on, description, m)
	store.AddTransaction(tx)

	fmt.Printf("Recorded %s %s: %s on %s\n", tx.Type, tx.ID, m, on)
	return subcommands.ExitSuccess
}
