package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gestaopro/bankroll"
	"github.com/gestaopro/bankroll/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// challengeNewCmd holds the flags for the 'challenge-new' subcommand.
type challengeNewCmd struct {
	name  string
	stake string
	odds  string
	days  int
	start string
}

func (*challengeNewCmd) Name() string     { return "challenge-new" }
func (*challengeNewCmd) Synopsis() string { return "start a compounding staking challenge" }
func (*challengeNewCmd) Usage() string {
	return `gpro challenge-new -n <name> -a <initial_stake> -o <target_odds> -days <n> [-s <start_date>]

  Creates a challenge: bet the day's stake at the target odds every day,
  rolling the payout into the next day's stake.
`
}

func (c *challengeNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the challenge.")
	f.StringVar(&c.stake, "a", "", "Initial stake of day 1.")
	f.StringVar(&c.odds, "o", "", "Target odds played every day.")
	f.IntVar(&c.days, "days", 0, "Number of days the challenge runs.")
	f.StringVar(&c.start, "s", "0d", "Start date of the challenge.")
}

func (c *challengeNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stake, err := parseMoneyArg("initial stake", c.stake)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	odds, err := decimal.NewFromString(c.odds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing odds %q: %v\n", c.odds, err)
		return subcommands.ExitUsageError
	}
	start, err := bankroll.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := bankroll.ValidateChallengeParams(stake, odds, c.days); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ch := bankroll.NewChallenge(c.name, stake, odds, c.days, start)
	store.AddChallenge(ch)

	fmt.Printf("Created challenge %s (%s): final target %s\n", ch.Name, ch.ID, ch.FinalTarget())
	return subcommands.ExitSuccess
}

// challengeDayCmd holds the flags for the 'challenge-day' subcommand.
type challengeDayCmd struct {
	id     string
	day    int
	result string
	double bool
}

func (*challengeDayCmd) Name() string     { return "challenge-day" }
func (*challengeDayCmd) Synopsis() string { return "record the outcome of a challenge day" }
func (*challengeDayCmd) Usage() string {
	return `gpro challenge-day -id <challenge> -day <n> -r <result> [-double]

  Records a day's result and replays the schedule. A loss fails the
  challenge unless -double is set, which doubles the next stake to chase
  the loss (martingale).
`
}

func (c *challengeDayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Challenge to update.")
	f.IntVar(&c.day, "day", 0, "Day number to record (1-based).")
	f.StringVar(&c.result, "r", "", "Result of the day (pending, win, loss, void).")
	f.BoolVar(&c.double, "double", false, "On a loss, double the next stake instead of failing.")
}

func (c *challengeDayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	ch := store.ActiveBankroll().Challenge(c.id)
	if ch == nil {
		fmt.Fprintf(os.Stderr, "Error: no challenge %q in the active bankroll.\n", c.id)
		return subcommands.ExitFailure
	}
	if c.day < 1 || c.day > ch.TotalDays {
		fmt.Fprintf(os.Stderr, "Error: day %d is out of range, the challenge runs days 1 to %d.\n", c.day, ch.TotalDays)
		return subcommands.ExitUsageError
	}

	store.UpdateChallengeDay(c.id, c.day, result, c.double)

	ch = store.ActiveBankroll().Challenge(c.id)
	fmt.Printf("Challenge %s is now %s (%s done)\n", ch.Name, ch.Status, ch.Progress())
	return subcommands.ExitSuccess
}

// challengeShowCmd holds the flags for the 'challenge-show' subcommand.
type challengeShowCmd struct {
	id string
}

func (*challengeShowCmd) Name() string     { return "challenge-show" }
func (*challengeShowCmd) Synopsis() string { return "display a challenge schedule and projection" }
func (*challengeShowCmd) Usage() string {
	return `gpro challenge-show -id <challenge>

  Displays the day schedule and the projection-versus-reality series.
`
}

func (c *challengeShowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Challenge to display.")
}

func (c *challengeShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ch := store.ActiveBankroll().Challenge(c.id)
	if ch == nil {
		fmt.Fprintf(os.Stderr, "Error: no challenge %q in the active bankroll.\n", c.id)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderChallenge(renderer.NewChallengeReport(*ch)))
	return subcommands.ExitSuccess
}

// challengeListCmd implements the 'challenge-list' subcommand.
type challengeListCmd struct{}

func (*challengeListCmd) Name() string     { return "challenge-list" }
func (*challengeListCmd) Synopsis() string { return "list the challenges of the active bankroll" }
func (*challengeListCmd) Usage() string {
	return `gpro challenge-list

  Lists every challenge with its status and progress.
`
}

func (*challengeListCmd) SetFlags(f *flag.FlagSet) {}

func (*challengeListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderChallengeList(renderer.NewChallengeList(store.ActiveBankroll())))
	return subcommands.ExitSuccess
}

// challengeRestartCmd holds the flags for the 'challenge-restart' subcommand.
type challengeRestartCmd struct {
	id string
}

func (*challengeRestartCmd) Name() string     { return "challenge-restart" }
func (*challengeRestartCmd) Synopsis() string { return "reset a challenge back to day 1" }
func (*challengeRestartCmd) Usage() string {
	return `gpro challenge-restart -id <challenge>

  Clears every recorded outcome and restores the original stake schedule.
`
}

func (c *challengeRestartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Challenge to restart.")
}

func (c *challengeRestartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if store.ActiveBankroll().Challenge(c.id) == nil {
		fmt.Fprintf(os.Stderr, "Error: no challenge %q in the active bankroll.\n", c.id)
		return subcommands.ExitFailure
	}

	store.RestartChallenge(c.id)
	fmt.Printf("Restarted challenge %s\n", c.id)
	return subcommands.ExitSuccess
}

// challengeRmCmd holds the flags for the 'challenge-rm' subcommand.
type challengeRmCmd struct {
	id string
}

func (*challengeRmCmd) Name() string     { return "challenge-rm" }
func (*challengeRmCmd) Synopsis() string { return "delete a challenge" }
func (*challengeRmCmd) Usage() string {
	return `gpro challenge-rm -id <challenge>

  Deletes the challenge from the active bankroll.
`
}

func (c *challengeRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Challenge to delete.")
}

func (c *challengeRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if store.ActiveBankroll().Challenge(c.id) == nil {
		fmt.Fprintf(os.Stderr, "Error: no challenge %q in the active bankroll.\n", c.id)
		return subcommands.ExitFailure
	}

	store.DeleteChallenge(c.id)
	fmt.Printf("Deleted challenge %s\n", c.id)
	return subcommands.ExitSuccess
}
