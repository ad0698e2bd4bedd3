package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gestaopro/bankroll"
	"github.com/gestaopro/bankroll/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	start string
	end   string
	tail  int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transactions of the active bankroll" }
func (*historyCmd) Usage() string {
	return `gpro history [-s <start_date>] [-d <end_date>] [-tail <n>]

  Lists the ledger in chronological order with the running balance after
  each entry.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Only show transactions on or after this date.")
	f.StringVar(&c.end, "d", "", "Only show transactions on or before this date.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	h := renderer.NewHistory(store.ActiveBankroll())

	if c.start != "" {
		from, err := bankroll.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		entries := h.Entries[:0]
		for _, e := range h.Entries {
			if !e.Date.Before(from) {
				entries = append(entries, e)
			}
		}
		h.Entries = entries
	}
	if c.end != "" {
		until, err := bankroll.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		entries := h.Entries[:0]
		for _, e := range h.Entries {
			if !e.Date.After(until) {
				entries = append(entries, e)
			}
		}
		h.Entries = entries
	}
	if c.tail > 0 && len(h.Entries) > c.tail {
		h.Entries = h.Entries[len(h.Entries)-c.tail:]
	}

	printMarkdown(renderer.RenderHistory(h))
	return subcommands.ExitSuccess
}
