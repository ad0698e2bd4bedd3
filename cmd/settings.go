package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct {
	theme  string
	color  string
	layout string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the presentation preferences" }
func (*configCmd) Usage() string {
	return `gpro config [-theme <theme>] [-color <scheme>] [-layout <a,b,c>]

  Shows the stored presentation preferences, or changes the ones given.
  They are carried in the state for the web app; no report depends on them.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "Theme (e.g. dark, light).")
	f.StringVar(&c.color, "color", "", "Accent color scheme (e.g. indigo, emerald).")
	f.StringVar(&c.layout, "layout", "", "Comma-separated dashboard section order.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.theme != "" {
		store.SetTheme(c.theme)
	}
	if c.color != "" {
		store.SetColorScheme(c.color)
	}
	if c.layout != "" {
		parts := strings.Split(c.layout, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		store.SetDashboardLayout(parts)
	}

	st := store.State()
	fmt.Printf("theme: %s\ncolor: %s\nlayout: %s\n", st.Theme, st.ColorScheme, strings.Join(st.DashboardLayout, ", "))
	return subcommands.ExitSuccess
}

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore the fresh-install state" }
func (*resetCmd) Usage() string {
	return `gpro reset -force

  Discards every bankroll, transaction and challenge and restores the
  default state. Irreversible, requires -force.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the reset.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: reset discards all data, pass -force to confirm.")
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.Reset()
	fmt.Println("State reset to defaults.")
	return subcommands.ExitSuccess
}
