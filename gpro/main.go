package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/gestaopro/bankroll/cmd"
	"github.com/gestaopro/bankroll/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file can carry BANKROLL_HOME; absence is not an error.
	godotenv.Load()

	// Shell completion: exits by itself when invoked by the shell.
	completion().Complete("gpro")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// topics lists the documentation topics for completion. Completion must not
// fail, an error simply yields no suggestions.
func topics() []string {
	all, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return all
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	date := map[string]complete.Predictor{"d": predict.Nothing}
	byID := map[string]complete.Predictor{"id": predict.Nothing}

	return &complete.Command{
		Flags: map[string]complete.Predictor{"state-dir": predict.Dirs("*")},
		Sub: map[string]*complete.Command{
			"bet":               {Flags: date},
			"deposit":           {Flags: date},
			"withdraw":          {Flags: date},
			"settle":            {Flags: byID},
			"rm":                {Flags: byID},
			"summary":           {Flags: date},
			"history":           {},
			"challenge-new":     {Flags: date},
			"challenge-day":     {Flags: byID},
			"challenge-show":    {Flags: byID},
			"challenge-list":    {},
			"challenge-restart": {Flags: byID},
			"challenge-rm":      {Flags: byID},
			"bank-new":          {},
			"bank-switch":       {Flags: byID},
			"bank-list":         {},
			"bank-rm":           {Flags: byID},
			"set-initial":       {},
			"import":            {Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}},
			"export":            {Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}},
			"config":            {},
			"reset":             {},
			"topic":             {Args: predict.Set(topics())},
		},
	}
}
