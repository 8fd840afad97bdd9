// Command sgc is the portfolio dashboard command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sgc/portfolio/cmd"
	"github.com/sgc/portfolio/docs"
)

func main() {
	// Load .env file if it exists, but don't fail if it's missing.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	completion(commander).Complete(name)

	flag.Parse()
	cmd.SetupLogging()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(f)}
	})
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flags(f *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case strings.HasSuffix(fl.Name, "-file"):
			res[fl.Name] = predict.Files("*.csv")
		case fl.Name == "chart" || fl.Name == "o":
			res[fl.Name] = predict.Files("*")
		case fl.Name == "currency":
			res[fl.Name] = predict.Set{"USD", "CAD", "EUR", "GBP", "CHF", "JPY"}
		case fl.Name == "today":
			res[fl.Name] = predict.Set{"0d", "-1d", "-1w", "-1m", "-1y"}
		case isBool(fl):
			res[fl.Name] = predict.Nothing
		default:
			res[fl.Name] = predict.Something
		}
	})
	return res
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
