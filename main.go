package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/cli/add"
	"github.com/finrec/finrec/internal/cli/categories"
	deleteCmd "github.com/finrec/finrec/internal/cli/delete"
	"github.com/finrec/finrec/internal/cli/edit"
	"github.com/finrec/finrec/internal/cli/favorite"
	"github.com/finrec/finrec/internal/cli/list"
	"github.com/finrec/finrec/internal/config"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/storage/sqlite"
)

var configPath string

var subcommands = map[string]cli.Command{
	"add":        add.NewCommand(),
	"edit":       edit.NewCommand(),
	"delete":     deleteCmd.NewCommand(),
	"favorite":   favorite.NewCommand(),
	"list":       list.NewCommand(),
	"categories": categories.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	_ = godotenv.Load()

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "config", "finrec.toml", "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)

	store, err := sqlite.New(conf.DB)
	if err != nil {
		log.Fatal("Unable to open the record store", "error", err)
	}
	defer store.Close()

	ctx := context.Background()

	if err = store.ApplyMigrations(ctx, log); err != nil {
		log.Fatal("Unable to apply migrations", "error", err)
	}

	if err = command.Run(ctx, storage.NewNotifying(store, log), log); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func printHelp() {
	printUsage()

	names := maps.Keys(subcommands)
	sort.Strings(names)

	for _, c := range names {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: finrec <subcommand> [flags]\n\n")
}
