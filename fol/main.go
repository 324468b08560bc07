// Command fol keeps a portfolio of positions in a JSONL file and updates it.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	cmd.Completion(commander, flag.CommandLine).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
