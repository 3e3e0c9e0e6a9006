package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja/renderer"
)

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "display the client list and receivable total" }
func (*clientsCmd) Usage() string {
	return `cjs clients

  Displays every client with its receivable balance.
`
}

func (*clientsCmd) SetFlags(f *flag.FlagSet) {}

func (*clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Clients(openStore().Load()))
	return subcommands.ExitSuccess
}
