package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the cash account balances" }
func (*accountsCmd) Usage() string {
	return `cjs accounts

  Displays the balance of the three cash accounts and the total cash.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Accounts(openStore().Load()))
	return subcommands.ExitSuccess
}
