package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja/renderer"
)

type suppliersCmd struct{}

func (*suppliersCmd) Name() string     { return "suppliers" }
func (*suppliersCmd) Synopsis() string { return "display the supplier list and payable total" }
func (*suppliersCmd) Usage() string {
	return `cjs suppliers

  Displays every supplier with its payable balance.
`
}

func (*suppliersCmd) SetFlags(f *flag.FlagSet) {}

func (*suppliersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Suppliers(openStore().Load()))
	return subcommands.ExitSuccess
}
