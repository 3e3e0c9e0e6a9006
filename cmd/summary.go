package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard summary" }
func (*summaryCmd) Usage() string {
	return `cjs summary

  Displays the dashboard: cash balances, receivable and payable
  totals, and the latest movements.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Summary(openStore().Load()))
	return subcommands.ExitSuccess
}
