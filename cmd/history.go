package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja/renderer"
)

type historyCmd struct {
	head int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the recorded movements, newest first" }
func (*historyCmd) Usage() string {
	return `cjs history [-head <n>]

  Lists the transaction log, newest first, with options for limiting
  the output.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N movements.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openStore().Load()
	txs := book.Transactions
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	printMarkdown(renderer.History(txs))
	return subcommands.ExitSuccess
}
