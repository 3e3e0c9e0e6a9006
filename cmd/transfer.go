package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja"
)

type transferCmd struct {
	from   string
	to     string
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move cash between two accounts" }
func (*transferCmd) Usage() string {
	return `cjs transfer -from <account> -to <account> -amount <n>

  Moves cash between two of the fixed accounts (EFECTIVO, CHEQUES,
  TRANSFERENCIAS) and records the internal transfer.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account id.")
	f.StringVar(&c.to, "to", "", "Destination account id.")
	f.StringVar(&c.amount, "amount", "", "Amount to move.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := caja.ParseAccountID(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	to, err := caja.ParseAccountID(c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	next, err := store.Load().TransferInternal(from, to, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return commit(store, next, fmt.Sprintf("Transferred %s from %s to %s", amount, from, to))
}
