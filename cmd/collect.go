package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja"
)

type collectCmd struct {
	client  string
	account string
	amount  string
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "collect a payment from a client into an account" }
func (*collectCmd) Usage() string {
	return `cjs collect -c <client> -into <account> -amount <n>

  Decreases the client's receivable balance and increases the chosen
  cash account by the same amount.
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client id or exact name.")
	f.StringVar(&c.account, "into", "", "Account receiving the payment.")
	f.StringVar(&c.amount, "amount", "", "Amount collected.")
}

func (c *collectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := caja.ParseAccountID(c.account)
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
	book := store.Load()
	next, err := book.CollectPayment(findClient(book, c.client), account, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return commit(store, next, fmt.Sprintf("Collected %s from %s into %s", amount, next.Transactions[0].Source, account))
}
