package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saleCmd struct {
	client      string
	amount      string
	description string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale to a client on credit" }
func (*saleCmd) Usage() string {
	return `cjs sale -c <client> -amount <n> [-m <description>]

  Increases the client's receivable balance. No cash moves: the sale
  is recorded on an accrual basis.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client id or exact name.")
	f.StringVar(&c.amount, "amount", "", "Sale amount.")
	f.StringVar(&c.description, "m", "", "Description of the sale.")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	book := store.Load()
	next, err := book.RegisterSale(findClient(book, c.client), amount, c.description)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return commit(store, next, fmt.Sprintf("Recorded sale of %s to %s", amount, next.Transactions[0].Destination))
}
