package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type purchaseCmd struct {
	supplier    string
	amount      string
	description string
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record a purchase from a supplier on credit" }
func (*purchaseCmd) Usage() string {
	return `cjs purchase -s <supplier> -amount <n> [-m <description>]

  Increases the supplier's payable balance. No cash moves.
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.supplier, "s", "", "Supplier id or exact name.")
	f.StringVar(&c.amount, "amount", "", "Purchase amount.")
	f.StringVar(&c.description, "m", "", "Description of the purchase.")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	book := store.Load()
	next, err := book.RegisterPurchase(findSupplier(book, c.supplier), amount, c.description)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return commit(store, next, fmt.Sprintf("Recorded purchase of %s from %s", amount, next.Transactions[0].Source))
}
