package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja"
)

type payCmd struct {
	supplier string
	account  string
	amount   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "pay a supplier out of an account" }
func (*payCmd) Usage() string {
	return `cjs pay -s <supplier> -from <account> -amount <n>

  Decreases the supplier's payable balance and the chosen cash
  account by the same amount.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.supplier, "s", "", "Supplier id or exact name.")
	f.StringVar(&c.account, "from", "", "Account the payment comes out of.")
	f.StringVar(&c.amount, "amount", "", "Amount paid.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	next, err := book.PaySupplier(findSupplier(book, c.supplier), account, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return commit(store, next, fmt.Sprintf("Paid %s to %s from %s", amount, next.Transactions[0].Destination, account))
}
