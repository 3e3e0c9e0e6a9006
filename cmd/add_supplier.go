package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addSupplierCmd struct {
	name string
}

func (*addSupplierCmd) Name() string     { return "add-supplier" }
func (*addSupplierCmd) Synopsis() string { return "register a new supplier" }
func (*addSupplierCmd) Usage() string {
	return `cjs add-supplier -name <name>

  Registers a new supplier with a zero payable balance.
`
}

func (c *addSupplierCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the supplier.")
}

func (c *addSupplierCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	next, err := store.Load().AddSupplier(c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return commit(store, next, fmt.Sprintf("Added supplier %q", c.name))
}
