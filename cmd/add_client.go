package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addClientCmd struct {
	name string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "register a new client" }
func (*addClientCmd) Usage() string {
	return `cjs add-client -name <name>

  Registers a new client with a zero receivable balance.
`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the client.")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	next, err := store.Load().AddClient(c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return commit(store, next, fmt.Sprintf("Added client %q", c.name))
}
