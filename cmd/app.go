// Package cmd implements the CLI application to manage the book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mfuentes/caja"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&transferCmd{}, "movements")
	c.Register(&addClientCmd{}, "movements")
	c.Register(&saleCmd{}, "movements")
	c.Register(&collectCmd{}, "movements")
	c.Register(&addSupplierCmd{}, "movements")
	c.Register(&purchaseCmd{}, "movements")
	c.Register(&payCmd{}, "movements")

	c.Register(&accountsCmd{}, "reports")
	c.Register(&clientsCmd{}, "reports")
	c.Register(&suppliersCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("f", caja.DefaultFile, "Path to the book file (JSON format)")

// openStore returns the store over the app book file.
func openStore() *caja.Store { return caja.NewStore(*bookFile) }

// commit persists the next book snapshot and prints a confirmation.
// A save failure is reported on stderr; the previous snapshot on disk
// is intact either way.
func commit(s *caja.Store, b *caja.Book, confirmation string) subcommands.ExitStatus {
	if err := s.Save(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book %q: %v\n", s.Path(), err)
		fmt.Fprintln(os.Stderr, "The change was not persisted; the previous snapshot is intact.")
		return subcommands.ExitFailure
	}
	fmt.Println(confirmation)
	return subcommands.ExitSuccess
}

// parseAmount parses an -amount flag value into an exact Money.
func parseAmount(s string) (caja.Money, error) {
	if s == "" {
		return caja.Money{}, fmt.Errorf("missing -amount")
	}
	m, err := caja.ParseMoney(s)
	if err != nil {
		return caja.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return m, nil
}

// findClient resolves a flag value against the client list by id or
// exact name. The engine itself resolves ids only; name lookup is a
// convenience of this layer.
func findClient(b *caja.Book, arg string) string {
	for _, c := range b.Clients {
		if c.ID == arg || c.Name == arg {
			return c.ID
		}
	}
	return arg
}

// findSupplier is the supplier-side counterpart of findClient.
func findSupplier(b *caja.Book, arg string) string {
	for _, s := range b.Suppliers {
		if s.ID == arg || s.Name == arg {
			return s.ID
		}
	}
	return arg
}

// printMarkdown renders markdown for the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
