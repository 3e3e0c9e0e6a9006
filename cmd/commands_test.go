package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/mfuentes/caja"
)

// useTempBook points the global book file at a throwaway path for the
// duration of a test.
func useTempBook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caja.json")
	prev := *bookFile
	*bookFile = path
	t.Cleanup(func() { *bookFile = prev })
	return path
}

// run parses args into the command and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), fs)
}

func TestMovementCommandsPersistTheBook(t *testing.T) {
	path := useTempBook(t)

	if status := run(t, &addClientCmd{}, "-name", "Acme"); status != subcommands.ExitSuccess {
		t.Fatalf("add-client exited %v", status)
	}
	if status := run(t, &saleCmd{}, "-c", "Acme", "-amount", "1000", "-m", "inv1"); status != subcommands.ExitSuccess {
		t.Fatalf("sale exited %v", status)
	}
	if status := run(t, &collectCmd{}, "-c", "Acme", "-into", "EFECTIVO", "-amount", "400"); status != subcommands.ExitSuccess {
		t.Fatalf("collect exited %v", status)
	}
	if status := run(t, &transferCmd{}, "-from", "EFECTIVO", "-to", "CHEQUES", "-amount", "400"); status != subcommands.ExitSuccess {
		t.Fatalf("transfer exited %v", status)
	}

	book := caja.NewStore(path).Load()
	if got := book.Client(book.Clients[0].ID).Balance; !got.Equal(caja.M(600)) {
		t.Errorf("client balance = %s, want %s", got, caja.M(600))
	}
	if got := book.Account(caja.Efectivo).Balance; !got.IsZero() {
		t.Errorf("EFECTIVO balance = %s, want zero", got)
	}
	if got := book.Account(caja.Cheques).Balance; !got.Equal(caja.M(400)) {
		t.Errorf("CHEQUES balance = %s, want %s", got, caja.M(400))
	}
	if got := len(book.Transactions); got != 3 {
		t.Errorf("transaction count = %d, want 3", got)
	}
}

func TestTransferCommandRejectsUnknownAccount(t *testing.T) {
	useTempBook(t)
	if status := run(t, &transferCmd{}, "-from", "CRIPTO", "-to", "CHEQUES", "-amount", "10"); status != subcommands.ExitUsageError {
		t.Errorf("transfer with unknown account exited %v, want usage error", status)
	}
}

func TestSaleCommandRejectsBadAmount(t *testing.T) {
	useTempBook(t)
	if status := run(t, &saleCmd{}, "-c", "Acme", "-amount", "diez"); status != subcommands.ExitUsageError {
		t.Errorf("sale with bad amount exited %v, want usage error", status)
	}
}
