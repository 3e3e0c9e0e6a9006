package caja

import (
	"testing"
	"time"
)

// ARS is a helper for tests to create money from a const.
func ARS(v float64) Money { return M(v) }

// fixedClock pins the transaction clock for the duration of a test.
func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

// mustAddClient adds a client and returns the next book and the new
// client's id.
func mustAddClient(t *testing.T, b *Book, name string) (*Book, string) {
	t.Helper()
	next, err := b.AddClient(name)
	if err != nil {
		t.Fatalf("AddClient(%q): %v", name, err)
	}
	return next, next.Clients[len(next.Clients)-1].ID
}

// mustAddSupplier adds a supplier and returns the next book and the
// new supplier's id.
func mustAddSupplier(t *testing.T, b *Book, name string) (*Book, string) {
	t.Helper()
	next, err := b.AddSupplier(name)
	if err != nil {
		t.Fatalf("AddSupplier(%q): %v", name, err)
	}
	return next, next.Suppliers[len(next.Suppliers)-1].ID
}
