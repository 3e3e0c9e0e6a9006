package caja

import "github.com/google/uuid"

// Entity is a client or a supplier. The sign convention depends on
// which list it lives in: a positive client balance is money the
// client owes the business (receivable), a positive supplier balance
// is money the business owes the supplier (payable).
type Entity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance Money  `json:"balance"`
}

// Placeholder counterpart names recorded when an operation references
// an entity id that does not resolve. This mirrors the historical
// behavior of the book: the movement is still logged, against a
// generic name.
const (
	fallbackClientName   = "Cliente"
	fallbackSupplierName = "Proveedor"
)

func newID() string { return uuid.NewString() }
