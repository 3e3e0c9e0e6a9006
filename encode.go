package caja

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeBook serializes the whole aggregate as a single JSON
// document. Key order within each record is canonical (see
// jsonObjectWriter), so saving an unchanged book produces identical
// bytes.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("could not encode book: %w", err)
	}
	return nil
}

// DecodeBook reads a previously encoded aggregate. Missing lists are
// normalized to empty ones, and a snapshot saved without accounts
// gets the default zero-balance set, so a decoded book is always
// ready to operate on.
func DecodeBook(r io.Reader) (*Book, error) {
	var b Book
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("could not decode book: %w", err)
	}
	if len(b.Accounts) == 0 {
		b.Accounts = defaultAccounts()
	}
	if b.Clients == nil {
		b.Clients = []Entity{}
	}
	if b.Suppliers == nil {
		b.Suppliers = []Entity{}
	}
	if b.Transactions == nil {
		b.Transactions = []Transaction{}
	}
	return &b, nil
}
