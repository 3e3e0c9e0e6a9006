package caja

import "slices"

// Book is the full application state: the three cash accounts, the
// client and supplier lists, and the transaction log, newest first.
// It is the unit of persistence: the aggregate is serialized whole
// and deserialized whole.
type Book struct {
	Accounts     []Account     `json:"accounts"`
	Clients      []Entity      `json:"clients"`
	Suppliers    []Entity      `json:"suppliers"`
	Transactions []Transaction `json:"transactions"`
}

// NewBook returns the default state: the three zero-balance accounts
// and empty client, supplier and transaction lists.
func NewBook() *Book {
	return &Book{
		Accounts:     defaultAccounts(),
		Clients:      []Entity{},
		Suppliers:    []Entity{},
		Transactions: []Transaction{},
	}
}

// Account returns the account with the given id, or nil if the id is
// not one of the fixed buckets.
func (b *Book) Account(id AccountID) *Account {
	for i := range b.Accounts {
		if b.Accounts[i].ID == id {
			return &b.Accounts[i]
		}
	}
	return nil
}

// Client returns the client with the given id, or nil.
func (b *Book) Client(id string) *Entity {
	return findEntity(b.Clients, id)
}

// Supplier returns the supplier with the given id, or nil.
func (b *Book) Supplier(id string) *Entity {
	return findEntity(b.Suppliers, id)
}

func findEntity(entities []Entity, id string) *Entity {
	for i := range entities {
		if entities[i].ID == id {
			return &entities[i]
		}
	}
	return nil
}

// TotalCash returns the sum of the three account balances.
func (b *Book) TotalCash() Money {
	var total Money
	for _, acc := range b.Accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// TotalReceivable returns the sum of all client balances.
func (b *Book) TotalReceivable() Money {
	return totalBalance(b.Clients)
}

// TotalPayable returns the sum of all supplier balances.
func (b *Book) TotalPayable() Money {
	return totalBalance(b.Suppliers)
}

func totalBalance(entities []Entity) Money {
	var total Money
	for _, e := range entities {
		total = total.Add(e.Balance)
	}
	return total
}

// clone returns a copy of the book that shares nothing mutable with
// the receiver. Operations work on the clone so the current snapshot
// is never modified in place.
func (b *Book) clone() *Book {
	return &Book{
		Accounts:     slices.Clone(b.Accounts),
		Clients:      slices.Clone(b.Clients),
		Suppliers:    slices.Clone(b.Suppliers),
		Transactions: slices.Clone(b.Transactions),
	}
}

// prepend records a transaction at the head of the log: the log is
// ordered newest first.
func (b *Book) prepend(tx Transaction) {
	b.Transactions = append([]Transaction{tx}, b.Transactions...)
}
