package caja

import (
	"time"
)

// TxType is a typed string identifying the kind of financial event a
// transaction records. The values are part of the persisted layout.
type TxType string

const (
	// TxTransfer moves cash between two accounts; total cash is unchanged.
	TxTransfer TxType = "TRANSFER"
	// TxIncome is a collection from a client into an account.
	TxIncome TxType = "INCOME"
	// TxExpense is a payment to a supplier out of an account.
	TxExpense TxType = "EXPENSE"
	// TxDebtIncrease records a purchase on credit: the payable grows,
	// no cash moves.
	TxDebtIncrease TxType = "DEBT_INCREASE"
	// TxReceivableIncrease records a sale on credit: the receivable
	// grows, no cash moves.
	TxReceivableIncrease TxType = "RECEIVABLE_INCREASE"
)

// IsCashMovement reports whether this type moves cash, as opposed to
// the accrual types that only change a receivable or payable.
func (t TxType) IsCashMovement() bool {
	return t == TxTransfer || t == TxIncome || t == TxExpense
}

// Transaction is an immutable, append-only record of one financial
// event. Source and Destination hold either an account id or an
// entity display name, interpreted by Type; the name is captured at
// append time and never rewritten.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        TxType    `json:"type"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description"`
	Source      string    `json:"source,omitempty"`
	Destination string    `json:"destination,omitempty"`
}

// now is the transaction clock. Tests replace it to get
// deterministic dates.
var now = time.Now

// newTransaction stamps a fresh record with a generated id and the
// current time.
func newTransaction(typ TxType, amount Money, description, source, destination string) Transaction {
	return Transaction{
		ID:          newID(),
		Date:        now(),
		Type:        typ,
		Amount:      amount,
		Description: description,
		Source:      source,
		Destination: destination,
	}
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping the persisted field order canonical.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("description", t.Description)
	w.Optional("source", t.Source)
	w.Optional("destination", t.Destination)
	return w.MarshalJSON()
}
