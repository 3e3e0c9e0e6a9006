package caja

import "fmt"

// AccountID identifies one of the fixed cash-holding buckets.
type AccountID string

// The account set is closed: these three buckets exist from first run
// and are never added to, renamed or deleted.
const (
	Efectivo       AccountID = "EFECTIVO"
	Cheques        AccountID = "CHEQUES"
	Transferencias AccountID = "TRANSFERENCIAS"
)

// ParseAccountID parses a string into an AccountID.
func ParseAccountID(s string) (AccountID, error) {
	switch AccountID(s) {
	case Efectivo:
		return Efectivo, nil
	case Cheques:
		return Cheques, nil
	case Transferencias:
		return Transferencias, nil
	default:
		return "", fmt.Errorf("unknown account id: %q", s)
	}
}

// Account is one of the cash buckets. Its balance is signed and may
// go negative.
type Account struct {
	ID      AccountID `json:"id"`
	Label   string    `json:"label"`
	Balance Money     `json:"balance"`
}

// defaultAccounts returns the three zero-balance accounts created at
// first run.
func defaultAccounts() []Account {
	return []Account{
		{ID: Efectivo, Label: "Caja Efectivo"},
		{ID: Cheques, Label: "Caja Cheques"},
		{ID: Transferencias, Label: "Caja Transferencias"},
	}
}
