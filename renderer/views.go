package renderer

import "github.com/mfuentes/caja"

// recentMovements is how many transactions the summary shows.
const recentMovements = 5

// AccountRow is one line of the account table.
type AccountRow struct {
	Label   string
	Balance string
}

// AccountsView feeds the account table template.
type AccountsView struct {
	Rows      []AccountRow
	TotalCash string
}

// NewAccountsView builds the account table from the book.
func NewAccountsView(b *caja.Book) AccountsView {
	v := AccountsView{TotalCash: b.TotalCash().String()}
	for _, acc := range b.Accounts {
		v.Rows = append(v.Rows, AccountRow{Label: acc.Label, Balance: acc.Balance.String()})
	}
	return v
}

// EntityRow is one line of a client or supplier table.
type EntityRow struct {
	Name    string
	Balance string
}

// EntitiesView feeds the entity table template for either list.
type EntitiesView struct {
	Title      string
	Rows       []EntityRow
	TotalLabel string
	Total      string
}

// NewClientsView builds the client table from the book.
func NewClientsView(b *caja.Book) EntitiesView {
	return newEntitiesView("Clientes", "Total por cobrar", b.Clients, b.TotalReceivable())
}

// NewSuppliersView builds the supplier table from the book.
func NewSuppliersView(b *caja.Book) EntitiesView {
	return newEntitiesView("Proveedores", "Total por pagar", b.Suppliers, b.TotalPayable())
}

func newEntitiesView(title, totalLabel string, entities []caja.Entity, total caja.Money) EntitiesView {
	v := EntitiesView{Title: title, TotalLabel: totalLabel, Total: total.String()}
	for _, e := range entities {
		v.Rows = append(v.Rows, EntityRow{Name: e.Name, Balance: e.Balance.String()})
	}
	return v
}

// HistoryRow is one line of the movement table.
type HistoryRow struct {
	Date     string
	Movement string
	Amount   string
}

// HistoryView feeds the movement table template.
type HistoryView struct {
	Rows []HistoryRow
}

// NewHistoryView builds the movement table from a transaction list,
// which is expected newest first.
func NewHistoryView(txs []caja.Transaction) HistoryView {
	var v HistoryView
	for _, tx := range txs {
		v.Rows = append(v.Rows, HistoryRow{
			Date:     tx.Date.Format("02/01/2006 15:04"),
			Movement: Transaction(tx),
			Amount:   tx.Amount.String(),
		})
	}
	return v
}

// SummaryView feeds the dashboard template.
type SummaryView struct {
	Accounts        AccountsView
	TotalReceivable string
	TotalPayable    string
	Recent          HistoryView
}

// NewSummaryView builds the dashboard from the book.
func NewSummaryView(b *caja.Book) SummaryView {
	recent := b.Transactions
	if len(recent) > recentMovements {
		recent = recent[:recentMovements]
	}
	return SummaryView{
		Accounts:        NewAccountsView(b),
		TotalReceivable: b.TotalReceivable().String(),
		TotalPayable:    b.TotalPayable().String(),
		Recent:          NewHistoryView(recent),
	}
}
