package caja

import "fmt"

// This file holds the seven state transitions of the book. Each one
// is a pure function of (current book, arguments): it validates,
// clones the book, applies the change and appends exactly one
// transaction describing it. The receiver is never mutated, so a
// failed operation leaves the current snapshot untouched.

// TransferInternal moves amount from one cash account to another and
// records a TRANSFER. The sum of all account balances is unchanged.
func (b *Book) TransferInternal(from, to AccountID, amount Money) (*Book, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("cannot transfer from account %q to itself", from)
	}
	next := b.clone()
	src := next.Account(from)
	if src == nil {
		return nil, fmt.Errorf("unknown account %q", from)
	}
	dst := next.Account(to)
	if dst == nil {
		return nil, fmt.Errorf("unknown account %q", to)
	}
	src.Balance = src.Balance.Sub(amount)
	dst.Balance = dst.Balance.Add(amount)
	next.prepend(newTransaction(TxTransfer, amount, "Transferencia Interna", string(from), string(to)))
	return next, nil
}

// AddClient appends a new zero-balance client. Adding an entity does
// not record a transaction.
func (b *Book) AddClient(name string) (*Book, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	next := b.clone()
	next.Clients = append(next.Clients, Entity{ID: newID(), Name: name})
	return next, nil
}

// RegisterSale increases a client's receivable and records a
// RECEIVABLE_INCREASE against the client's name. No cash moves: the
// sale is recorded on an accrual basis.
//
// An unresolved client id leaves every balance untouched but still
// logs the movement against the placeholder name.
func (b *Book) RegisterSale(clientID string, amount Money, description string) (*Book, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	next := b.clone()
	name := fallbackClientName
	if c := next.Client(clientID); c != nil {
		c.Balance = c.Balance.Add(amount)
		name = c.Name
	}
	next.prepend(newTransaction(TxReceivableIncrease, amount, "Venta: "+description, "", name))
	return next, nil
}

// CollectPayment settles part of a client's receivable into a cash
// account and records an INCOME from the client's name into the
// account.
func (b *Book) CollectPayment(clientID string, account AccountID, amount Money) (*Book, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	next := b.clone()
	acc := next.Account(account)
	if acc == nil {
		return nil, fmt.Errorf("unknown account %q", account)
	}
	name := fallbackClientName
	if c := next.Client(clientID); c != nil {
		c.Balance = c.Balance.Sub(amount)
		name = c.Name
	}
	acc.Balance = acc.Balance.Add(amount)
	next.prepend(newTransaction(TxIncome, amount, "Cobro a Cliente", name, string(account)))
	return next, nil
}

// AddSupplier appends a new zero-balance supplier.
func (b *Book) AddSupplier(name string) (*Book, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	next := b.clone()
	next.Suppliers = append(next.Suppliers, Entity{ID: newID(), Name: name})
	return next, nil
}

// RegisterPurchase increases a supplier's payable and records a
// DEBT_INCREASE from the supplier's name. No cash moves.
func (b *Book) RegisterPurchase(supplierID string, amount Money, description string) (*Book, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	next := b.clone()
	name := fallbackSupplierName
	if s := next.Supplier(supplierID); s != nil {
		s.Balance = s.Balance.Add(amount)
		name = s.Name
	}
	next.prepend(newTransaction(TxDebtIncrease, amount, "Factura: "+description, name, ""))
	return next, nil
}

// PaySupplier settles part of a supplier's payable out of a cash
// account and records an EXPENSE from the account to the supplier's
// name.
func (b *Book) PaySupplier(supplierID string, account AccountID, amount Money) (*Book, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	next := b.clone()
	acc := next.Account(account)
	if acc == nil {
		return nil, fmt.Errorf("unknown account %q", account)
	}
	name := fallbackSupplierName
	if s := next.Supplier(supplierID); s != nil {
		s.Balance = s.Balance.Sub(amount)
		name = s.Name
	}
	acc.Balance = acc.Balance.Sub(amount)
	next.prepend(newTransaction(TxExpense, amount, "Pago a Proveedor", string(account), name))
	return next, nil
}
