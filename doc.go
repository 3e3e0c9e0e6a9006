// Package caja implements a small single-user bookkeeping ledger:
// three fixed cash accounts, client receivables, supplier payables,
// and an append-only transaction log, persisted whole to a single
// local JSON file.
//
// The package owns the canonical state (the Book aggregate) and its
// state transitions. All seven operations are pure: they take the
// current book and return the next one, leaving the receiver
// untouched, so persistence is a separate and explicit step through
// Store.
package caja
