// Package renderer produces the markdown reports of the book: the
// account table, the client and supplier tables, the transaction
// history and the dashboard summary. It renders view models through
// embedded text templates; printing is the caller's concern.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/mfuentes/caja"
)

//go:embed templates/*.md
var templates embed.FS

// Accounts renders the cash account balances to a markdown string.
func Accounts(b *caja.Book) string {
	partials := map[string]string{
		"accounts_table": "accounts_table.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, NewAccountsView(b))
}

// Clients renders the client list with its receivable total.
func Clients(b *caja.Book) string {
	partials := map[string]string{
		"entity_table": "entity_table.md",
	}
	return renderTemplate("clients", "entities.md", partials, NewClientsView(b))
}

// Suppliers renders the supplier list with its payable total.
func Suppliers(b *caja.Book) string {
	partials := map[string]string{
		"entity_table": "entity_table.md",
	}
	return renderTemplate("suppliers", "entities.md", partials, NewSuppliersView(b))
}

// History renders a transaction list, newest first, to a markdown
// string.
func History(txs []caja.Transaction) string {
	partials := map[string]string{
		"history_table": "history_table.md",
	}
	return renderTemplate("history", "history.md", partials, NewHistoryView(txs))
}

// Summary renders the dashboard: cash balances, receivable and
// payable totals, and the latest movements.
func Summary(b *caja.Book) string {
	partials := map[string]string{
		"accounts_table": "accounts_table.md",
		"history_table":  "history_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, NewSummaryView(b))
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile("templates/" + file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
