package renderer

import (
	"fmt"

	"github.com/mfuentes/caja"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx caja.Transaction) string {
	switch tx.Type {
	case caja.TxTransfer:
		return fmt.Sprintf("Transferencia de %s a %s", tx.Source, tx.Destination)
	case caja.TxIncome:
		return fmt.Sprintf("Cobro de %s en %s", tx.Source, tx.Destination)
	case caja.TxExpense:
		return fmt.Sprintf("Pago a %s desde %s", tx.Destination, tx.Source)
	case caja.TxDebtIncrease:
		return fmt.Sprintf("%s (%s)", tx.Description, tx.Source)
	case caja.TxReceivableIncrease:
		return fmt.Sprintf("%s (%s)", tx.Description, tx.Destination)
	default:
		return string(tx.Type)
	}
}
