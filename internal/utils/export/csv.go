package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	"github.com/SscSPs/recon_workbench/internal/utils"
)

// Header lists the export columns in order.
var Header = []string{"accountId", "date", "transId", "amount", "description", "type", "reference"}

// MarshalTransaction converts a transaction to an export row.
func MarshalTransaction(txn domain.Transaction) []string {
	return []string{
		txn.AccountID,
		txn.Date.UTC().Format(domain.DateLayout),
		txn.TransID,
		utils.FormatAmount(txn.Amount),
		txn.Description,
		string(txn.Type),
		txn.Reference,
	}
}

// WriteTransactionsCSV writes txns to w with a header row. Fields containing the
// delimiter, quotes or line breaks are quoted and embedded quotes are doubled.
func WriteTransactionsCSV(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
