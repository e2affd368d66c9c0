package utils

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// FormatAmount renders an amount with the fixed ledger precision.
// Example: 12.3 returns "12.30", 1500 returns "1500.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(domain.AmountScale)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
