package matching

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

// NamesMatch reports whether two counterparty names refer to the same
// party. Comparison is case-insensitive and requires one normalized name to
// contain the other in full, which tolerates legal-form suffixes ("Tmi",
// "Oy", "EMEA") while rejecting names that merely resemble each other.
// Absent names never match; missing data is handled by the scorer, not
// here.
func NamesMatch(a, b string) bool {
	na := NormalizeName(a)
	nb := NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// amountsCompatible compares the transaction amount magnitude against the
// attachment amount within tolerance. The tolerance absorbs representation
// noise, not business differences.
func amountsCompatible(txAmount, attAmount, tolerance decimal.Decimal) bool {
	return txAmount.Abs().Sub(attAmount.Abs()).Abs().LessThan(tolerance)
}

// directionCompatible checks the sign of the transaction against the
// attachment kind: outgoing money can only settle purchase invoices and
// receipts, incoming money only sales invoices.
func directionCompatible(tx domain.Transaction, kind domain.AttachmentKind) bool {
	if tx.Outgoing() {
		return kind == domain.KindPurchaseInvoice || kind == domain.KindReceipt
	}
	return kind == domain.KindSalesInvoice
}

// dateWithin reports whether any candidate date lies within toleranceDays
// of the transaction date. No candidate dates means no date signal.
func dateWithin(txDate time.Time, dates []time.Time, toleranceDays int) bool {
	for _, d := range dates {
		if daysBetween(txDate, d) <= toleranceDays {
			return true
		}
	}
	return false
}

func daysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
