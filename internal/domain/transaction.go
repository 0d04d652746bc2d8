package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one bank transaction as loaded from the bank
// statement. The sign of Amount encodes direction: negative is an outgoing
// payment, positive is an incoming receipt.
type Transaction struct {
	ID        string
	Amount    decimal.Decimal
	Date      time.Time
	Reference string // "" when the bank supplied no reference
	Contact   string // "" when the bank supplied no counterparty name
}

// Outgoing reports whether the transaction is an outgoing payment.
func (t Transaction) Outgoing() bool {
	return t.Amount.IsNegative()
}
