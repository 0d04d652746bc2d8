// Package file implements the usecase repositories on top of read-only
// JSON fixture files. Records are decoded and validated once at
// construction; matching is a non-goal for persistence, so fixture files
// are the only storage this system knows.
package file

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

const dateLayout = "2006-01-02"

type transactionRecord struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Reference string          `json:"reference,omitempty"`
	Contact   string          `json:"contact,omitempty"`
}

type attachmentRecord struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference,omitempty"`
	InvoicingDate string          `json:"invoicing_date,omitempty"`
	DueDate       string          `json:"due_date,omitempty"`
	ReceivingDate string          `json:"receiving_date,omitempty"`
	Issuer        string          `json:"issuer,omitempty"`
	Recipient     string          `json:"recipient,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
}

type expectedPairRecord struct {
	TransactionID string `json:"transaction_id"`
	AttachmentID  string `json:"attachment_id,omitempty"`
}

func (r transactionRecord) toDomain() (domain.Transaction, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}

	tx := domain.Transaction{
		ID:        r.ID,
		Amount:    r.Amount,
		Date:      date,
		Reference: r.Reference,
		Contact:   r.Contact,
	}
	if err := domain.ValidateTransaction(tx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

func (r attachmentRecord) toDomain() (domain.Attachment, error) {
	att := domain.Attachment{
		ID:        r.ID,
		Kind:      domain.AttachmentKind(r.Kind),
		Amount:    r.Amount,
		Reference: r.Reference,
		Issuer:    r.Issuer,
		Recipient: r.Recipient,
		Supplier:  r.Supplier,
	}

	var err error
	if att.InvoicingDate, err = parseDate(r.InvoicingDate); err != nil {
		return domain.Attachment{}, fmt.Errorf("attachment %s: %w", r.ID, err)
	}
	if att.DueDate, err = parseDate(r.DueDate); err != nil {
		return domain.Attachment{}, fmt.Errorf("attachment %s: %w", r.ID, err)
	}
	if att.ReceivingDate, err = parseDate(r.ReceivingDate); err != nil {
		return domain.Attachment{}, fmt.Errorf("attachment %s: %w", r.ID, err)
	}

	if err := domain.ValidateAttachment(att); err != nil {
		return domain.Attachment{}, err
	}
	return att, nil
}

// parseDate parses a YYYY-MM-DD fixture date. Empty means absent and maps
// to the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, s)
	}
	return t, nil
}
