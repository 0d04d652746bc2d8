package domain

import (
	"fmt"
)

// ValidateTransaction checks that a loaded transaction carries the fields
// the matcher cannot degrade gracefully without. Reference and contact are
// optional; id, amount, and date are not.
func ValidateTransaction(t Transaction) error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction", ErrMissingID)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction %s", ErrMissingDate, t.ID)
	}

	return nil
}

// ValidateAttachment checks that a loaded attachment is well formed: a
// known kind, a non-negative amount, and party fields consistent with the
// kind (invoices carry issuer/recipient, receipts carry supplier).
func ValidateAttachment(a Attachment) error {
	if a.ID == "" {
		return fmt.Errorf("%w: attachment", ErrMissingID)
	}

	if !a.Kind.Valid() {
		return fmt.Errorf("%w: %q on attachment %s", ErrUnknownKind, a.Kind, a.ID)
	}

	if a.Amount.IsNegative() {
		return fmt.Errorf("%w: attachment %s", ErrNegativeAmount, a.ID)
	}

	switch a.Kind {
	case KindSalesInvoice, KindPurchaseInvoice:
		if a.Supplier != "" {
			return fmt.Errorf("%w: invoice %s carries a supplier", ErrInvalidParties, a.ID)
		}
	case KindReceipt:
		if a.Issuer != "" || a.Recipient != "" {
			return fmt.Errorf("%w: receipt %s carries issuer or recipient", ErrInvalidParties, a.ID)
		}
	}

	return nil
}
