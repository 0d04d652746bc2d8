package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttachmentKind identifies the kind of supporting document.
type AttachmentKind string

const (
	KindSalesInvoice    AttachmentKind = "sales_invoice"
	KindPurchaseInvoice AttachmentKind = "purchase_invoice"
	KindReceipt         AttachmentKind = "receipt"
)

// Valid reports whether the kind is one of the known attachment kinds.
func (k AttachmentKind) Valid() bool {
	switch k {
	case KindSalesInvoice, KindPurchaseInvoice, KindReceipt:
		return true
	}
	return false
}

// Attachment represents one supporting document (invoice or receipt).
// Amount is always unsigned; direction is implied by Kind. Invoices carry
// Issuer and Recipient, receipts carry Supplier. A zero time.Time means the
// date is absent.
type Attachment struct {
	ID            string
	Kind          AttachmentKind
	Amount        decimal.Decimal
	Reference     string
	InvoicingDate time.Time
	DueDate       time.Time
	ReceivingDate time.Time
	Issuer        string
	Recipient     string
	Supplier      string
}

// Dates returns the dates relevant for payment-date comparison: invoicing
// and due dates for invoices, receiving date for receipts. Absent dates are
// omitted.
func (a Attachment) Dates() []time.Time {
	var dates []time.Time
	switch a.Kind {
	case KindSalesInvoice, KindPurchaseInvoice:
		if !a.InvoicingDate.IsZero() {
			dates = append(dates, a.InvoicingDate)
		}
		if !a.DueDate.IsZero() {
			dates = append(dates, a.DueDate)
		}
	case KindReceipt:
		if !a.ReceivingDate.IsZero() {
			dates = append(dates, a.ReceivingDate)
		}
	}
	return dates
}
