package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TransactionResponse represents a bank transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Reference string          `json:"reference,omitempty"`
	Contact   string          `json:"contact,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:        t.ID,
		Amount:    t.Amount,
		Date:      formatDate(t.Date),
		Reference: t.Reference,
		Contact:   t.Contact,
	}
}

// AttachmentResponse represents an attachment in API responses.
type AttachmentResponse struct {
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

// AttachmentFromDomain converts a domain attachment to a response.
func AttachmentFromDomain(a *domain.Attachment) *AttachmentResponse {
	if a == nil {
		return nil
	}
	return &AttachmentResponse{
		ID:            a.ID,
		Kind:          string(a.Kind),
		Amount:        a.Amount,
		Reference:     a.Reference,
		InvoicingDate: formatDate(a.InvoicingDate),
		DueDate:       formatDate(a.DueDate),
		ReceivingDate: formatDate(a.ReceivingDate),
		Issuer:        a.Issuer,
		Recipient:     a.Recipient,
		Supplier:      a.Supplier,
	}
}

// MatchAttachmentResponse is the answer to a find-attachment query. Match
// is null for a confident no-match.
type MatchAttachmentResponse struct {
	Match *AttachmentResponse `json:"match"`
}

// MatchTransactionResponse is the answer to a find-transaction query.
type MatchTransactionResponse struct {
	Match *TransactionResponse `json:"match"`
}

// TransactionMatchResponse is one row of the reconciliation report.
type TransactionMatchResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	Attachment  *AttachmentResponse  `json:"attachment"`
}

// AttachmentMatchResponse is one row of the reconciliation report.
type AttachmentMatchResponse struct {
	Attachment  *AttachmentResponse  `json:"attachment"`
	Transaction *TransactionResponse `json:"transaction"`
}

// ExpectationResponse is one graded expectation of the report.
type ExpectationResponse struct {
	TransactionID string `json:"transaction_id"`
	ExpectedID    string `json:"expected_attachment_id,omitempty"`
	ActualID      string `json:"actual_attachment_id,omitempty"`
	Passed        bool   `json:"passed"`
}

// SummaryResponse aggregates the report counts.
type SummaryResponse struct {
	TotalTransactions     int `json:"total_transactions"`
	TotalAttachments      int `json:"total_attachments"`
	MatchedTransactions   int `json:"matched_transactions"`
	MatchedAttachments    int `json:"matched_attachments"`
	UnmatchedTransactions int `json:"unmatched_transactions"`
	UnmatchedAttachments  int `json:"unmatched_attachments"`
	ExpectationsEvaluated int `json:"expectations_evaluated,omitempty"`
	ExpectationsPassed    int `json:"expectations_passed,omitempty"`
	ExpectationsFailed    int `json:"expectations_failed,omitempty"`
}

// ReportResponse represents a full reconciliation run.
type ReportResponse struct {
	RunID              string                     `json:"run_id"`
	GeneratedAt        time.Time                  `json:"generated_at"`
	TransactionMatches []TransactionMatchResponse `json:"transaction_matches"`
	AttachmentMatches  []AttachmentMatchResponse  `json:"attachment_matches"`
	Expectations       []ExpectationResponse      `json:"expectations,omitempty"`
	Summary            SummaryResponse            `json:"summary"`
}

// ReportFromDomain converts a domain reconciliation report to a response.
func ReportFromDomain(r *domain.ReconciliationReport) *ReportResponse {
	resp := &ReportResponse{
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt,
		Summary: SummaryResponse{
			TotalTransactions:     r.Summary.TotalTransactions,
			TotalAttachments:      r.Summary.TotalAttachments,
			MatchedTransactions:   r.Summary.MatchedTransactions,
			MatchedAttachments:    r.Summary.MatchedAttachments,
			UnmatchedTransactions: r.Summary.UnmatchedTransactions,
			UnmatchedAttachments:  r.Summary.UnmatchedAttachments,
			ExpectationsEvaluated: r.Summary.ExpectationsEvaluated,
			ExpectationsPassed:    r.Summary.ExpectationsPassed,
			ExpectationsFailed:    r.Summary.ExpectationsFailed,
		},
	}

	for _, m := range r.TransactionMatches {
		tx := m.Transaction
		resp.TransactionMatches = append(resp.TransactionMatches, TransactionMatchResponse{
			Transaction: TransactionFromDomain(&tx),
			Attachment:  AttachmentFromDomain(m.Attachment),
		})
	}
	for _, m := range r.AttachmentMatches {
		att := m.Attachment
		resp.AttachmentMatches = append(resp.AttachmentMatches, AttachmentMatchResponse{
			Attachment:  AttachmentFromDomain(&att),
			Transaction: TransactionFromDomain(m.Transaction),
		})
	}
	for _, e := range r.Expectations {
		resp.Expectations = append(resp.Expectations, ExpectationResponse{
			TransactionID: e.Expected.TransactionID,
			ExpectedID:    e.Expected.AttachmentID,
			ActualID:      e.ActualID,
			Passed:        e.Passed,
		})
	}

	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
