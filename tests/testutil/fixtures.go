// Package testutil writes reconciliation fixture files for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Transaction is the JSON shape of a bank transaction fixture record.
type Transaction struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Reference string `json:"reference,omitempty"`
	Contact   string `json:"contact,omitempty"`
}

// Attachment is the JSON shape of an attachment fixture record.
type Attachment struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Reference     string `json:"reference,omitempty"`
	InvoicingDate string `json:"invoicing_date,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	ReceivingDate string `json:"receiving_date,omitempty"`
	Issuer        string `json:"issuer,omitempty"`
	Recipient     string `json:"recipient,omitempty"`
	Supplier      string `json:"supplier,omitempty"`
}

// ExpectedPair is the JSON shape of an expected-pairs fixture record. An
// empty AttachmentID means the transaction is expected to stay unmatched.
type ExpectedPair struct {
	TransactionID string `json:"transaction_id"`
	AttachmentID  string `json:"attachment_id,omitempty"`
}

// WriteFixture marshals records to a JSON file inside dir and returns the
// file path.
func WriteFixture(t *testing.T, dir, name string, records any) string {
	t.Helper()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal fixture %s: %v", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}

	return path
}
