package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

func TestMatchTransactionRequest_ToDomain(t *testing.T) {
	req := MatchTransactionRequest{
		ID:        "tx-1",
		Amount:    decimal.NewFromFloat(-45.90),
		Date:      "2024-03-15",
		Reference: "RF123",
		Contact:   "Paper Mill Oy",
	}

	tx, err := req.ToDomain()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID != "tx-1" || tx.Reference != "RF123" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if !tx.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", tx.Date)
	}
}

func TestMatchTransactionRequest_ToDomain_BadDate(t *testing.T) {
	req := MatchTransactionRequest{
		ID:     "tx-1",
		Amount: decimal.NewFromInt(10),
		Date:   "March 15, 2024",
	}

	if _, err := req.ToDomain(); !errors.Is(err, domain.ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestMatchTransactionRequest_ToDomain_MissingDate(t *testing.T) {
	req := MatchTransactionRequest{
		ID:     "tx-1",
		Amount: decimal.NewFromInt(10),
	}

	if _, err := req.ToDomain(); !errors.Is(err, domain.ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestMatchAttachmentRequest_ToDomain(t *testing.T) {
	req := MatchAttachmentRequest{
		ID:            "att-1",
		Kind:          "receipt",
		Amount:        decimal.NewFromFloat(12.40),
		ReceivingDate: "2024-02-01",
		Supplier:      "Corner Cafe",
	}

	att, err := req.ToDomain()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.Kind != domain.KindReceipt || att.Supplier != "Corner Cafe" {
		t.Fatalf("unexpected attachment: %+v", att)
	}
}

func TestMatchAttachmentRequest_ToDomain_InvalidParties(t *testing.T) {
	req := MatchAttachmentRequest{
		ID:       "att-1",
		Kind:     "sales_invoice",
		Amount:   decimal.NewFromInt(100),
		Supplier: "Corner Cafe",
	}

	if _, err := req.ToDomain(); !errors.Is(err, domain.ErrInvalidParties) {
		t.Fatalf("expected ErrInvalidParties, got %v", err)
	}
}
