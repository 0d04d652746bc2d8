package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

func TestRender(t *testing.T) {
	att := domain.Attachment{
		ID:     "att-1",
		Kind:   domain.KindSalesInvoice,
		Amount: decimal.NewFromFloat(120.50),
	}
	r := &domain.ReconciliationReport{
		RunID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		GeneratedAt: time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
		TransactionMatches: []domain.TransactionMatch{
			{
				Transaction: domain.Transaction{
					ID:     "tx-1",
					Amount: decimal.NewFromFloat(120.50),
					Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				},
				Attachment: &att,
			},
			{
				Transaction: domain.Transaction{
					ID:     "tx-2",
					Amount: decimal.NewFromInt(-10),
					Date:   time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		AttachmentMatches: []domain.AttachmentMatch{
			{
				Attachment:  att,
				Transaction: &domain.Transaction{ID: "tx-1"},
			},
		},
		Expectations: []domain.ExpectationResult{
			{
				Expected: domain.ExpectedPair{TransactionID: "tx-1", AttachmentID: "att-1"},
				ActualID: "att-1",
				Passed:   true,
			},
			{
				Expected: domain.ExpectedPair{TransactionID: "tx-2", AttachmentID: "att-9"},
				ActualID: "",
				Passed:   false,
			},
		},
		Summary: domain.ReconciliationSummary{
			TotalTransactions:     2,
			TotalAttachments:      1,
			MatchedTransactions:   1,
			MatchedAttachments:    1,
			UnmatchedTransactions: 1,
			ExpectationsEvaluated: 2,
			ExpectationsPassed:    1,
			ExpectationsFailed:    1,
		},
	}

	out := Render(r)

	for _, want := range []string{
		"Reconciliation run 01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"tx-1",
		"att-1",
		"120.50",
		"-10.00",
		"PASS",
		"FAIL",
		"transactions: 2 total, 1 matched, 1 unmatched",
		"expectations: 2 evaluated, 1 passed, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWithoutExpectations(t *testing.T) {
	r := &domain.ReconciliationReport{
		RunID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		GeneratedAt: time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
		Summary: domain.ReconciliationSummary{
			TotalTransactions: 0,
		},
	}

	out := Render(r)

	if strings.Contains(out, "Expectations") {
		t.Errorf("report should omit expectations section:\n%s", out)
	}
	if strings.Contains(out, "expectations:") {
		t.Errorf("summary should omit expectations line:\n%s", out)
	}
}
