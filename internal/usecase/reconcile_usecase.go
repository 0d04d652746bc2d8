package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/bankmatch/internal/domain"
)

// ReconcileUseCase runs the matcher over the full record collections in
// both directions and assembles a reconciliation report.
type ReconcileUseCase struct {
	txRepo       TransactionRepository
	attRepo      AttachmentRepository
	expectedRepo ExpectedPairRepository
	matcher      Matcher
	idGen        IDGenerator
	recorder     MatchRecorder
}

// NewReconcileUseCase creates a new reconcile use case. expectedRepo and
// recorder may be nil.
func NewReconcileUseCase(
	txRepo TransactionRepository,
	attRepo AttachmentRepository,
	expectedRepo ExpectedPairRepository,
	matcher Matcher,
	idGen IDGenerator,
	recorder MatchRecorder,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		txRepo:       txRepo,
		attRepo:      attRepo,
		expectedRepo: expectedRepo,
		matcher:      matcher,
		idGen:        idGen,
		recorder:     recorder,
	}
}

// Run reconciles every transaction against the attachment collection and
// every attachment against the transaction collection. When an
// expected-pairs fixture is configured, each expectation is graded against
// the actual outcome.
func (uc *ReconcileUseCase) Run(ctx context.Context) (*domain.ReconciliationReport, error) {
	start := time.Now()

	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	attachments, err := uc.attRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attachments: %w", err)
	}

	report := &domain.ReconciliationReport{
		RunID:       uc.idGen.Generate(),
		GeneratedAt: time.Now().UTC(),
	}
	report.Summary.TotalTransactions = len(transactions)
	report.Summary.TotalAttachments = len(attachments)

	chosen := make(map[string]string, len(transactions))
	for _, tx := range transactions {
		match := uc.matcher.FindAttachment(tx, attachments)
		uc.record(DirectionFindAttachment, match != nil)
		report.TransactionMatches = append(report.TransactionMatches, domain.TransactionMatch{
			Transaction: tx,
			Attachment:  match,
		})
		if match != nil {
			report.Summary.MatchedTransactions++
			chosen[tx.ID] = match.ID
		} else {
			report.Summary.UnmatchedTransactions++
			chosen[tx.ID] = ""
		}
	}

	for _, att := range attachments {
		match := uc.matcher.FindTransaction(att, transactions)
		uc.record(DirectionFindTransaction, match != nil)
		report.AttachmentMatches = append(report.AttachmentMatches, domain.AttachmentMatch{
			Attachment:  att,
			Transaction: match,
		})
		if match != nil {
			report.Summary.MatchedAttachments++
		} else {
			report.Summary.UnmatchedAttachments++
		}
	}

	if uc.expectedRepo != nil {
		expected, err := uc.expectedRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("load expected pairs: %w", err)
		}
		for _, pair := range expected {
			actual := chosen[pair.TransactionID]
			result := domain.ExpectationResult{
				Expected: pair,
				ActualID: actual,
				Passed:   actual == pair.AttachmentID,
			}
			report.Expectations = append(report.Expectations, result)
			report.Summary.ExpectationsEvaluated++
			if result.Passed {
				report.Summary.ExpectationsPassed++
			} else {
				report.Summary.ExpectationsFailed++
			}
		}
	}

	if rr, ok := uc.recorder.(ReconcileRecorder); ok {
		rr.RecordReconcileRun(time.Since(start).Seconds())
	}

	return report, nil
}

func (uc *ReconcileUseCase) record(direction string, matched bool) {
	if uc.recorder == nil {
		return
	}
	outcome := OutcomeNoMatch
	if matched {
		outcome = OutcomeMatched
	}
	uc.recorder.RecordMatch(direction, outcome)
}
