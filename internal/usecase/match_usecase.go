package usecase

import (
	"context"
	"fmt"

	"github.com/iho/bankmatch/internal/domain"
)

// Labels for recorded match outcomes.
const (
	DirectionFindAttachment  = "find_attachment"
	DirectionFindTransaction = "find_transaction"

	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

// MatchUseCase answers single-record match queries.
type MatchUseCase struct {
	txRepo   TransactionRepository
	attRepo  AttachmentRepository
	matcher  Matcher
	recorder MatchRecorder
}

// NewMatchUseCase creates a new match use case. recorder may be nil.
func NewMatchUseCase(
	txRepo TransactionRepository,
	attRepo AttachmentRepository,
	matcher Matcher,
	recorder MatchRecorder,
) *MatchUseCase {
	return &MatchUseCase{
		txRepo:   txRepo,
		attRepo:  attRepo,
		matcher:  matcher,
		recorder: recorder,
	}
}

// MatchTransaction finds the attachment the given transaction settles.
// A nil attachment with a nil error means a confident no-match.
func (uc *MatchUseCase) MatchTransaction(ctx context.Context, tx domain.Transaction) (*domain.Attachment, error) {
	attachments, err := uc.attRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attachments: %w", err)
	}

	match := uc.matcher.FindAttachment(tx, attachments)
	uc.record(DirectionFindAttachment, match != nil)
	return match, nil
}

// MatchTransactionByID looks up a stored transaction and matches it.
func (uc *MatchUseCase) MatchTransactionByID(ctx context.Context, id string) (*domain.Attachment, error) {
	tx, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.MatchTransaction(ctx, *tx)
}

// MatchAttachment finds the transaction that settles the given attachment.
func (uc *MatchUseCase) MatchAttachment(ctx context.Context, att domain.Attachment) (*domain.Transaction, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	match := uc.matcher.FindTransaction(att, transactions)
	uc.record(DirectionFindTransaction, match != nil)
	return match, nil
}

// MatchAttachmentByID looks up a stored attachment and matches it.
func (uc *MatchUseCase) MatchAttachmentByID(ctx context.Context, id string) (*domain.Transaction, error) {
	att, err := uc.attRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.MatchAttachment(ctx, *att)
}

func (uc *MatchUseCase) record(direction string, matched bool) {
	if uc.recorder == nil {
		return
	}
	outcome := OutcomeNoMatch
	if matched {
		outcome = OutcomeMatched
	}
	uc.recorder.RecordMatch(direction, outcome)
}
