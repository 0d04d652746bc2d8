package usecase

import (
	"context"

	"github.com/iho/bankmatch/internal/domain"
)

// TransactionRepository provides the bank transaction collection.
type TransactionRepository interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// AttachmentRepository provides the supporting document collection.
type AttachmentRepository interface {
	List(ctx context.Context) ([]domain.Attachment, error)
	GetByID(ctx context.Context, id string) (*domain.Attachment, error)
}

// ExpectedPairRepository provides the optional expected-pairs fixture used
// to grade a reconciliation run.
type ExpectedPairRepository interface {
	List(ctx context.Context) ([]domain.ExpectedPair, error)
}

// Matcher is the matching decision engine.
type Matcher interface {
	FindAttachment(tx domain.Transaction, attachments []domain.Attachment) *domain.Attachment
	FindTransaction(att domain.Attachment, transactions []domain.Transaction) *domain.Transaction
}

// IDGenerator generates unique identifiers for reconciliation runs.
type IDGenerator interface {
	Generate() string
}

// MatchRecorder records match outcomes for observability.
type MatchRecorder interface {
	RecordMatch(direction, outcome string)
}

// ReconcileRecorder is optionally implemented by a MatchRecorder that also
// tracks whole reconciliation runs.
type ReconcileRecorder interface {
	RecordReconcileRun(seconds float64)
}
