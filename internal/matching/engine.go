// Package matching implements the reconciliation decision engine: it links
// a bank transaction to the supporting document it settles, or decides with
// confidence that no such document exists. Reference-number equality is
// definitive; otherwise candidates are scored on amount, date proximity,
// and counterparty-name similarity, and a tie for the best score is
// resolved as no match. The package is pure: no I/O, no logging, no clock.
package matching

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

// Config tunes the engine. The zero value of each field is replaced with
// its default by NewEngine.
type Config struct {
	// CompanyName is the reconciling company's own name; it is excluded
	// from counterparty comparison.
	CompanyName string
	// AmountTolerance absorbs floating-point representation noise in
	// amounts, not business-level differences.
	AmountTolerance decimal.Decimal
	// DateToleranceDays is the maximum day distance that still counts as a
	// date match. Observed real payments land on or one day around the
	// relevant document date; wider windows produce false positives.
	DateToleranceDays int
	// MinConfidence is the acceptance threshold for multi-signal matches.
	MinConfidence float64
}

// DefaultConfig returns the engine configuration used in production.
func DefaultConfig(companyName string) Config {
	return Config{
		CompanyName:       companyName,
		AmountTolerance:   decimal.New(1, -2), // 0.01 currency units
		DateToleranceDays: 1,
		MinConfidence:     DefaultMinConfidence,
	}
}

// Engine is the matching decision engine. It is stateless and safe for
// concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine, filling unset config fields with defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.AmountTolerance.IsZero() {
		cfg.AmountTolerance = decimal.New(1, -2)
	}
	if cfg.DateToleranceDays == 0 {
		cfg.DateToleranceDays = 1
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}
	return &Engine{cfg: cfg}
}

// FindAttachment returns the attachment the transaction settles, or nil
// when none can be identified with confidence. The result is independent of
// candidate order and the inputs are never mutated.
func (e *Engine) FindAttachment(tx domain.Transaction, attachments []domain.Attachment) *domain.Attachment {
	if ref := NormalizeReference(tx.Reference); ref != "" {
		found, count := -1, 0
		for i := range attachments {
			if NormalizeReference(attachments[i].Reference) == ref {
				found = i
				count++
			}
		}
		if count == 1 {
			att := attachments[found]
			return &att
		}
		if count > 1 {
			// Duplicate references in the candidate set: ambiguous.
			return nil
		}
	}

	best, count := -1, 0
	bestScore := 0.0
	for i := range attachments {
		c := e.scorePair(tx, attachments[i])
		if c.disqualified || c.score < e.cfg.MinConfidence {
			continue
		}
		switch {
		case c.score > bestScore:
			bestScore = c.score
			best = i
			count = 1
		case c.score == bestScore:
			count++
		}
	}

	if best < 0 || count != 1 {
		return nil
	}
	att := attachments[best]
	return &att
}

// FindTransaction returns the transaction that settles the attachment, or
// nil when none can be identified with confidence. It mirrors
// FindAttachment: the same pairing scores identically in both directions.
func (e *Engine) FindTransaction(att domain.Attachment, transactions []domain.Transaction) *domain.Transaction {
	if ref := NormalizeReference(att.Reference); ref != "" {
		found, count := -1, 0
		for i := range transactions {
			if NormalizeReference(transactions[i].Reference) == ref {
				found = i
				count++
			}
		}
		if count == 1 {
			tx := transactions[found]
			return &tx
		}
		if count > 1 {
			return nil
		}
	}

	best, count := -1, 0
	bestScore := 0.0
	for i := range transactions {
		c := e.scorePair(transactions[i], att)
		if c.disqualified || c.score < e.cfg.MinConfidence {
			continue
		}
		switch {
		case c.score > bestScore:
			bestScore = c.score
			best = i
			count = 1
		case c.score == bestScore:
			count++
		}
	}

	if best < 0 || count != 1 {
		return nil
	}
	tx := transactions[best]
	return &tx
}
