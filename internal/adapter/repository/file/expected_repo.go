package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iho/bankmatch/internal/domain"
)

// ExpectedPairRepository implements usecase.ExpectedPairRepository over a
// JSON fixture file. An empty attachment_id in the fixture means the
// transaction is expected to stay unmatched.
type ExpectedPairRepository struct {
	pairs []domain.ExpectedPair
}

// NewExpectedPairRepository loads the expected-pairs fixture.
func NewExpectedPairRepository(path string) (*ExpectedPairRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read expected pairs fixture: %w", err)
	}

	var records []expectedPairRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode expected pairs fixture: %w", err)
	}

	pairs := make([]domain.ExpectedPair, 0, len(records))
	for _, rec := range records {
		if rec.TransactionID == "" {
			return nil, fmt.Errorf("%w: expected pair", domain.ErrMissingID)
		}
		pairs = append(pairs, domain.ExpectedPair{
			TransactionID: rec.TransactionID,
			AttachmentID:  rec.AttachmentID,
		})
	}

	return &ExpectedPairRepository{pairs: pairs}, nil
}

// List returns all expected pairs.
func (r *ExpectedPairRepository) List(_ context.Context) ([]domain.ExpectedPair, error) {
	out := make([]domain.ExpectedPair, len(r.pairs))
	copy(out, r.pairs)
	return out, nil
}
