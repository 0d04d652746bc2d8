package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iho/bankmatch/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository over a
// JSON fixture file.
type TransactionRepository struct {
	transactions []domain.Transaction
}

// NewTransactionRepository loads and validates the transaction fixture.
func NewTransactionRepository(path string) (*TransactionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transactions fixture: %w", err)
	}

	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode transactions fixture: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		tx, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return &TransactionRepository{transactions: transactions}, nil
}

// List returns all transactions. The returned slice is a copy; the loaded
// records stay immutable.
func (r *TransactionRepository) List(_ context.Context) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// GetByID returns the transaction with the given id.
func (r *TransactionRepository) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			found := tx
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
}
