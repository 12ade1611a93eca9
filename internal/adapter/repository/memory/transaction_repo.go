// Package memory holds the in-process transaction store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/gobudget/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository in memory.
// Records keep their insertion position across updates.
type TransactionRepository struct {
	mu    sync.RWMutex
	txs   []domain.Transaction
	index map[string]int
}

// NewTransactionRepository creates a repository holding a copy of seed.
func NewTransactionRepository(seed ...domain.Transaction) *TransactionRepository {
	r := &TransactionRepository{index: make(map[string]int, len(seed))}
	for _, tx := range seed {
		r.index[tx.ID] = len(r.txs)
		r.txs = append(r.txs, tx)
	}
	return r
}

// Create appends a transaction. Ids must be unique.
func (r *TransactionRepository) Create(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[tx.ID]; exists {
		return fmt.Errorf("transaction %s already exists", tx.ID)
	}

	r.index[tx.ID] = len(r.txs)
	r.txs = append(r.txs, *tx)
	return nil
}

// Update replaces a transaction in place.
func (r *TransactionRepository) Update(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[tx.ID]
	if !ok {
		return domain.ErrTransactionNotFound
	}

	r.txs[pos] = *tx
	return nil
}

// Delete removes a transaction, keeping the order of the others.
func (r *TransactionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}

	r.txs = append(r.txs[:pos], r.txs[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.txs); i++ {
		r.index[r.txs[i].ID] = i
	}
	return nil
}

// GetByID returns a copy of one transaction.
func (r *TransactionRepository) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	tx := r.txs[pos]
	return &tx, nil
}

// List returns a snapshot of all transactions in insertion order.
func (r *TransactionRepository) List(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Transaction(nil), r.txs...), nil
}
