// Package ledger owns the authoritative set of transactions per owner and
// the mutation operations over it.
package ledger

import (
	"context"
	"sync"

	"finledger/internal/catalog"
	"finledger/internal/core"
)

// Store is an in-memory Ledger. Mutations are serialized behind a write
// lock; reads take a read lock and return copies, so concurrent readers
// always observe a consistent snapshot and never alias internal state.
type Store struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	items   []core.Transaction // insertion order
	index   map[int64]int      // id -> position in items
	nextID  int64
}

// NewStore creates a store validating against cat, optionally seeded with
// an initial dataset. Seed records keep their IDs; the ID counter starts
// above the highest seeded ID so IDs are never reused.
func NewStore(cat *catalog.Catalog, seed []core.Transaction) *Store {
	s := &Store{
		catalog: cat,
		items:   make([]core.Transaction, 0, len(seed)),
		index:   make(map[int64]int, len(seed)),
		nextID:  1,
	}
	for _, tx := range seed {
		if _, dup := s.index[tx.ID]; dup {
			continue
		}
		s.index[tx.ID] = len(s.items)
		s.items = append(s.items, tx)
		if tx.ID >= s.nextID {
			s.nextID = tx.ID + 1
		}
	}
	return s
}

// Create validates the input, assigns a fresh unique ID and stores the
// transaction. On validation failure nothing is mutated.
func (s *Store) Create(_ context.Context, in TransactionInput) (core.Transaction, error) {
	tx := core.Transaction{
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		OwnerEmail:  in.OwnerEmail,
		OwnerName:   in.OwnerName,
	}
	if err := Validate(s.catalog, tx); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	s.index[tx.ID] = len(s.items)
	s.items = append(s.items, tx)
	return tx, nil
}

// Update replaces every field except ID and owner with the merged record,
// after the same validation as Create. The swap is atomic: readers see
// either the old or the new record, never a partial write.
func (s *Store) Update(_ context.Context, id int64, in TransactionInput) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return core.Transaction{}, &core.NotFoundError{ID: id}
	}
	prev := s.items[pos]

	tx := core.Transaction{
		ID:          prev.ID,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		OwnerEmail:  prev.OwnerEmail, // immutable post-creation
		OwnerName:   prev.OwnerName,
	}
	if in.OwnerName != "" {
		tx.OwnerName = in.OwnerName
	}
	if err := Validate(s.catalog, tx); err != nil {
		return core.Transaction{}, err
	}

	s.items[pos] = tx
	return tx, nil
}

// Delete removes the record permanently. Deleting an absent ID, including
// the same ID twice, fails with NotFoundError.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return &core.NotFoundError{ID: id}
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return nil
}

// GetByID returns the transaction with the given ID.
func (s *Store) GetByID(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return core.Transaction{}, &core.NotFoundError{ID: id}
	}
	return s.items[pos], nil
}

// ListByOwner returns all transactions owned by ownerEmail in insertion
// order. The order is stable across calls without intervening mutations.
func (s *Store) ListByOwner(_ context.Context, ownerEmail string) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Transaction
	for _, tx := range s.items {
		if tx.OwnerEmail == ownerEmail {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Len returns the total number of stored transactions across all owners.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
