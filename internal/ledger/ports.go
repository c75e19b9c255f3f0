package ledger

import (
	"context"

	"finledger/internal/core"
)

// TransactionInput carries the caller-supplied fields for a create or a
// full-replacement update. The store assigns the ID; OwnerEmail is fixed
// at creation and ignored on update.
type TransactionInput struct {
	Type        core.TransactionType
	Category    string
	Amount      core.Money
	Description string
	Date        core.Date
	OwnerEmail  string
	OwnerName   string
}

// Ledger is the port every transaction backend implements. The store is
// the single source of truth: reads never mutate state, mutations are
// observable immediately on successful return.
type Ledger interface {
	Create(ctx context.Context, in TransactionInput) (core.Transaction, error)
	Update(ctx context.Context, id int64, in TransactionInput) (core.Transaction, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (core.Transaction, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]core.Transaction, error)
}
