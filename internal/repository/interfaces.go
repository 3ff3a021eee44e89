// Package repository declares the storage interfaces the engine depends on.
// Only the in-memory implementation exists: all state is process-local and
// lives for the duration of the run.
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"securebank/internal/models"
)

// Accounts stores registered accounts and their balances. Accounts are
// created exactly once per username and never deleted; balances never go
// negative.
type Accounts interface {
	// Create stores a new account and seeds its balance atomically.
	// Returns common.ErrorDuplicate if the username is already taken.
	Create(ctx context.Context, account *models.Account, seed decimal.Decimal) error

	// Get returns the account for username or common.ErrorNotFound.
	Get(ctx context.Context, username string) (*models.Account, error)

	// Exists reports whether username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Update replaces the stored account for an existing username.
	Update(ctx context.Context, account *models.Account) error

	// Balance returns the current balance; unknown usernames read as zero.
	Balance(ctx context.Context, username string) (decimal.Decimal, error)

	// TransferFunds debits from and credits to as one atomic step. The
	// balance check happens under the same lock; an uncovered amount
	// returns common.ErrorInsufficientFunds and changes nothing.
	TransferFunds(ctx context.Context, from, to string, amount decimal.Decimal) error
}

// Audit is the append-only ordered record of security-relevant events.
type Audit interface {
	Append(ctx context.Context, entry *models.AuditEntry) error

	// List returns all entries in order of occurrence.
	List(ctx context.Context) ([]models.AuditEntry, error)
}
