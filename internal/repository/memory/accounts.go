// Package memory provides the mutex-guarded map-backed repositories. This is
// the only storage backend: persistence across restarts is out of scope.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"securebank/internal/common"
	"securebank/internal/models"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	balances map[string]decimal.Decimal
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*models.Account),
		balances: make(map[string]decimal.Decimal),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account, seed decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Username]; exists {
		return fmt.Errorf("%w: account %s", common.ErrorDuplicate, account.Username)
	}

	cp := *account
	r.accounts[account.Username] = &cp
	r.balances[account.Username] = seed
	return nil
}

func (r *AccountRepository) Get(ctx context.Context, username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[username]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", common.ErrorNotFound, username)
	}
	cp := *account
	return &cp, nil
}

func (r *AccountRepository) Exists(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.accounts[username]
	return exists, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Username]; !exists {
		return fmt.Errorf("%w: account %s", common.ErrorNotFound, account.Username)
	}
	cp := *account
	r.accounts[account.Username] = &cp
	return nil
}

func (r *AccountRepository) Balance(ctx context.Context, username string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// absent balances read as zero, matching the defensive credit default
	return r.balances[username], nil
}

func (r *AccountRepository) TransferFunds(ctx context.Context, from, to string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fromBalance := r.balances[from]
	if fromBalance.LessThan(amount) {
		return fmt.Errorf("%w: account %s", common.ErrorInsufficientFunds, from)
	}

	// debit and credit under one lock so the balance sum is conserved
	r.balances[from] = fromBalance.Sub(amount)
	r.balances[to] = r.balances[to].Add(amount)
	return nil
}
