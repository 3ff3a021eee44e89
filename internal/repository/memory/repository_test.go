package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"securebank/internal/common"
	"securebank/internal/models"
)

func seedAccount(t *testing.T, r *AccountRepository, username string, balance int64) {
	t.Helper()
	err := r.Create(context.Background(), &models.Account{
		Username:       username,
		PasswordDigest: "bcrypt$0000000000000000",
		CreatedAt:      time.Now(),
	}, decimal.NewFromInt(balance))
	require.NoError(t, err)
}

func TestAccountRepository_CreateDuplicate(t *testing.T) {
	r := NewAccountRepository()
	seedAccount(t, r, "alice", 1000)

	err := r.Create(context.Background(), &models.Account{Username: "alice"}, decimal.NewFromInt(1000))
	require.ErrorIs(t, err, common.ErrorDuplicate)

	// the original account and balance are untouched
	bal, err := r.Balance(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, bal.Equal(decimal.NewFromInt(1000)))
}

func TestAccountRepository_GetMissing(t *testing.T) {
	r := NewAccountRepository()
	_, err := r.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAccountRepository_GetReturnsCopy(t *testing.T) {
	r := NewAccountRepository()
	seedAccount(t, r, "alice", 1000)

	a, err := r.Get(context.Background(), "alice")
	require.NoError(t, err)
	a.PasswordDigest = "mutated"

	b, err := r.Get(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "bcrypt$0000000000000000", b.PasswordDigest)
}

func TestAccountRepository_TransferConservation(t *testing.T) {
	r := NewAccountRepository()
	seedAccount(t, r, "alice", 1000)
	seedAccount(t, r, "bob", 250)

	amount := decimal.RequireFromString("137.25")
	require.NoError(t, r.TransferFunds(context.Background(), "alice", "bob", amount))

	aliceBal, _ := r.Balance(context.Background(), "alice")
	bobBal, _ := r.Balance(context.Background(), "bob")
	require.True(t, aliceBal.Equal(decimal.RequireFromString("862.75")), "got %s", aliceBal)
	require.True(t, bobBal.Equal(decimal.RequireFromString("387.25")), "got %s", bobBal)
	require.True(t, aliceBal.Add(bobBal).Equal(decimal.NewFromInt(1250)))
}

func TestAccountRepository_TransferInsufficient(t *testing.T) {
	r := NewAccountRepository()
	seedAccount(t, r, "alice", 100)
	seedAccount(t, r, "bob", 0)

	err := r.TransferFunds(context.Background(), "alice", "bob", decimal.NewFromInt(101))
	require.ErrorIs(t, err, common.ErrorInsufficientFunds)

	aliceBal, _ := r.Balance(context.Background(), "alice")
	bobBal, _ := r.Balance(context.Background(), "bob")
	require.True(t, aliceBal.Equal(decimal.NewFromInt(100)))
	require.True(t, bobBal.IsZero())
}

func TestAuditRepository_AppendOrdered(t *testing.T) {
	r := NewAuditRepository()
	ctx := context.Background()

	for _, action := range []string{"first", "second", "third"} {
		err := r.Append(ctx, &models.AuditEntry{
			ID:        uuid.New(),
			Timestamp: time.Now(),
			Actor:     models.AnonymousActor,
			Action:    action,
		})
		require.NoError(t, err)
	}

	entries, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "first", entries[0].Action)
	require.Equal(t, "third", entries[2].Action)
}

func TestAuditRepository_ListReturnsCopy(t *testing.T) {
	r := NewAuditRepository()
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, &models.AuditEntry{Action: "original"}))

	entries, err := r.List(ctx)
	require.NoError(t, err)
	entries[0].Action = "mutated"

	again, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "original", again[0].Action)
}
