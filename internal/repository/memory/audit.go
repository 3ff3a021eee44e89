package memory

import (
	"context"
	"sync"

	"securebank/internal/models"
)

type AuditRepository struct {
	mu      sync.RWMutex
	entries []models.AuditEntry
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	return nil
}

func (r *AuditRepository) List(ctx context.Context) ([]models.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
