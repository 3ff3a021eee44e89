package models

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousActor is recorded when no session is active.
const AnonymousActor = "Anonymous"

// AuditEntry is an immutable record of a security-relevant action.
// Entries are appended in order of occurrence and never mutated or removed.
type AuditEntry struct {
	ID        uuid.UUID
	Timestamp time.Time
	Actor     string
	Action    string
}
