package entities

import "time"

// AuditEntry is one append-only record of a workflow attempt, success or
// failure. ActorID is empty when no acting user is known.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Entries are written best-effort: a failed audit write is reported to the
// operational log and never rolls back the business operation it annotates.
type AuditEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	ActorID   string    `json:"actor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
