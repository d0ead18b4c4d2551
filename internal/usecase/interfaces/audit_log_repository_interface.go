package interfaces

import (
	"context"

	"petslove_booking/internal/domain/entities"
)

// IAuditLogRepository is the append-only audit sink. Append is the only
// write; entries are never updated or deleted.

type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}
