package interfaces

import (
	"context"

	"petslove_booking/internal/domain/entities"
)

// IPetRepository supplies existence and ownership lookups for pets.
// GetByID returns a zero-value Pet with a nil error when absent.

type IPetRepository interface {
	GetByID(ctx context.Context, id string) (entities.Pet, error)
	ListByTutor(ctx context.Context, tutorID string) ([]entities.Pet, error)
}
