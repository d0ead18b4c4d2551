package interfaces

import (
	"context"

	"petslove_booking/internal/domain/entities"
)

// IPackageUsageRepository reads the usage ledger. Balance mutations never
// happen here in isolation: the decrement rides inside the appointment
// creation transaction and the restore inside the deletion transaction
// (IAppointmentRepository), and the initial entry is seeded by the package
// assignment transaction (ICatalogRepository.AssignTutor).
//
// Get returns a zero-value PackageUsage with a nil error when no entry
// exists for the key.

type IPackageUsageRepository interface {
	Get(ctx context.Context, packageID, tutorID, serviceID string) (entities.PackageUsage, error)
	ListByTutor(ctx context.Context, tutorID string) ([]entities.PackageUsage, error)
}
