package interfaces

import (
	"context"

	"petslove_booking/internal/domain/entities"
)

// ICatalogRepository persists the service/package catalog and the
// package-tutor associations.
//
// AssignTutor writes the association row and the initial usage ledger entry
// in one DynamoDB transaction; both commit or neither does. It is the only
// place a PackageUsage entry is created.
//
// Reads follow the zero-value-when-absent convention.

type ICatalogRepository interface {
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)

	CreatePackage(ctx context.Context, p entities.GroomingPackage) (entities.GroomingPackage, error)
	GetPackage(ctx context.Context, id string) (entities.GroomingPackage, error)
	ListPackages(ctx context.Context) ([]entities.GroomingPackage, error)

	AssignTutor(ctx context.Context, assoc entities.PackageTutor, usage entities.PackageUsage) error
	IsTutorAssociated(ctx context.Context, packageID, tutorID string) (bool, error)
	ListPackagesByTutor(ctx context.Context, tutorID string) ([]entities.GroomingPackage, error)
}
