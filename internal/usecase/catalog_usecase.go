package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidServiceInput = errors.New("invalid service input")
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidPackageInput = errors.New("invalid package input")
	ErrPackageNotFound     = errors.New("package not found")
	ErrAlreadyAssociated   = errors.New("tutor already associated with package")
)

// ICatalogUseCase manages the data the booking workflow consumes: the
// service catalog, promotional packages, and per-tutor package assignment
// (which seeds the usage ledger).
type ICatalogUseCase interface {
	CreateService(ctx context.Context, name string, price decimal.Decimal, actorID string) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	CreatePackage(ctx context.Context, name, serviceID string, quantity int, promotionalPrice decimal.Decimal, actorID string) (entities.GroomingPackage, error)
	ListPackages(ctx context.Context) ([]entities.GroomingPackage, error)
	AssignPackageToTutor(ctx context.Context, packageID, tutorID, actorID string) (entities.PackageUsage, error)
	ListPackagesByTutor(ctx context.Context, tutorID string) ([]entities.GroomingPackage, error)
	ListPetsByTutor(ctx context.Context, tutorID string) ([]entities.Pet, error)
	ListUsageByTutor(ctx context.Context, tutorID string) ([]entities.PackageUsage, error)
	ListAuditEntries(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
	pets    interfaces.IPetRepository
	usage   interfaces.IPackageUsageRepository
	audit   auditor
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	catalog interfaces.ICatalogRepository,
	pets interfaces.IPetRepository,
	usage interfaces.IPackageUsageRepository,
	auditLog interfaces.IAuditLogRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalog: catalog,
		pets:    pets,
		usage:   usage,
		audit:   auditor{repo: auditLog},
	}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, name string, price decimal.Decimal, actorID string) (entities.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" || price.Sign() <= 0 {
		u.audit.record(ctx, auditCatalogOpFailed, "invalid service input", actorID)
		return entities.Service{}, ErrInvalidServiceInput
	}

	s := entities.Service{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.catalog.CreateService(ctx, s)
	if err != nil {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.Service{}, err
	}
	u.audit.record(ctx, auditServiceCreated, fmt.Sprintf("service_id=%s name=%q", created.ID, name), actorID)
	return created, nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.catalog.ListServices(ctx)
}

func (u *CatalogUseCase) CreatePackage(ctx context.Context, name, serviceID string, quantity int, promotionalPrice decimal.Decimal, actorID string) (entities.GroomingPackage, error) {
	name = strings.TrimSpace(name)
	serviceID = strings.TrimSpace(serviceID)
	if name == "" || serviceID == "" || quantity <= 0 || promotionalPrice.Sign() <= 0 {
		u.audit.record(ctx, auditCatalogOpFailed, "invalid package input", actorID)
		return entities.GroomingPackage{}, ErrInvalidPackageInput
	}

	svc, err := u.catalog.GetService(ctx, serviceID)
	if err != nil {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.GroomingPackage{}, err
	}
	if svc.ID == "" {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("service_id=%s not found", serviceID), actorID)
		return entities.GroomingPackage{}, ErrServiceNotFound
	}

	p := entities.GroomingPackage{
		ID:               uuid.NewString(),
		Name:             name,
		ServiceID:        serviceID,
		Quantity:         quantity,
		PromotionalPrice: promotionalPrice,
		CreatedAt:        time.Now().UTC(),
	}
	created, err := u.catalog.CreatePackage(ctx, p)
	if err != nil {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.GroomingPackage{}, err
	}
	u.audit.record(ctx, auditPackageCreated,
		fmt.Sprintf("package_id=%s name=%q service_id=%s quantity=%d", created.ID, name, serviceID, quantity), actorID)
	return created, nil
}

func (u *CatalogUseCase) ListPackages(ctx context.Context) ([]entities.GroomingPackage, error) {
	return u.catalog.ListPackages(ctx)
}

// AssignPackageToTutor links a tutor to a package and seeds the usage ledger
// entry with the package quantity. Association row and ledger entry are
// written in one transaction.
func (u *CatalogUseCase) AssignPackageToTutor(ctx context.Context, packageID, tutorID, actorID string) (entities.PackageUsage, error) {
	packageID = strings.TrimSpace(packageID)
	tutorID = strings.TrimSpace(tutorID)
	if packageID == "" || tutorID == "" {
		u.audit.record(ctx, auditCatalogOpFailed, "invalid package assignment input", actorID)
		return entities.PackageUsage{}, ErrInvalidPackageInput
	}

	pkg, err := u.catalog.GetPackage(ctx, packageID)
	if err != nil {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.PackageUsage{}, err
	}
	if pkg.ID == "" {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("package_id=%s not found", packageID), actorID)
		return entities.PackageUsage{}, ErrPackageNotFound
	}

	associated, err := u.catalog.IsTutorAssociated(ctx, packageID, tutorID)
	if err != nil {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.PackageUsage{}, err
	}
	if associated {
		u.audit.record(ctx, auditCatalogOpFailed,
			fmt.Sprintf("tutor_id=%s already associated with package_id=%s", tutorID, packageID), actorID)
		return entities.PackageUsage{}, ErrAlreadyAssociated
	}

	assoc := entities.PackageTutor{
		PackageID:  packageID,
		TutorID:    tutorID,
		AssignedAt: time.Now().UTC(),
	}
	usage := entities.PackageUsage{
		PackageID:         packageID,
		TutorID:           tutorID,
		ServiceID:         pkg.ServiceID,
		RemainingQuantity: pkg.Quantity,
	}
	if err := u.catalog.AssignTutor(ctx, assoc, usage); err != nil {
		u.audit.record(ctx, auditCatalogOpFailed, fmt.Sprintf("transaction error: %v", err), actorID)
		return entities.PackageUsage{}, err
	}
	u.audit.record(ctx, auditPackageAssigned,
		fmt.Sprintf("package_id=%s tutor_id=%s remaining=%d", packageID, tutorID, pkg.Quantity), actorID)
	return usage, nil
}

func (u *CatalogUseCase) ListPackagesByTutor(ctx context.Context, tutorID string) ([]entities.GroomingPackage, error) {
	tutorID = strings.TrimSpace(tutorID)
	if tutorID == "" {
		return nil, ErrMissingFields
	}
	return u.catalog.ListPackagesByTutor(ctx, tutorID)
}

func (u *CatalogUseCase) ListPetsByTutor(ctx context.Context, tutorID string) ([]entities.Pet, error) {
	tutorID = strings.TrimSpace(tutorID)
	if tutorID == "" {
		return nil, ErrMissingFields
	}
	return u.pets.ListByTutor(ctx, tutorID)
}

func (u *CatalogUseCase) ListUsageByTutor(ctx context.Context, tutorID string) ([]entities.PackageUsage, error) {
	tutorID = strings.TrimSpace(tutorID)
	if tutorID == "" {
		return nil, ErrMissingFields
	}
	return u.usage.ListByTutor(ctx, tutorID)
}

func (u *CatalogUseCase) ListAuditEntries(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return u.audit.repo.ListRecent(ctx, limit)
}
