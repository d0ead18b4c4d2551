package usecase

import (
	"context"
	"errors"
	"testing"

	"petslove_booking/internal/domain/entities"
	mock_interfaces "petslove_booking/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	catalog *mock_interfaces.MockICatalogRepository
	pets    *mock_interfaces.MockIPetRepository
	usage   *mock_interfaces.MockIPackageUsageRepository
	audit   *mock_interfaces.MockIAuditLogRepository
}

func newCatalogUseCaseForTest(t *testing.T) (*CatalogUseCase, catalogMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := catalogMocks{
		catalog: mock_interfaces.NewMockICatalogRepository(ctrl),
		pets:    mock_interfaces.NewMockIPetRepository(ctrl),
		usage:   mock_interfaces.NewMockIPackageUsageRepository(ctrl),
		audit:   mock_interfaces.NewMockIAuditLogRepository(ctrl),
	}
	uc := NewCatalogUseCase(m.catalog, m.pets, m.usage, m.audit)
	m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return uc, m
}

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateService(context.Background(), "  ", decimal.NewFromInt(50), "admin-1")
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}

		_, err = uc.CreateService(context.Background(), "Banho", decimal.Zero, "admin-1")
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		price := decimal.RequireFromString("49.90")
		m.catalog.EXPECT().CreateService(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Name != "Banho" || !s.Price.Equal(price) {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		created, err := uc.CreateService(context.Background(), " Banho ", price, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCatalogUseCase_CreatePackage(t *testing.T) {
	t.Run("service must exist", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-404").Return(entities.Service{}, nil)

		_, err := uc.CreatePackage(context.Background(), "Combo", "svc-404", 4, decimal.NewFromInt(150), "admin-1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreatePackage(context.Background(), "Combo", "svc-1", 0, decimal.NewFromInt(150), "admin-1")
		if !errors.Is(err, ErrInvalidPackageInput) {
			t.Fatalf("expected ErrInvalidPackageInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)
		m.catalog.EXPECT().CreatePackage(gomock.Any(), gomock.AssignableToTypeOf(entities.GroomingPackage{})).DoAndReturn(
			func(_ context.Context, p entities.GroomingPackage) (entities.GroomingPackage, error) {
				if p.Quantity != 4 || p.ServiceID != "svc-1" {
					t.Fatalf("unexpected package: %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.CreatePackage(context.Background(), "Combo", "svc-1", 4, decimal.NewFromInt(150), "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCatalogUseCase_AssignPackageToTutor(t *testing.T) {
	t.Run("package not found", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.catalog.EXPECT().GetPackage(gomock.Any(), "pkg-404").Return(entities.GroomingPackage{}, nil)

		_, err := uc.AssignPackageToTutor(context.Background(), "pkg-404", "tutor-1", "admin-1")
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("already associated", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.catalog.EXPECT().GetPackage(gomock.Any(), "pkg-1").Return(entities.GroomingPackage{ID: "pkg-1", ServiceID: "svc-1", Quantity: 4}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(true, nil)

		_, err := uc.AssignPackageToTutor(context.Background(), "pkg-1", "tutor-1", "admin-1")
		if !errors.Is(err, ErrAlreadyAssociated) {
			t.Fatalf("expected ErrAlreadyAssociated, got %v", err)
		}
	})

	t.Run("seeds the ledger with the package quantity", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.catalog.EXPECT().GetPackage(gomock.Any(), "pkg-1").Return(entities.GroomingPackage{ID: "pkg-1", ServiceID: "svc-1", Quantity: 4}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(false, nil)
		m.catalog.EXPECT().AssignTutor(gomock.Any(), gomock.AssignableToTypeOf(entities.PackageTutor{}), gomock.AssignableToTypeOf(entities.PackageUsage{})).DoAndReturn(
			func(_ context.Context, assoc entities.PackageTutor, usage entities.PackageUsage) error {
				if assoc.PackageID != "pkg-1" || assoc.TutorID != "tutor-1" {
					t.Fatalf("unexpected association: %+v", assoc)
				}
				if usage.RemainingQuantity != 4 || usage.ServiceID != "svc-1" {
					t.Fatalf("unexpected usage seed: %+v", usage)
				}
				return nil
			},
		)

		usage, err := uc.AssignPackageToTutor(context.Background(), "pkg-1", "tutor-1", "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if usage.RemainingQuantity != 4 {
			t.Fatalf("expected seeded quantity 4, got %d", usage.RemainingQuantity)
		}
	})
}

func TestCatalogUseCase_TutorListings(t *testing.T) {
	t.Run("blank tutor id", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		if _, err := uc.ListPetsByTutor(context.Background(), "  "); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
		if _, err := uc.ListUsageByTutor(context.Background(), ""); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("usage listing", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.usage.EXPECT().ListByTutor(gomock.Any(), "tutor-1").Return([]entities.PackageUsage{
			{PackageID: "pkg-1", TutorID: "tutor-1", ServiceID: "svc-1", RemainingQuantity: 2},
		}, nil)

		items, err := uc.ListUsageByTutor(context.Background(), "tutor-1")
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result: %v %v", items, err)
		}
	})
}

func TestCatalogUseCase_ListAuditEntries(t *testing.T) {
	uc, m := newCatalogUseCaseForTest(t)
	m.audit.EXPECT().ListRecent(gomock.Any(), 50).Return([]entities.AuditEntry{{ID: "log-1"}}, nil)

	items, err := uc.ListAuditEntries(context.Background(), 0)
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected result: %v %v", items, err)
	}
}
