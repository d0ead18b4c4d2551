package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"petslove_booking/internal/domain/entities"
	mock_interfaces "petslove_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	appointments *mock_interfaces.MockIAppointmentRepository
	pets         *mock_interfaces.MockIPetRepository
	catalog      *mock_interfaces.MockICatalogRepository
	usage        *mock_interfaces.MockIPackageUsageRepository
	audit        *mock_interfaces.MockIAuditLogRepository
}

func newBookingUseCaseForTest(t *testing.T) (*BookingUseCase, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := bookingMocks{
		appointments: mock_interfaces.NewMockIAppointmentRepository(ctrl),
		pets:         mock_interfaces.NewMockIPetRepository(ctrl),
		catalog:      mock_interfaces.NewMockICatalogRepository(ctrl),
		usage:        mock_interfaces.NewMockIPackageUsageRepository(ctrl),
		audit:        mock_interfaces.NewMockIAuditLogRepository(ctrl),
	}
	uc := NewBookingUseCase(m.appointments, m.pets, m.catalog, m.usage, m.audit)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	// Most cases care about the workflow, not the audit trail.
	m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return uc, m
}

func futureTime() time.Time {
	return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
}

func validCreateCommand() CreateAppointmentCommand {
	return CreateAppointmentCommand{
		TutorID:     "tutor-1",
		PetID:       "pet-1",
		ServiceID:   "svc-1",
		ScheduledAt: futureTime(),
		ActorID:     "admin-1",
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.PetID = "   "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("scheduled time not in the future", func(t *testing.T) {
		uc, _ := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.ScheduledAt = time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrScheduleNotFuture) {
			t.Fatalf("expected ErrScheduleNotFuture, got %v", err)
		}
	})

	t.Run("scheduled exactly now is rejected", func(t *testing.T) {
		uc, _ := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.ScheduledAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrScheduleNotFuture) {
			t.Fatalf("expected ErrScheduleNotFuture, got %v", err)
		}
	})

	t.Run("pet not found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{}, nil)

		_, err := uc.Create(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrPetNotFound) {
			t.Fatalf("expected ErrPetNotFound, got %v", err)
		}
	})

	t.Run("pet owned by someone else", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-2"}, nil)

		_, err := uc.Create(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrPetNotOwnedByTutor) {
			t.Fatalf("expected ErrPetNotOwnedByTutor, got %v", err)
		}
	})

	t.Run("create without package", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.appointments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ID == "" || a.Status != entities.AppointmentStatusPending {
					t.Fatalf("unexpected appointment: %+v", a)
				}
				if a.PackageID != "" {
					t.Fatalf("expected no package link, got %q", a.PackageID)
				}
				return a, nil
			},
		)

		created, err := uc.Create(context.Background(), validCreateCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.AppointmentStatusPending {
			t.Fatalf("expected pending status, got %s", created.Status)
		}
	})

	t.Run("create with package consumes one unit atomically", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.PackageID = "pkg-1"

		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(true, nil)
		m.usage.EXPECT().Get(gomock.Any(), "pkg-1", "tutor-1", "svc-1").Return(entities.PackageUsage{
			PackageID: "pkg-1", TutorID: "tutor-1", ServiceID: "svc-1", RemainingQuantity: 3,
		}, nil)
		// The plain Create must never run here: the put and the decrement
		// ride in the same transaction.
		m.appointments.EXPECT().CreateConsumingUsage(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.PackageID != "pkg-1" {
					t.Fatalf("expected package link, got %q", a.PackageID)
				}
				return a, nil
			},
		)

		created, err := uc.Create(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.PackageID != "pkg-1" {
			t.Fatalf("expected package id on appointment, got %q", created.PackageID)
		}
	})

	t.Run("tutor not associated with package", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.PackageID = "pkg-1"

		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(false, nil)

		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrTutorNotInPackage) {
			t.Fatalf("expected ErrTutorNotInPackage, got %v", err)
		}
	})

	t.Run("quantity exhausted before create", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.PackageID = "pkg-1"

		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(true, nil)
		m.usage.EXPECT().Get(gomock.Any(), "pkg-1", "tutor-1", "svc-1").Return(entities.PackageUsage{
			PackageID: "pkg-1", TutorID: "tutor-1", ServiceID: "svc-1", RemainingQuantity: 0,
		}, nil)

		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrNoRemainingQuantity) {
			t.Fatalf("expected ErrNoRemainingQuantity, got %v", err)
		}
	})

	t.Run("quantity exhausted by concurrent booking", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.PackageID = "pkg-1"

		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(true, nil)
		m.usage.EXPECT().Get(gomock.Any(), "pkg-1", "tutor-1", "svc-1").Return(entities.PackageUsage{
			PackageID: "pkg-1", TutorID: "tutor-1", ServiceID: "svc-1", RemainingQuantity: 1,
		}, nil)
		// A rival booking took the last unit between the read and the
		// transaction; the conditional decrement cancels the whole write.
		m.appointments.EXPECT().CreateConsumingUsage(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, nil)

		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrNoRemainingQuantity) {
			t.Fatalf("expected ErrNoRemainingQuantity, got %v", err)
		}
	})

	t.Run("no ledger entry for key", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.PackageID = "pkg-1"

		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.catalog.EXPECT().IsTutorAssociated(gomock.Any(), "pkg-1", "tutor-1").Return(true, nil)
		m.usage.EXPECT().Get(gomock.Any(), "pkg-1", "tutor-1", "svc-1").Return(entities.PackageUsage{}, nil)

		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrNoRemainingQuantity) {
			t.Fatalf("expected ErrNoRemainingQuantity, got %v", err)
		}
	})
}

func TestBookingUseCase_CreateHome(t *testing.T) {
	t.Run("free text service with taxi dog", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.appointments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ServiceName != "banho e tosa" || !a.TaxiDog {
					t.Fatalf("unexpected appointment: %+v", a)
				}
				if a.ServiceID != "" || a.PackageID != "" {
					t.Fatalf("home booking must not reference the catalog: %+v", a)
				}
				return a, nil
			},
		)

		_, err := uc.CreateHome(context.Background(), CreateHomeBookingCommand{
			TutorID:     "tutor-1",
			PetID:       "pet-1",
			ServiceName: "banho e tosa",
			TaxiDog:     true,
			ScheduledAt: futureTime(),
			ActorID:     "tutor-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing service name", func(t *testing.T) {
		uc, _ := newBookingUseCaseForTest(t)
		_, err := uc.CreateHome(context.Background(), CreateHomeBookingCommand{
			TutorID:     "tutor-1",
			PetID:       "pet-1",
			ServiceName: "  ",
			ScheduledAt: futureTime(),
		})
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})
}

func TestBookingUseCase_Update(t *testing.T) {
	validUpdate := func() UpdateAppointmentCommand {
		return UpdateAppointmentCommand{
			ID:          "apt-1",
			TutorID:     "tutor-1",
			PetID:       "pet-1",
			ServiceID:   "svc-2",
			PackageID:   "pkg-2",
			ScheduledAt: futureTime(),
			ActorID:     "admin-1",
		}
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Appointment{}, nil)

		_, err := uc.Update(context.Background(), validUpdate())
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("edit never touches the ledger", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		existing := entities.Appointment{
			ID: "apt-1", TutorID: "tutor-1", PetID: "pet-1", ServiceID: "svc-1",
			PackageID: "pkg-1", Status: entities.AppointmentStatusPending,
			ScheduledAt: futureTime(),
		}
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(existing, nil)
		// Even a package/service swap only updates the appointment row.
		// No usage lookup, no association check, no decrement.
		m.appointments.EXPECT().UpdateFields(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ServiceID != "svc-2" || a.PackageID != "pkg-2" {
					t.Fatalf("unexpected fields: %+v", a)
				}
				return a, nil
			},
		)

		updated, err := uc.Update(context.Background(), validUpdate())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PackageID != "pkg-2" {
			t.Fatalf("expected updated package, got %q", updated.PackageID)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newBookingUseCaseForTest(t)
		cmd := validUpdate()
		cmd.ID = " "
		_, err := uc.Update(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})
}

func TestBookingUseCase_UpdateHome(t *testing.T) {
	t.Run("someone else's appointment reads as not found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Appointment{ID: "apt-1", TutorID: "tutor-9"}, nil)

		_, err := uc.UpdateHome(context.Background(), UpdateHomeBookingCommand{
			ID:          "apt-1",
			TutorID:     "tutor-1",
			PetID:       "pet-1",
			ServiceName: "tosa",
			ScheduledAt: futureTime(),
		})
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_Transitions(t *testing.T) {
	calls := map[string]func(uc *BookingUseCase, ctx context.Context, id, actorID string) (entities.Appointment, error){
		"confirm":  (*BookingUseCase).Confirm,
		"cancel":   (*BookingUseCase).Cancel,
		"complete": (*BookingUseCase).Complete,
		"reject":   (*BookingUseCase).Reject,
	}

	cases := []struct {
		name   string
		action string
		from   entities.AppointmentStatus
		target entities.AppointmentStatus
		ok     bool
	}{
		{name: "confirm pending", action: "confirm", from: entities.AppointmentStatusPending, target: entities.AppointmentStatusConfirmed, ok: true},
		{name: "confirm confirmed", action: "confirm", from: entities.AppointmentStatusConfirmed, ok: false},
		{name: "confirm cancelled", action: "confirm", from: entities.AppointmentStatusCancelled, ok: false},
		{name: "cancel pending", action: "cancel", from: entities.AppointmentStatusPending, target: entities.AppointmentStatusCancelled, ok: true},
		{name: "cancel confirmed", action: "cancel", from: entities.AppointmentStatusConfirmed, target: entities.AppointmentStatusCancelled, ok: true},
		{name: "cancel completed", action: "cancel", from: entities.AppointmentStatusCompleted, ok: false},
		{name: "complete confirmed", action: "complete", from: entities.AppointmentStatusConfirmed, target: entities.AppointmentStatusCompleted, ok: true},
		{name: "complete pending", action: "complete", from: entities.AppointmentStatusPending, ok: false},
		{name: "reject pending", action: "reject", from: entities.AppointmentStatusPending, target: entities.AppointmentStatusRejected, ok: true},
		{name: "reject completed", action: "reject", from: entities.AppointmentStatusCompleted, target: entities.AppointmentStatusRejected, ok: true},
		{name: "reject rejected", action: "reject", from: entities.AppointmentStatusRejected, target: entities.AppointmentStatusRejected, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newBookingUseCaseForTest(t)
			m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Appointment{ID: "apt-1", Status: tc.from}, nil)
			if tc.ok {
				m.appointments.EXPECT().UpdateStatus(gomock.Any(), "apt-1", tc.target).Return(entities.Appointment{ID: "apt-1", Status: tc.target}, nil)
			}

			res, err := calls[tc.action](uc, context.Background(), "apt-1", "admin-1")
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Status != tc.target {
					t.Fatalf("expected status %s, got %s", tc.target, res.Status)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-404").Return(entities.Appointment{}, nil)

		_, err := uc.Confirm(context.Background(), "apt-404", "admin-1")
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_Delete(t *testing.T) {
	t.Run("plain delete", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Appointment{ID: "apt-1", TutorID: "tutor-1"}, nil)
		m.appointments.EXPECT().Delete(gomock.Any(), "apt-1").Return(nil)

		if err := uc.Delete(context.Background(), "apt-1", "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("package-linked delete restores the unit atomically", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		a := entities.Appointment{ID: "apt-1", TutorID: "tutor-1", ServiceID: "svc-1", PackageID: "pkg-1"}
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(a, nil)
		m.appointments.EXPECT().DeleteRestoringUsage(gomock.Any(), a).Return(nil)

		if err := uc.Delete(context.Background(), "apt-1", "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-404").Return(entities.Appointment{}, nil)

		if err := uc.Delete(context.Background(), "apt-404", "admin-1"); err != nil {
			t.Fatalf("expected no-op, got %v", err)
		}
	})

	t.Run("tutor delete scoped to own appointments", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Appointment{ID: "apt-1", TutorID: "tutor-9"}, nil)

		// Someone else's booking: behaves like an absent id, nothing deleted.
		if err := uc.DeleteForTutor(context.Background(), "apt-1", "tutor-1"); err != nil {
			t.Fatalf("expected no-op, got %v", err)
		}
	})

	t.Run("transaction error surfaces", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		a := entities.Appointment{ID: "apt-1", TutorID: "tutor-1", PackageID: "pkg-1"}
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(a, nil)
		m.appointments.EXPECT().DeleteRestoringUsage(gomock.Any(), a).Return(errors.New("tx"))

		if err := uc.Delete(context.Background(), "apt-1", "admin-1"); err == nil || err.Error() != "tx" {
			t.Fatalf("expected tx error, got %v", err)
		}
	})
}

func TestBookingUseCase_AuditFailuresDoNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	pets := mock_interfaces.NewMockIPetRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	usage := mock_interfaces.NewMockIPackageUsageRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)

	uc := NewBookingUseCase(appointments, pets, catalog, usage, audit)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	pets.EXPECT().GetByID(gomock.Any(), "pet-1").Return(entities.Pet{ID: "pet-1", TutorID: "tutor-1"}, nil)
	appointments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.Appointment) (entities.Appointment, error) { return a, nil },
	)
	// The audit sink is down; the booking still goes through.
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("audit down")).AnyTimes()

	_, err := uc.Create(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("audit failure must not fail the operation: %v", err)
	}
}

func TestBookingUseCase_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Appointment{ID: "apt-1"}, nil)

		a, err := uc.GetByID(context.Background(), "apt-1")
		if err != nil || a.ID != "apt-1" {
			t.Fatalf("unexpected result: %+v %v", a, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.appointments.EXPECT().GetByID(gomock.Any(), "apt-404").Return(entities.Appointment{}, nil)

		_, err := uc.GetByID(context.Background(), "apt-404")
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}
