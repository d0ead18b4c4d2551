package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrScheduleNotFuture    = errors.New("scheduled time must be in the future")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPetNotFound          = errors.New("pet not found")
	ErrPetNotOwnedByTutor   = errors.New("pet does not belong to tutor")
	ErrInvalidTransition    = errors.New("invalid action or status")
	ErrTutorNotInPackage    = errors.New("tutor not associated with package")
	ErrNoRemainingQuantity  = errors.New("no remaining quantity")
)

// CreateAppointmentCommand is the administrative booking request: a catalog
// service, optionally consuming one unit of a promotional package.
type CreateAppointmentCommand struct {
	TutorID     string
	PetID       string
	ServiceID   string
	PackageID   string
	ScheduledAt time.Time
	ActorID     string
}

// CreateHomeBookingCommand is the legacy tutor-facing request: a free-text
// service name plus a taxi-dog flag, never package-linked.
type CreateHomeBookingCommand struct {
	TutorID     string
	PetID       string
	ServiceName string
	TaxiDog     bool
	ScheduledAt time.Time
	ActorID     string
}

type UpdateAppointmentCommand struct {
	ID          string
	TutorID     string
	PetID       string
	ServiceID   string
	PackageID   string
	ScheduledAt time.Time
	ActorID     string
}

type UpdateHomeBookingCommand struct {
	ID          string
	TutorID     string
	PetID       string
	ServiceName string
	TaxiDog     bool
	ScheduledAt time.Time
	ActorID     string
}

// IBookingUseCase exposes the appointment workflow: creation, edit, the
// status transitions staff drive, and deletion with package reversal.
//
// Every attempt writes one audit entry, success or failure. All multi-item
// side effects (package consumption on create, package restore on delete)
// commit atomically with the appointment write or not at all.
type IBookingUseCase interface {
	Create(ctx context.Context, cmd CreateAppointmentCommand) (entities.Appointment, error)
	CreateHome(ctx context.Context, cmd CreateHomeBookingCommand) (entities.Appointment, error)
	Update(ctx context.Context, cmd UpdateAppointmentCommand) (entities.Appointment, error)
	UpdateHome(ctx context.Context, cmd UpdateHomeBookingCommand) (entities.Appointment, error)
	Confirm(ctx context.Context, id, actorID string) (entities.Appointment, error)
	Cancel(ctx context.Context, id, actorID string) (entities.Appointment, error)
	Complete(ctx context.Context, id, actorID string) (entities.Appointment, error)
	Reject(ctx context.Context, id, actorID string) (entities.Appointment, error)
	Delete(ctx context.Context, id, actorID string) error
	DeleteForTutor(ctx context.Context, id, tutorID string) error
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByTutor(ctx context.Context, tutorID string) ([]entities.Appointment, error)
	Filter(ctx context.Context, f interfaces.AppointmentFilter) ([]entities.Appointment, error)
}

type BookingUseCase struct {
	appointments interfaces.IAppointmentRepository
	pets         interfaces.IPetRepository
	catalog      interfaces.ICatalogRepository
	usage        interfaces.IPackageUsageRepository
	audit        auditor

	// now is swapped in tests to pin the future-time validation.
	now func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	appointments interfaces.IAppointmentRepository,
	pets interfaces.IPetRepository,
	catalog interfaces.ICatalogRepository,
	usage interfaces.IPackageUsageRepository,
	auditLog interfaces.IAuditLogRepository,
) *BookingUseCase {
	return &BookingUseCase{
		appointments: appointments,
		pets:         pets,
		catalog:      catalog,
		usage:        usage,
		audit:        auditor{repo: auditLog},
		now:          time.Now,
	}
}

func (u *BookingUseCase) Create(ctx context.Context, cmd CreateAppointmentCommand) (entities.Appointment, error) {
	cmd.TutorID = strings.TrimSpace(cmd.TutorID)
	cmd.PetID = strings.TrimSpace(cmd.PetID)
	cmd.ServiceID = strings.TrimSpace(cmd.ServiceID)
	cmd.PackageID = strings.TrimSpace(cmd.PackageID)

	if cmd.TutorID == "" || cmd.PetID == "" || cmd.ServiceID == "" || cmd.ScheduledAt.IsZero() {
		u.audit.record(ctx, auditAppointmentCreateFailed, "missing required fields", cmd.ActorID)
		return entities.Appointment{}, ErrMissingFields
	}
	if !cmd.ScheduledAt.After(u.now()) {
		u.audit.record(ctx, auditAppointmentCreateFailed, "scheduled time is not in the future", cmd.ActorID)
		return entities.Appointment{}, ErrScheduleNotFuture
	}
	if err := u.checkOwnership(ctx, cmd.PetID, cmd.TutorID, auditAppointmentCreateFailed, cmd.ActorID); err != nil {
		return entities.Appointment{}, err
	}

	now := u.now().UTC()
	a := entities.Appointment{
		ID:          uuid.NewString(),
		TutorID:     cmd.TutorID,
		PetID:       cmd.PetID,
		ServiceID:   cmd.ServiceID,
		ScheduledAt: cmd.ScheduledAt.UTC(),
		Status:      entities.AppointmentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if cmd.PackageID == "" {
		created, err := u.appointments.Create(ctx, a)
		if err != nil {
			u.audit.record(ctx, auditAppointmentCreateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
			return entities.Appointment{}, err
		}
		u.audit.record(ctx, auditAppointmentCreated,
			fmt.Sprintf("appointment_id=%s tutor_id=%s pet_id=%s service_id=%s", created.ID, cmd.TutorID, cmd.PetID, cmd.ServiceID),
			cmd.ActorID)
		return created, nil
	}

	associated, err := u.catalog.IsTutorAssociated(ctx, cmd.PackageID, cmd.TutorID)
	if err != nil {
		u.audit.record(ctx, auditAppointmentCreateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	if !associated {
		u.audit.record(ctx, auditAppointmentCreateFailed,
			fmt.Sprintf("tutor_id=%s not associated with package_id=%s", cmd.TutorID, cmd.PackageID), cmd.ActorID)
		return entities.Appointment{}, ErrTutorNotInPackage
	}

	balance, err := u.usage.Get(ctx, cmd.PackageID, cmd.TutorID, cmd.ServiceID)
	if err != nil {
		u.audit.record(ctx, auditAppointmentCreateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	if balance.PackageID == "" || balance.RemainingQuantity <= 0 {
		u.audit.record(ctx, auditAppointmentCreateFailed,
			fmt.Sprintf("no remaining quantity for package_id=%s tutor_id=%s service_id=%s", cmd.PackageID, cmd.TutorID, cmd.ServiceID),
			cmd.ActorID)
		return entities.Appointment{}, ErrNoRemainingQuantity
	}

	a.PackageID = cmd.PackageID
	created, err := u.appointments.CreateConsumingUsage(ctx, a)
	if err != nil {
		u.audit.record(ctx, auditAppointmentCreateFailed, fmt.Sprintf("transaction error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	if created.ID == "" {
		// Lost the race for the last unit: the conditional decrement
		// cancelled the transaction, nothing was written.
		log.Printf("[booking][usecase] package consumption raced out package_id=%s tutor_id=%s service_id=%s", cmd.PackageID, cmd.TutorID, cmd.ServiceID)
		u.audit.record(ctx, auditAppointmentCreateFailed,
			fmt.Sprintf("no remaining quantity for package_id=%s tutor_id=%s service_id=%s", cmd.PackageID, cmd.TutorID, cmd.ServiceID),
			cmd.ActorID)
		return entities.Appointment{}, ErrNoRemainingQuantity
	}
	u.audit.record(ctx, auditAppointmentCreated,
		fmt.Sprintf("appointment_id=%s tutor_id=%s pet_id=%s service_id=%s package_id=%s", created.ID, cmd.TutorID, cmd.PetID, cmd.ServiceID, cmd.PackageID),
		cmd.ActorID)
	return created, nil
}

func (u *BookingUseCase) CreateHome(ctx context.Context, cmd CreateHomeBookingCommand) (entities.Appointment, error) {
	cmd.TutorID = strings.TrimSpace(cmd.TutorID)
	cmd.PetID = strings.TrimSpace(cmd.PetID)
	cmd.ServiceName = strings.TrimSpace(cmd.ServiceName)

	if cmd.TutorID == "" || cmd.PetID == "" || cmd.ServiceName == "" || cmd.ScheduledAt.IsZero() {
		u.audit.record(ctx, auditAppointmentCreateFailed, "missing required fields", cmd.ActorID)
		return entities.Appointment{}, ErrMissingFields
	}
	if !cmd.ScheduledAt.After(u.now()) {
		u.audit.record(ctx, auditAppointmentCreateFailed, "scheduled time is not in the future", cmd.ActorID)
		return entities.Appointment{}, ErrScheduleNotFuture
	}
	if err := u.checkOwnership(ctx, cmd.PetID, cmd.TutorID, auditAppointmentCreateFailed, cmd.ActorID); err != nil {
		return entities.Appointment{}, err
	}

	now := u.now().UTC()
	a := entities.Appointment{
		ID:          uuid.NewString(),
		TutorID:     cmd.TutorID,
		PetID:       cmd.PetID,
		ServiceName: cmd.ServiceName,
		TaxiDog:     cmd.TaxiDog,
		ScheduledAt: cmd.ScheduledAt.UTC(),
		Status:      entities.AppointmentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.appointments.Create(ctx, a)
	if err != nil {
		u.audit.record(ctx, auditAppointmentCreateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	u.audit.record(ctx, auditAppointmentCreated,
		fmt.Sprintf("appointment_id=%s tutor_id=%s pet_id=%s service=%q", created.ID, cmd.TutorID, cmd.PetID, cmd.ServiceName),
		cmd.ActorID)
	return created, nil
}

// Update is a plain field update. Package balances are not re-checked or
// adjusted on edit, even when the service or package changed.
func (u *BookingUseCase) Update(ctx context.Context, cmd UpdateAppointmentCommand) (entities.Appointment, error) {
	cmd.ID = strings.TrimSpace(cmd.ID)
	cmd.TutorID = strings.TrimSpace(cmd.TutorID)
	cmd.PetID = strings.TrimSpace(cmd.PetID)
	cmd.ServiceID = strings.TrimSpace(cmd.ServiceID)
	cmd.PackageID = strings.TrimSpace(cmd.PackageID)

	if cmd.ID == "" {
		u.audit.record(ctx, auditAppointmentUpdateFailed, "invalid appointment id", cmd.ActorID)
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	if cmd.TutorID == "" || cmd.PetID == "" || cmd.ServiceID == "" || cmd.ScheduledAt.IsZero() {
		u.audit.record(ctx, auditAppointmentUpdateFailed, "missing required fields", cmd.ActorID)
		return entities.Appointment{}, ErrMissingFields
	}
	if !cmd.ScheduledAt.After(u.now()) {
		u.audit.record(ctx, auditAppointmentUpdateFailed, "scheduled time is not in the future", cmd.ActorID)
		return entities.Appointment{}, ErrScheduleNotFuture
	}
	if err := u.checkOwnership(ctx, cmd.PetID, cmd.TutorID, auditAppointmentUpdateFailed, cmd.ActorID); err != nil {
		return entities.Appointment{}, err
	}

	existing, err := u.appointments.GetByID(ctx, cmd.ID)
	if err != nil {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	if existing.ID == "" {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("appointment_id=%s not found", cmd.ID), cmd.ActorID)
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	existing.TutorID = cmd.TutorID
	existing.PetID = cmd.PetID
	existing.ServiceID = cmd.ServiceID
	existing.PackageID = cmd.PackageID
	existing.ScheduledAt = cmd.ScheduledAt.UTC()
	existing.UpdatedAt = u.now().UTC()

	updated, err := u.appointments.UpdateFields(ctx, existing)
	if err != nil {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("appointment_id=%s not found", cmd.ID), cmd.ActorID)
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	u.audit.record(ctx, auditAppointmentUpdated,
		fmt.Sprintf("appointment_id=%s tutor_id=%s pet_id=%s service_id=%s", updated.ID, cmd.TutorID, cmd.PetID, cmd.ServiceID),
		cmd.ActorID)
	return updated, nil
}

func (u *BookingUseCase) UpdateHome(ctx context.Context, cmd UpdateHomeBookingCommand) (entities.Appointment, error) {
	cmd.ID = strings.TrimSpace(cmd.ID)
	cmd.TutorID = strings.TrimSpace(cmd.TutorID)
	cmd.PetID = strings.TrimSpace(cmd.PetID)
	cmd.ServiceName = strings.TrimSpace(cmd.ServiceName)

	if cmd.ID == "" {
		u.audit.record(ctx, auditAppointmentUpdateFailed, "invalid appointment id", cmd.ActorID)
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	if cmd.TutorID == "" || cmd.PetID == "" || cmd.ServiceName == "" || cmd.ScheduledAt.IsZero() {
		u.audit.record(ctx, auditAppointmentUpdateFailed, "missing required fields", cmd.ActorID)
		return entities.Appointment{}, ErrMissingFields
	}
	if !cmd.ScheduledAt.After(u.now()) {
		u.audit.record(ctx, auditAppointmentUpdateFailed, "scheduled time is not in the future", cmd.ActorID)
		return entities.Appointment{}, ErrScheduleNotFuture
	}
	if err := u.checkOwnership(ctx, cmd.PetID, cmd.TutorID, auditAppointmentUpdateFailed, cmd.ActorID); err != nil {
		return entities.Appointment{}, err
	}

	existing, err := u.appointments.GetByID(ctx, cmd.ID)
	if err != nil {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	// The home path is tutor-scoped: an id owned by someone else reads as
	// not found, it never leaks the other tutor's booking.
	if existing.ID == "" || existing.TutorID != cmd.TutorID {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("appointment_id=%s not found for tutor", cmd.ID), cmd.ActorID)
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	existing.PetID = cmd.PetID
	existing.ServiceName = cmd.ServiceName
	existing.TaxiDog = cmd.TaxiDog
	existing.ScheduledAt = cmd.ScheduledAt.UTC()
	existing.UpdatedAt = u.now().UTC()

	updated, err := u.appointments.UpdateFields(ctx, existing)
	if err != nil {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("storage error: %v", err), cmd.ActorID)
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		u.audit.record(ctx, auditAppointmentUpdateFailed, fmt.Sprintf("appointment_id=%s not found", cmd.ID), cmd.ActorID)
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	u.audit.record(ctx, auditAppointmentUpdated,
		fmt.Sprintf("appointment_id=%s pet_id=%s service=%q", updated.ID, cmd.PetID, cmd.ServiceName), cmd.ActorID)
	return updated, nil
}

func (u *BookingUseCase) Confirm(ctx context.Context, id, actorID string) (entities.Appointment, error) {
	return u.transition(ctx, id, actorID, entities.AppointmentStatusConfirmed, auditAppointmentConfirmed)
}

func (u *BookingUseCase) Cancel(ctx context.Context, id, actorID string) (entities.Appointment, error) {
	return u.transition(ctx, id, actorID, entities.AppointmentStatusCancelled, auditAppointmentCancelled)
}

func (u *BookingUseCase) Complete(ctx context.Context, id, actorID string) (entities.Appointment, error) {
	return u.transition(ctx, id, actorID, entities.AppointmentStatusCompleted, auditAppointmentCompleted)
}

// Reject is unconditional: it lands from any current status, including
// terminal ones. Only a missing appointment fails it.
func (u *BookingUseCase) Reject(ctx context.Context, id, actorID string) (entities.Appointment, error) {
	return u.transition(ctx, id, actorID, entities.AppointmentStatusRejected, auditAppointmentRejected)
}

func (u *BookingUseCase) transition(ctx context.Context, id, actorID string, target entities.AppointmentStatus, action string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		u.audit.record(ctx, auditAppointmentActionFailed, "invalid appointment id", actorID)
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	current, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		u.audit.record(ctx, auditAppointmentActionFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.Appointment{}, err
	}
	if current.ID == "" {
		u.audit.record(ctx, auditAppointmentActionFailed, fmt.Sprintf("appointment_id=%s not found", id), actorID)
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	if !current.Status.CanTransition(target) {
		u.audit.record(ctx, auditAppointmentActionFailed,
			fmt.Sprintf("invalid action or status: appointment_id=%s status=%s target=%s", id, current.Status, target), actorID)
		return entities.Appointment{}, ErrInvalidTransition
	}

	updated, err := u.appointments.UpdateStatus(ctx, id, target)
	if err != nil {
		u.audit.record(ctx, auditAppointmentActionFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		u.audit.record(ctx, auditAppointmentActionFailed, fmt.Sprintf("appointment_id=%s not found", id), actorID)
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	u.audit.record(ctx, action, fmt.Sprintf("appointment_id=%s", id), actorID)
	return updated, nil
}

// Delete removes an appointment. A package-linked booking gives its unit
// back to the ledger in the same transaction as the delete. Deleting an id
// that does not exist is a safe no-op.
func (u *BookingUseCase) Delete(ctx context.Context, id, actorID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		u.audit.record(ctx, auditAppointmentDeleteFailed, "invalid appointment id", actorID)
		return ErrInvalidAppointmentID
	}

	a, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		u.audit.record(ctx, auditAppointmentDeleteFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return err
	}
	if a.ID == "" {
		u.audit.record(ctx, auditAppointmentDeleted, fmt.Sprintf("appointment_id=%s already absent", id), actorID)
		return nil
	}
	return u.delete(ctx, a, actorID)
}

// DeleteForTutor is the tutor-facing cancel-by-delete path. Ids owned by a
// different tutor behave exactly like absent ids.
func (u *BookingUseCase) DeleteForTutor(ctx context.Context, id, tutorID string) error {
	id = strings.TrimSpace(id)
	tutorID = strings.TrimSpace(tutorID)
	if id == "" || tutorID == "" {
		u.audit.record(ctx, auditAppointmentDeleteFailed, "invalid appointment id", tutorID)
		return ErrInvalidAppointmentID
	}

	a, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		u.audit.record(ctx, auditAppointmentDeleteFailed, fmt.Sprintf("storage error: %v", err), tutorID)
		return err
	}
	if a.ID == "" || a.TutorID != tutorID {
		u.audit.record(ctx, auditAppointmentDeleted, fmt.Sprintf("appointment_id=%s already absent", id), tutorID)
		return nil
	}
	return u.delete(ctx, a, tutorID)
}

func (u *BookingUseCase) delete(ctx context.Context, a entities.Appointment, actorID string) error {
	if a.UsesPackage() {
		if err := u.appointments.DeleteRestoringUsage(ctx, a); err != nil {
			u.audit.record(ctx, auditAppointmentDeleteFailed, fmt.Sprintf("transaction error: %v", err), actorID)
			return err
		}
		u.audit.record(ctx, auditAppointmentDeleted,
			fmt.Sprintf("appointment_id=%s package_id=%s quantity restored", a.ID, a.PackageID), actorID)
		return nil
	}
	if err := u.appointments.Delete(ctx, a.ID); err != nil {
		u.audit.record(ctx, auditAppointmentDeleteFailed, fmt.Sprintf("storage error: %v", err), actorID)
		return err
	}
	u.audit.record(ctx, auditAppointmentDeleted, fmt.Sprintf("appointment_id=%s", a.ID), actorID)
	return nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	a, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *BookingUseCase) ListByTutor(ctx context.Context, tutorID string) ([]entities.Appointment, error) {
	tutorID = strings.TrimSpace(tutorID)
	if tutorID == "" {
		return nil, ErrMissingFields
	}
	return u.appointments.ListByTutor(ctx, tutorID)
}

func (u *BookingUseCase) Filter(ctx context.Context, f interfaces.AppointmentFilter) ([]entities.Appointment, error) {
	return u.appointments.Filter(ctx, f)
}

// checkOwnership verifies that the pet exists and belongs to the tutor,
// auditing the reason when it does not.
func (u *BookingUseCase) checkOwnership(ctx context.Context, petID, tutorID, failAction, actorID string) error {
	pet, err := u.pets.GetByID(ctx, petID)
	if err != nil {
		u.audit.record(ctx, failAction, fmt.Sprintf("storage error: %v", err), actorID)
		return err
	}
	if pet.ID == "" {
		u.audit.record(ctx, failAction, fmt.Sprintf("pet_id=%s not found", petID), actorID)
		return ErrPetNotFound
	}
	if !pet.BelongsTo(tutorID) {
		u.audit.record(ctx, failAction, fmt.Sprintf("pet_id=%s does not belong to tutor_id=%s", petID, tutorID), actorID)
		return ErrPetNotOwnedByTutor
	}
	return nil
}
