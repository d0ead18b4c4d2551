package interfaces

import (
	"context"
	"time"

	"petslove_booking/internal/domain/entities"
)

// AppointmentFilter narrows administrative listings. Zero values mean
// "no constraint" for the corresponding field.
type AppointmentFilter struct {
	From    time.Time
	To      time.Time
	Status  entities.AppointmentStatus
	TutorID string
}

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// Not-found convention: reads and single-row updates return a zero-value
// Appointment with a nil error when the id does not exist.
//
// The two *Usage methods are the only multi-item writes in the system and
// must be a single DynamoDB transaction:
//   - CreateConsumingUsage puts the appointment and decrements the matching
//     package usage entry, conditioned on remaining_quantity > 0. A
//     transaction cancelled by that condition returns a zero-value
//     Appointment with a nil error so the caller can report exhaustion.
//   - DeleteRestoringUsage removes the appointment and increments the usage
//     entry back.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	CreateConsumingUsage(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	UpdateFields(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	DeleteRestoringUsage(ctx context.Context, a entities.Appointment) error
	ListByTutor(ctx context.Context, tutorID string) ([]entities.Appointment, error)
	Filter(ctx context.Context, f AppointmentFilter) ([]entities.Appointment, error)
}
