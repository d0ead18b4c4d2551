package entities

import "time"

// AppointmentStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - Appointments are created pending and moved by staff actions.
//   - cancelled, completed and rejected are terminal.
//   - reject is an administrative override and is not gated on the
//     current status, unlike confirm/cancel/complete.

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
)

// allowedTransitions gates confirm/cancel/complete. Reject is handled
// separately because it is unconditional.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// CanTransition reports whether moving from to target is a legal staff action.
func (s AppointmentStatus) CanTransition(target AppointmentStatus) bool {
	if target == AppointmentStatusRejected {
		return true
	}
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further confirm/cancel/complete applies.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCancelled || s == AppointmentStatusCompleted || s == AppointmentStatusRejected
}

// Appointment is a grooming booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tutor_id-index): tutor_id
//
// Two creation paths exist:
//   - the administrative path references a catalog service (ServiceID) and
//     may consume a promotional package (PackageID);
//   - the legacy home path stores a free-text ServiceName plus a taxi-dog
//     flag and never touches packages.
type Appointment struct {
	ID          string            `json:"id"`
	TutorID     string            `json:"tutor_id"`
	PetID       string            `json:"pet_id"`
	ServiceID   string            `json:"service_id,omitempty"`
	ServiceName string            `json:"service_name,omitempty"`
	TaxiDog     bool              `json:"taxi_dog,omitempty"`
	PackageID   string            `json:"package_id,omitempty"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// UsesPackage reports whether this booking consumed a package unit.
func (a Appointment) UsesPackage() bool {
	return a.PackageID != ""
}
