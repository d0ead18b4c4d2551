package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidScheduledAt = errors.New("invalid scheduled_at value")
)

// scheduledAtLayouts lists the accepted formats. The short form matches the
// datetime-local values sent by the admin front end.
var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// CreateAppointmentRequest is the payload of appointment creation. PackageID
// is optional; when present the booking consumes one session from the
// tutor's ledger.
type CreateAppointmentRequest struct {
	TutorID     string `json:"tutor_id" binding:"required"`
	PetID       string `json:"pet_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	PackageID   string `json:"package_id"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

// CreateHomeBookingRequest is the tutor-facing payload. The service travels
// as free text and taxi dog pickup can be requested.
type CreateHomeBookingRequest struct {
	PetID       string `json:"pet_id" binding:"required"`
	ServiceName string `json:"service_name" binding:"required"`
	TaxiDog     bool   `json:"taxi_dog"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

type UpdateAppointmentRequest struct {
	TutorID     string `json:"tutor_id" binding:"required"`
	PetID       string `json:"pet_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	PackageID   string `json:"package_id"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

type UpdateHomeBookingRequest struct {
	PetID       string `json:"pet_id" binding:"required"`
	ServiceName string `json:"service_name" binding:"required"`
	TaxiDog     bool   `json:"taxi_dog"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

// ResolveScheduledAt parses the scheduled time, trying each accepted layout.
func ResolveScheduledAt(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, ErrInvalidScheduledAt
	}
	for _, layout := range scheduledAtLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidScheduledAt
}

func (r CreateAppointmentRequest) ResolveScheduledAt() (time.Time, error) {
	return ResolveScheduledAt(r.ScheduledAt)
}

func (r CreateHomeBookingRequest) ResolveScheduledAt() (time.Time, error) {
	return ResolveScheduledAt(r.ScheduledAt)
}

func (r UpdateAppointmentRequest) ResolveScheduledAt() (time.Time, error) {
	return ResolveScheduledAt(r.ScheduledAt)
}

func (r UpdateHomeBookingRequest) ResolveScheduledAt() (time.Time, error) {
	return ResolveScheduledAt(r.ScheduledAt)
}
