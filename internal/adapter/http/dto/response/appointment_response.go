package response

import (
	"time"

	"petslove_booking/internal/domain/entities"
)

type AppointmentResponse struct {
	ID          string    `json:"id"`
	TutorID     string    `json:"tutor_id"`
	PetID       string    `json:"pet_id"`
	ServiceID   string    `json:"service_id,omitempty"`
	ServiceName string    `json:"service_name,omitempty"`
	TaxiDog     bool      `json:"taxi_dog"`
	PackageID   string    `json:"package_id,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		TutorID:     a.TutorID,
		PetID:       a.PetID,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		TaxiDog:     a.TaxiDog,
		PackageID:   a.PackageID,
		ScheduledAt: a.ScheduledAt,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromAppointments(items []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAppointment(a))
	}
	return out
}
