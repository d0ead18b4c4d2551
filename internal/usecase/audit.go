package usecase

import (
	"context"
	"log"
	"time"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Audit action labels. One entry is recorded per workflow attempt,
// success or failure.
const (
	auditAppointmentCreated      = "Appointment Created"
	auditAppointmentCreateFailed = "Appointment Create Failed"
	auditAppointmentUpdated      = "Appointment Updated"
	auditAppointmentUpdateFailed = "Appointment Update Failed"
	auditAppointmentConfirmed    = "Appointment Confirmed"
	auditAppointmentCancelled    = "Appointment Cancelled"
	auditAppointmentCompleted    = "Appointment Completed"
	auditAppointmentRejected     = "Appointment Rejected"
	auditAppointmentActionFailed = "Appointment Action Failed"
	auditAppointmentDeleted      = "Appointment Deleted"
	auditAppointmentDeleteFailed = "Appointment Delete Failed"

	auditServiceCreated  = "Service Created"
	auditPackageCreated  = "Package Created"
	auditPackageAssigned = "Package Assigned"
	auditCatalogOpFailed = "Catalog Action Failed"
)

// auditor writes the append-only audit trail best-effort: a failed append is
// reported to the operational log and never surfaces to the caller, so it
// cannot undo a business write that already committed.
type auditor struct {
	repo interfaces.IAuditLogRepository
}

func (a auditor) record(ctx context.Context, action, details, actorID string) {
	if a.repo == nil {
		return
	}
	entry := entities.AuditEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		ActorID:   actorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.repo.Append(ctx, entry); err != nil {
		log.Printf("[audit] append failed action=%q details=%q err=%v", action, details, err)
	}
}
