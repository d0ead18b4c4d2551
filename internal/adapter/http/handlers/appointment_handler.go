package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	request "petslove_booking/internal/adapter/http/dto/request"
	response "petslove_booking/internal/adapter/http/dto/response"
	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase"
	"petslove_booking/internal/usecase/interfaces"
	"petslove_booking/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

const actorIDHeader = "X-Actor-ID"

// AppointmentHandler handles HTTP requests for the booking workflow. The
// /appointments routes are staff-facing, the /tutors routes are the
// tutor-scoped booking surface.

type AppointmentHandler struct {
	usecase usecase.IBookingUseCase
}

func NewAppointmentHandler(uc usecase.IBookingUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	scheduledAt, err := payload.ResolveScheduledAt()
	if err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateAppointmentCommand{
		TutorID:     payload.TutorID,
		PetID:       payload.PetID,
		ServiceID:   payload.ServiceID,
		PackageID:   payload.PackageID,
		ScheduledAt: scheduledAt,
		ActorID:     c.GetHeader(actorIDHeader),
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var payload request.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	scheduledAt, err := payload.ResolveScheduledAt()
	if err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), usecase.UpdateAppointmentCommand{
		ID:          c.Param("id"),
		TutorID:     payload.TutorID,
		PetID:       payload.PetID,
		ServiceID:   payload.ServiceID,
		PackageID:   payload.PackageID,
		ScheduledAt: scheduledAt,
		ActorID:     c.GetHeader(actorIDHeader),
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.patchAppointmentStatus(c, h.usecase.Confirm)
}

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.patchAppointmentStatus(c, h.usecase.Cancel)
}

func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.patchAppointmentStatus(c, h.usecase.Complete)
}

func (h *AppointmentHandler) RejectAppointment(c *gin.Context) {
	h.patchAppointmentStatus(c, h.usecase.Reject)
}

func (h *AppointmentHandler) patchAppointmentStatus(
	c *gin.Context,
	updater func(ctx context.Context, id, actorID string) (entities.Appointment, error),
) {
	updated, err := updater(c.Request.Context(), c.Param("id"), c.GetHeader(actorIDHeader))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), c.GetHeader(actorIDHeader)); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// ListAppointments filters the staff agenda by scheduled window, status and
// tutor. All query parameters are optional.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	f := interfaces.AppointmentFilter{
		Status:  entities.AppointmentStatus(strings.TrimSpace(c.Query("status"))),
		TutorID: strings.TrimSpace(c.Query("tutor_id")),
	}

	var err error
	if f.From, err = parseFilterTime(c.Query("from")); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	if f.To, err = parseFilterTime(c.Query("to")); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.Filter(c.Request.Context(), f)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(items))
}

func (h *AppointmentHandler) CreateHomeBooking(c *gin.Context) {
	var payload request.CreateHomeBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	scheduledAt, err := payload.ResolveScheduledAt()
	if err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	tutorID := c.Param("tutor_id")
	created, err := h.usecase.CreateHome(c.Request.Context(), usecase.CreateHomeBookingCommand{
		TutorID:     tutorID,
		PetID:       payload.PetID,
		ServiceName: payload.ServiceName,
		TaxiDog:     payload.TaxiDog,
		ScheduledAt: scheduledAt,
		ActorID:     tutorID,
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func (h *AppointmentHandler) UpdateHomeBooking(c *gin.Context) {
	var payload request.UpdateHomeBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	scheduledAt, err := payload.ResolveScheduledAt()
	if err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	tutorID := c.Param("tutor_id")
	updated, err := h.usecase.UpdateHome(c.Request.Context(), usecase.UpdateHomeBookingCommand{
		ID:          c.Param("id"),
		TutorID:     tutorID,
		PetID:       payload.PetID,
		ServiceName: payload.ServiceName,
		TaxiDog:     payload.TaxiDog,
		ScheduledAt: scheduledAt,
		ActorID:     tutorID,
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) DeleteHomeBooking(c *gin.Context) {
	if err := h.usecase.DeleteForTutor(c.Request.Context(), c.Param("id"), c.Param("tutor_id")); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) ListHomeBookings(c *gin.Context) {
	items, err := h.usecase.ListByTutor(c.Request.Context(), c.Param("tutor_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(items))
}

func parseFilterTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields), errors.Is(err, usecase.ErrInvalidAppointmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduleNotFuture):
		return pkg.NewDomainErrorSimple("SCHEDULE_NOT_FUTURE", "Scheduled time must be in the future", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPetNotFound):
		return pkg.NewDomainErrorSimple("PET_NOT_FOUND", "Pet not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPetNotOwnedByTutor):
		return pkg.NewDomainErrorSimple("PET_NOT_OWNED", "Pet does not belong to tutor", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid action or status", http.StatusConflict)
	case errors.Is(err, usecase.ErrTutorNotInPackage):
		return pkg.NewDomainErrorSimple("TUTOR_NOT_IN_PACKAGE", "Tutor is not associated with this package", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoRemainingQuantity):
		return pkg.NewDomainErrorSimple("NO_REMAINING_QUANTITY", "Package has no remaining quantity", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
