package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petslove_booking/internal/adapter/http/handlers/mocks"
	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAppointmentRouter(h *AppointmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/appointments", h.CreateAppointment)
	r.GET("/v1/appointments", h.ListAppointments)
	r.GET("/v1/appointments/:id", h.GetAppointment)
	r.PUT("/v1/appointments/:id", h.UpdateAppointment)
	r.DELETE("/v1/appointments/:id", h.DeleteAppointment)
	r.PATCH("/v1/appointments/:id/confirm", h.ConfirmAppointment)
	r.PATCH("/v1/appointments/:id/reject", h.RejectAppointment)
	r.POST("/v1/tutors/:tutor_id/appointments", h.CreateHomeBooking)
	r.DELETE("/v1/tutors/:tutor_id/appointments/:id", h.DeleteHomeBooking)
	return r
}

func TestAppointmentHandler_CreateAppointment(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString("{"))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid scheduled_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		body, _ := json.Marshal(map[string]any{
			"tutor_id": "tutor-1", "pet_id": "pet-1", "service_id": "svc-1", "scheduled_at": "amanha",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateAppointmentCommand{})).DoAndReturn(
			func(_ any, cmd usecase.CreateAppointmentCommand) (entities.Appointment, error) {
				if cmd.ActorID != "admin-7" || cmd.PackageID != "pkg-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Appointment{ID: "apt-1", Status: entities.AppointmentStatusPending}, nil
			},
		)

		body, _ := json.Marshal(map[string]any{
			"tutor_id":     "tutor-1",
			"pet_id":       "pet-1",
			"service_id":   "svc-1",
			"package_id":   "pkg-1",
			"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBuffer(body))
		req.Header.Set("X-Actor-ID", "admin-7")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "apt-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("no remaining quantity maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, usecase.ErrNoRemainingQuantity)

		body, _ := json.Marshal(map[string]any{
			"tutor_id": "tutor-1", "pet_id": "pet-1", "service_id": "svc-1", "package_id": "pkg-1",
			"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_StatusActions(t *testing.T) {
	t.Run("confirm ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().Confirm(gomock.Any(), "apt-1", "admin-1").
			Return(entities.Appointment{ID: "apt-1", Status: entities.AppointmentStatusConfirmed}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/apt-1/confirm", nil)
		req.Header.Set("X-Actor-ID", "admin-1")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().Confirm(gomock.Any(), "apt-1", gomock.Any()).
			Return(entities.Appointment{}, usecase.ErrInvalidTransition)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/apt-1/confirm", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error body: %v", resp)
		}
	})

	t.Run("reject not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().Reject(gomock.Any(), "apt-404", gomock.Any()).
			Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/apt-404/reject", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	r := newAppointmentRouter(NewAppointmentHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), "apt-1", "admin-1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/appointments/apt-1", nil)
	req.Header.Set("X-Actor-ID", "admin-1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	t.Run("filters parsed from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().Filter(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, f any) ([]entities.Appointment, error) {
				return []entities.Appointment{{ID: "apt-1"}}, nil
			},
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/appointments?from=2025-06-01&to=2025-06-30&status=pending", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad from value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/appointments?from=ontem", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_HomeBooking(t *testing.T) {
	t.Run("create uses tutor from path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().CreateHome(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateHomeBookingCommand{})).DoAndReturn(
			func(_ any, cmd usecase.CreateHomeBookingCommand) (entities.Appointment, error) {
				if cmd.TutorID != "tutor-1" || cmd.ServiceName != "tosa completa" || !cmd.TaxiDog {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Appointment{ID: "apt-1"}, nil
			},
		)

		body, _ := json.Marshal(map[string]any{
			"pet_id":       "pet-1",
			"service_name": "tosa completa",
			"taxi_dog":     true,
			"scheduled_at": "2025-07-01T15:04",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tutors/tutor-1/appointments", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("delete scoped to tutor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newAppointmentRouter(NewAppointmentHandler(uc))

		uc.EXPECT().DeleteForTutor(gomock.Any(), "apt-1", "tutor-1").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/tutors/tutor-1/appointments/apt-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
