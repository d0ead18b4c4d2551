package routes

import (
	"petslove_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathServices     = "/services"
	PathPackages     = "/packages"
	PathTutors       = "/tutors"
	PathAuditLog     = "/audit-log"
)

func addBookingRoutes(rg *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler, catalogHandler *handlers.CatalogHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
		appointments.PATCH("/:id/confirm", appointmentHandler.ConfirmAppointment)
		appointments.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
		appointments.PATCH("/:id/complete", appointmentHandler.CompleteAppointment)
		appointments.PATCH("/:id/reject", appointmentHandler.RejectAppointment)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", catalogHandler.CreateService)
		services.GET("", catalogHandler.ListServices)
	}

	packages := rg.Group(PathPackages)
	{
		packages.POST("", catalogHandler.CreatePackage)
		packages.GET("", catalogHandler.ListPackages)
		packages.POST("/:id/tutors", catalogHandler.AssignPackage)
	}

	// Tutor-scoped booking surface used by the home front end.
	tutors := rg.Group(PathTutors)
	{
		tutors.GET("/:tutor_id/pets", catalogHandler.ListTutorPets)
		tutors.GET("/:tutor_id/packages", catalogHandler.ListTutorPackages)
		tutors.GET("/:tutor_id/package-usage", catalogHandler.ListTutorUsage)
		tutors.POST("/:tutor_id/appointments", appointmentHandler.CreateHomeBooking)
		tutors.GET("/:tutor_id/appointments", appointmentHandler.ListHomeBookings)
		tutors.PUT("/:tutor_id/appointments/:id", appointmentHandler.UpdateHomeBooking)
		tutors.DELETE("/:tutor_id/appointments/:id", appointmentHandler.DeleteHomeBooking)
	}

	rg.GET(PathAuditLog, catalogHandler.ListAuditLog)
}
