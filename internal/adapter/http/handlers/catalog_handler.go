package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "petslove_booking/internal/adapter/http/dto/request"
	response "petslove_booking/internal/adapter/http/dto/response"
	"petslove_booking/internal/usecase"
	"petslove_booking/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles the administrative catalog surface: services,
// promotional packages and package assignment.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateService(c.Request.Context(), payload.Name, price, c.GetHeader(actorIDHeader))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(items))
}

func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var payload request.CreatePackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePromotionalPrice()
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePackage(c.Request.Context(), payload.Name, payload.ServiceID, payload.Quantity, price, c.GetHeader(actorIDHeader))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPackage(created))
}

func (h *CatalogHandler) ListPackages(c *gin.Context) {
	items, err := h.usecase.ListPackages(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackages(items))
}

// AssignPackage links a tutor to a package and returns the seeded ledger
// entry.
func (h *CatalogHandler) AssignPackage(c *gin.Context) {
	var payload request.AssignPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	usageEntry, err := h.usecase.AssignPackageToTutor(c.Request.Context(), c.Param("id"), payload.TutorID, c.GetHeader(actorIDHeader))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPackageUsage(usageEntry))
}

func (h *CatalogHandler) ListTutorPackages(c *gin.Context) {
	items, err := h.usecase.ListPackagesByTutor(c.Request.Context(), c.Param("tutor_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackages(items))
}

func (h *CatalogHandler) ListTutorPets(c *gin.Context) {
	items, err := h.usecase.ListPetsByTutor(c.Request.Context(), c.Param("tutor_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPets(items))
}

func (h *CatalogHandler) ListTutorUsage(c *gin.Context) {
	items, err := h.usecase.ListUsageByTutor(c.Request.Context(), c.Param("tutor_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackageUsages(items))
}

func (h *CatalogHandler) ListAuditLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.usecase.ListAuditEntries(c.Request.Context(), limit)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEntries(items))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceInput), errors.Is(err, usecase.ErrInvalidPackageInput), errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyAssociated):
		return pkg.NewDomainErrorSimple("ALREADY_ASSOCIATED", "Tutor already associated with this package", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
