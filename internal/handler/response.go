package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidSessionID),
		errors.Is(err, service.ErrUnknownOption),
		errors.Is(err, service.ErrInvalidPaymentOption),
		errors.Is(err, service.ErrInvalidMileageOption),
		errors.Is(err, service.ErrInvalidProtectionLevel),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidReservationID):
		return http.StatusBadRequest

	// Step gates and lifecycle conflicts
	case errors.Is(err, service.ErrVehicleNotSelected),
		errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrDriverInfoIncomplete),
		errors.Is(err, service.ErrNoRentalPeriod),
		errors.Is(err, service.ErrReservationLocked),
		errors.Is(err, service.ErrReservationAlreadyCancelled),
		errors.Is(err, service.ErrReservationCompleted),
		errors.Is(err, service.ErrCancellationWindowClosed):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
