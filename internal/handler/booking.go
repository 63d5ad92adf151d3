package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

// The session header identifies one in-progress booking across requests
// and reloads. The server mints an id when the client has none and echoes
// it back on every response.
const sessionHeader = "X-Booking-Session"

// BookingHandler handles HTTP requests for the booking wizard.
type BookingHandler struct {
	bookingService     *service.BookingService
	pricingService     *service.PricingService
	reservationService *service.ReservationService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(
	bookingService *service.BookingService,
	pricingService *service.PricingService,
	reservationService *service.ReservationService,
) *BookingHandler {
	return &BookingHandler{
		bookingService:     bookingService,
		pricingService:     pricingService,
		reservationService: reservationService,
	}
}

// sessionID returns the request's booking session id, minting one if absent,
// and echoes it on the response.
func sessionID(c *gin.Context) string {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Header(sessionHeader, id)
	return id
}

// BookingResponse is the wizard state returned after every operation: the
// full selection plus the derived price breakdown.
type BookingResponse struct {
	Selection *domain.BookingSelection `json:"selection"`
	Quote     service.PriceBreakdown   `json:"quote"`
}

func (h *BookingHandler) respondBooking(c *gin.Context, code int, sel *domain.BookingSelection) {
	respondJSON(c, code, BookingResponse{
		Selection: sel,
		Quote:     h.pricingService.Breakdown(sel),
	})
}

// GetBooking handles GET /v1/booking
func (h *BookingHandler) GetBooking(c *gin.Context) {
	sel, err := h.bookingService.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SearchParamsRequest is the HTTP request body for seeding search fields.
// Omitted fields are left untouched.
type SearchParamsRequest struct {
	PickupLocationID *string `json:"pickup_location_id"`
	ReturnLocationID *string `json:"return_location_id"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
}

// SetSearchParams handles PUT /v1/booking/search
func (h *BookingHandler) SetSearchParams(c *gin.Context) {
	var req SearchParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetSearchParams(c.Request.Context(), sessionID(c), domain.SearchParams{
		PickupLocationID: req.PickupLocationID,
		ReturnLocationID: req.ReturnLocationID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SelectVehicleRequest is the HTTP request body for selecting a vehicle.
type SelectVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// SelectVehicle handles PUT /v1/booking/vehicle
func (h *BookingHandler) SelectVehicle(c *gin.Context) {
	var req SelectVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VehicleID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SelectVehicle(c.Request.Context(), sessionID(c), req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// ClearVehicle handles DELETE /v1/booking/vehicle
func (h *BookingHandler) ClearVehicle(c *gin.Context) {
	sel, err := h.bookingService.ClearVehicle(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SetPaymentOption handles PUT /v1/booking/payment-option
func (h *BookingHandler) SetPaymentOption(c *gin.Context) {
	var req struct {
		PaymentOption string `json:"payment_option"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetPaymentOption(c.Request.Context(), sessionID(c), domain.PaymentOption(req.PaymentOption))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SetMileageOption handles PUT /v1/booking/mileage-option
func (h *BookingHandler) SetMileageOption(c *gin.Context) {
	var req struct {
		MileageOption string `json:"mileage_option"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetMileageOption(c.Request.Context(), sessionID(c), domain.MileageOption(req.MileageOption))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SetProtectionLevel handles PUT /v1/booking/protection
func (h *BookingHandler) SetProtectionLevel(c *gin.Context) {
	var req struct {
		ProtectionLevel string `json:"protection_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetProtectionLevel(c.Request.Context(), sessionID(c), domain.ProtectionLevel(req.ProtectionLevel))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// ToggleOption handles POST /v1/booking/options/:id/toggle
func (h *BookingHandler) ToggleOption(c *gin.Context) {
	optionID := domain.OptionID(c.Param("id"))

	sel, err := h.bookingService.ToggleOption(c.Request.Context(), sessionID(c), optionID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// DriverInfoRequest is the HTTP request body for updating the driver
// record. Omitted fields are left untouched.
type DriverInfoRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	CountryCode      *string `json:"country_code"`
	IsOver25         *bool   `json:"is_over_25"`
	HasLicense2Years *bool   `json:"has_license_2_years"`
}

// SetDriverInfo handles PUT /v1/booking/driver
func (h *BookingHandler) SetDriverInfo(c *gin.Context) {
	var req DriverInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetDriverInfo(c.Request.Context(), sessionID(c), domain.DriverInfoUpdate{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		CountryCode:      req.CountryCode,
		IsOver25:         req.IsOver25,
		HasLicense2Years: req.HasLicense2Years,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SetPaymentMethod handles PUT /v1/booking/payment-method
func (h *BookingHandler) SetPaymentMethod(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetPaymentMethod(c.Request.Context(), sessionID(c), domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// NextStep handles POST /v1/booking/next
func (h *BookingHandler) NextStep(c *gin.Context) {
	sel, err := h.bookingService.NextStep(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// PrevStep handles POST /v1/booking/prev
func (h *BookingHandler) PrevStep(c *gin.Context) {
	sel, err := h.bookingService.PrevStep(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// SetStep handles PUT /v1/booking/step
func (h *BookingHandler) SetStep(c *gin.Context) {
	var req struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sel, err := h.bookingService.SetStep(c.Request.Context(), sessionID(c), domain.Step(req.Step))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, sel)
}

// GetQuote handles GET /v1/booking/quote
func (h *BookingHandler) GetQuote(c *gin.Context) {
	sel, err := h.bookingService.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, h.pricingService.Breakdown(sel))
}

// SubmitResponse is the HTTP response for a successful reservation submission.
type SubmitResponse struct {
	ReservationID string  `json:"reservation_id"`
	Status        string  `json:"status"`
	TotalPrice    float64 `json:"total_price"`
}

// Submit handles POST /v1/booking/submit
func (h *BookingHandler) Submit(c *gin.Context) {
	res, err := h.reservationService.Submit(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, SubmitResponse{
		ReservationID: res.ID,
		Status:        string(res.Status),
		TotalPrice:    res.TotalPrice,
	})
}

// ResetBooking handles DELETE /v1/booking
func (h *BookingHandler) ResetBooking(c *gin.Context) {
	if err := h.bookingService.Clear(c.Request.Context(), sessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
