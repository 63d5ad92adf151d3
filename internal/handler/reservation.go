package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

// ReservationHandler handles guest access to submitted reservations.
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ManageRequest is the HTTP request body for guest reservation management.
// Action is one of "get", "update", "cancel"; Updates only applies to
// "update" and is restricted to guest-editable fields.
type ManageRequest struct {
	ReservationID string `json:"reservation_id"`
	Email         string `json:"email"`
	Action        string `json:"action"`
	Updates       *struct {
		GuestName  *string `json:"guest_name"`
		GuestPhone *string `json:"guest_phone"`
		Notes      *string `json:"notes"`
	} `json:"updates"`
}

// ReservationView is the guest-facing projection of a reservation.
type ReservationView struct {
	ID             string                 `json:"id"`
	GuestName      string                 `json:"guest_name"`
	GuestEmail     string                 `json:"guest_email"`
	GuestPhone     string                 `json:"guest_phone"`
	PickupLocation *domain.PickupLocation `json:"pickup_location,omitempty"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	TotalPrice     float64                `json:"total_price"`
	Notes          string                 `json:"notes,omitempty"`
	Status         string                 `json:"status"`
	Vehicles       []domain.Vehicle       `json:"vehicles"`
}

func toReservationView(detail *domain.ReservationDetail) ReservationView {
	vehicles := detail.Vehicles
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	return ReservationView{
		ID:             detail.ID,
		GuestName:      detail.GuestName,
		GuestEmail:     detail.GuestEmail,
		GuestPhone:     detail.GuestPhone,
		PickupLocation: detail.PickupLocation,
		StartDate:      detail.StartDate,
		EndDate:        detail.EndDate,
		TotalPrice:     detail.TotalPrice,
		Notes:          detail.Notes,
		Status:         string(detail.Status),
		Vehicles:       vehicles,
	}
}

// Manage handles POST /v1/reservations/manage
func (h *ReservationHandler) Manage(c *gin.Context) {
	var req ManageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "update":
		upd := repository.GuestUpdate{}
		if req.Updates != nil {
			upd.GuestName = req.Updates.GuestName
			upd.GuestPhone = req.Updates.GuestPhone
			upd.Notes = req.Updates.Notes
		}
		detail, err := h.reservationService.UpdateGuestReservation(ctx, req.ReservationID, req.Email, upd)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, gin.H{
			"reservation": toReservationView(detail),
			"message":     "reservation updated",
		})

	case "cancel":
		if err := h.reservationService.CancelGuestReservation(ctx, req.ReservationID, req.Email); err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, gin.H{"message": "reservation cancelled"})

	default:
		// "get" and any unspecified action return the reservation details.
		detail, err := h.reservationService.GetGuestReservation(ctx, req.ReservationID, req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, gin.H{"reservation": toReservationView(detail)})
	}
}
