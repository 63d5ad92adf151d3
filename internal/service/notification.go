package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationReservationCreated   NotificationType = "RESERVATION_CREATED"
	NotificationReservationCancelled NotificationType = "RESERVATION_CANCELLED"
)

// Notification represents a notification to be sent to a guest.
type Notification struct {
	Type           NotificationType
	RecipientEmail string
	Title          string
	Message        string
	CreatedAt      time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Email client (SendGrid)
	// - SMS client (Twilio)
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyReservationCreated confirms a new reservation to the guest.
func (s *NotificationService) NotifyReservationCreated(ctx context.Context, res *domain.Reservation) error {
	notification := Notification{
		Type:           NotificationReservationCreated,
		RecipientEmail: res.GuestEmail,
		Title:          "Reservation received",
		Message: fmt.Sprintf("Your reservation %s from %s to %s has been received. Total: %.2f",
			res.ID, res.StartDate, res.EndDate, res.TotalPrice),
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyReservationCancelled informs the guest their reservation was cancelled.
func (s *NotificationService) NotifyReservationCancelled(ctx context.Context, res *domain.Reservation) error {
	notification := Notification{
		Type:           NotificationReservationCancelled,
		RecipientEmail: res.GuestEmail,
		Title:          "Reservation cancelled",
		Message:        fmt.Sprintf("Your reservation %s has been cancelled.", res.ID),
		CreatedAt:      time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification. Currently logs; delivery failures must not
// fail the reservation flow.
func (s *NotificationService) send(ctx context.Context, n Notification) error {
	log.Printf("[NOTIFICATION] type=%s to=%s title=%q message=%q", n.Type, n.RecipientEmail, n.Title, n.Message)
	return nil
}
