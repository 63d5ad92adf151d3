package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// ReservationRepository is a PostgreSQL implementation of
// repository.ReservationRepository.
type ReservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new PostgreSQL reservation repository.
func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create persists a new reservation and its vehicle links in one
// transaction, so a failed link insert never leaves an orphan reservation.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, vehicleIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO reservations (id, user_id, guest_name, guest_email, guest_phone, pickup_location_id, start_date, end_date, total_price, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	var userID sql.NullString
	if res.UserID != "" {
		userID = sql.NullString{String: res.UserID, Valid: true}
	}

	var pickupLocationID sql.NullString
	if res.PickupLocationID != "" {
		pickupLocationID = sql.NullString{String: res.PickupLocationID, Valid: true}
	}

	var notes sql.NullString
	if res.Notes != "" {
		notes = sql.NullString{String: res.Notes, Valid: true}
	}

	_, err = tx.ExecContext(ctx, query,
		res.ID,
		userID,
		res.GuestName,
		res.GuestEmail,
		res.GuestPhone,
		pickupLocationID,
		res.StartDate,
		res.EndDate,
		res.TotalPrice,
		notes,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		return err
	}

	linkQuery := `INSERT INTO reservation_vehicles (reservation_id, vehicle_id) VALUES ($1, $2)`
	for _, vehicleID := range vehicleIDs {
		if _, err = tx.ExecContext(ctx, linkQuery, res.ID, vehicleID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a reservation by ID.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `
		SELECT id, user_id, guest_name, guest_email, guest_phone, pickup_location_id, start_date, end_date, total_price, notes, status, created_at
		FROM reservations WHERE id = $1
	`
	return r.scanReservation(r.db.QueryRowContext(ctx, query, id))
}

// GetDetailByIDAndEmail retrieves a reservation with its pickup location
// and vehicles, matching both the id and the guest email. The email match
// is the authorization check for guest access.
func (r *ReservationRepository) GetDetailByIDAndEmail(ctx context.Context, id, email string) (*domain.ReservationDetail, error) {
	query := `
		SELECT id, user_id, guest_name, guest_email, guest_phone, pickup_location_id, start_date, end_date, total_price, notes, status, created_at
		FROM reservations WHERE id = $1 AND guest_email = $2
	`
	res, err := r.scanReservation(r.db.QueryRowContext(ctx, query, id, email))
	if err != nil {
		return nil, err
	}

	detail := &domain.ReservationDetail{Reservation: *res}

	if res.PickupLocationID != "" {
		locQuery := `SELECT id, name, address FROM pickup_locations WHERE id = $1`
		var loc domain.PickupLocation
		err := r.db.QueryRowContext(ctx, locQuery, res.PickupLocationID).Scan(&loc.ID, &loc.Name, &loc.Address)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			detail.PickupLocation = &loc
		}
	}

	vehicleQuery := `
		SELECT v.id, v.name, v.category, v.price_per_day, v.image_url, v.seats, v.fuel_type, v.transmission, v.available
		FROM reservation_vehicles rv
		JOIN vehicles v ON v.id = rv.vehicle_id
		WHERE rv.reservation_id = $1
	`
	rows, err := r.db.QueryContext(ctx, vehicleQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Vehicle
		var imageURL sql.NullString
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Category,
			&v.PricePerDay,
			&imageURL,
			&v.Seats,
			&v.FuelType,
			&v.Transmission,
			&v.Available,
		); err != nil {
			return nil, err
		}
		if imageURL.Valid {
			v.ImageURL = imageURL.String
		}
		detail.Vehicles = append(detail.Vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return detail, nil
}

// UpdateGuestDetails applies the non-nil guest-editable fields.
func (r *ReservationRepository) UpdateGuestDetails(ctx context.Context, id string, upd repository.GuestUpdate) error {
	query := `
		UPDATE reservations
		SET guest_name = COALESCE($2, guest_name),
		    guest_phone = COALESCE($3, guest_phone),
		    notes = COALESCE($4, notes)
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, upd.GuestName, upd.GuestPhone, upd.Notes)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// UpdateStatus sets the reservation status.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	var userID sql.NullString
	var pickupLocationID sql.NullString
	var notes sql.NullString

	err := row.Scan(
		&res.ID,
		&userID,
		&res.GuestName,
		&res.GuestEmail,
		&res.GuestPhone,
		&pickupLocationID,
		&res.StartDate,
		&res.EndDate,
		&res.TotalPrice,
		&notes,
		&res.Status,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if userID.Valid {
		res.UserID = userID.String
	}
	if pickupLocationID.Valid {
		res.PickupLocationID = pickupLocationID.String
	}
	if notes.Valid {
		res.Notes = notes.String
	}
	return &res, nil
}
