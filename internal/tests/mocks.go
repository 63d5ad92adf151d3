package tests

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/redis"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is an in-memory implementation of
// redis.SessionStoreInterface. Selections are stored as serialized JSON so
// tests exercise the same round-trip the Redis store performs.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte

	// Counters for verification
	SaveCallCount   int32
	DeleteCallCount int32

	// Error injection
	SaveError   error
	LoadError   error
	DeleteError error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string][]byte),
	}
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, sel *domain.BookingSelection) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = data
	return nil
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	var sel domain.BookingSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// HasSession reports whether a session is currently persisted.
func (m *MockSessionStore) HasSession(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[sessionID]
	return ok
}

// ──────────────────────────────────────────────
// MOCK VEHICLE REPOSITORY
// ──────────────────────────────────────────────

// MockVehicleRepository is a mock implementation of repository.VehicleRepository.
type MockVehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle

	// Error injection
	GetError error
}

// NewMockVehicleRepository creates a new mock vehicle repository.
func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

// AddVehicle adds a vehicle to the mock repository.
func (m *MockVehicleRepository) AddVehicle(v *domain.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[v.ID] = v
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]domain.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		result = append(result, *v)
	}
	return result, nil
}

func (m *MockVehicleRepository) GetAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []domain.Vehicle
	for _, v := range m.vehicles {
		if v.Available {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *v
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK PICKUP LOCATION REPOSITORY
// ──────────────────────────────────────────────

// MockLocationRepository is a mock implementation of repository.PickupLocationRepository.
type MockLocationRepository struct {
	mu        sync.RWMutex
	locations map[string]*domain.PickupLocation
}

// NewMockLocationRepository creates a new mock pickup-location repository.
func NewMockLocationRepository() *MockLocationRepository {
	return &MockLocationRepository{
		locations: make(map[string]*domain.PickupLocation),
	}
}

// AddLocation adds a pickup location to the mock repository.
func (m *MockLocationRepository) AddLocation(l *domain.PickupLocation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[l.ID] = l
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]domain.PickupLocation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]domain.PickupLocation, 0, len(m.locations))
	for _, l := range m.locations {
		result = append(result, *l)
	}
	return result, nil
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.locations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *l
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK RESERVATION REPOSITORY
// ──────────────────────────────────────────────

// MockReservationRepository is a mock implementation of repository.ReservationRepository.
type MockReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
	vehicleLinks map[string][]string

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError       error
	UpdateStatusError error
}

// NewMockReservationRepository creates a new mock reservation repository.
func NewMockReservationRepository() *MockReservationRepository {
	return &MockReservationRepository{
		reservations: make(map[string]*domain.Reservation),
		vehicleLinks: make(map[string][]string),
	}
}

// AddReservation seeds a reservation into the mock repository.
func (m *MockReservationRepository) AddReservation(res *domain.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[res.ID] = res
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation, vehicleIDs []string) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *res
	m.reservations[res.ID] = &stored
	m.vehicleLinks[res.ID] = append([]string(nil), vehicleIDs...)
	return nil
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *res
	return &copy, nil
}

func (m *MockReservationRepository) GetDetailByIDAndEmail(ctx context.Context, id, email string) (*domain.ReservationDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.reservations[id]
	if !ok || !strings.EqualFold(res.GuestEmail, email) {
		return nil, repository.ErrNotFound
	}
	copy := *res
	return &domain.ReservationDetail{Reservation: copy}, nil
}

func (m *MockReservationRepository) UpdateGuestDetails(ctx context.Context, id string, upd repository.GuestUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.GuestName != nil {
		res.GuestName = *upd.GuestName
	}
	if upd.GuestPhone != nil {
		res.GuestPhone = *upd.GuestPhone
	}
	if upd.Notes != nil {
		res.Notes = *upd.Notes
	}
	return nil
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return repository.ErrNotFound
	}
	res.Status = status
	return nil
}

// VehicleLinks returns the vehicle ids linked to a reservation.
func (m *MockReservationRepository) VehicleLinks(id string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vehicleLinks[id]
}

// Ensure mocks satisfy the interfaces they stand in for.
var (
	_ redis.SessionStoreInterface         = (*MockSessionStore)(nil)
	_ repository.VehicleRepository        = (*MockVehicleRepository)(nil)
	_ repository.PickupLocationRepository = (*MockLocationRepository)(nil)
	_ repository.ReservationRepository    = (*MockReservationRepository)(nil)
)
