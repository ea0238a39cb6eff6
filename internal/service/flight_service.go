// Package service layers the business rules of the reservation system
// over the repositories: flight registration checks, credential
// handling and the transactional booking flow.
package service

import (
	"context"
	"errors"

	"github.com/airflow/reservations/internal/model"
	"github.com/airflow/reservations/internal/repository"
)

// Validation failures raised by flight registration. Both are detected
// before any write happens.
var (
	ErrFlightCodeExists = errors.New("a flight with this code already exists")
	ErrFlightTimeOrder  = errors.New("departure time must be before arrival time")
)

// FlightStore is the slice of the flight repository the service
// depends on.
type FlightStore interface {
	GetAll(ctx context.Context) ([]model.FlightDetail, error)
	GetByID(ctx context.Context, id uint64) (*model.FlightDetail, error)
	GetByCode(ctx context.Context, code string) ([]model.FlightDetail, error)
	GetByOriginCity(ctx context.Context, cityID uint64) ([]model.FlightDetail, error)
	GetByDestinationCity(ctx context.Context, cityID uint64) ([]model.FlightDetail, error)
	Create(ctx context.Context, f *model.Flight) error
	Update(ctx context.Context, id uint64, f *model.Flight) error
	Delete(ctx context.Context, id uint64) error
}

var _ FlightStore = (*repository.FlightRepo)(nil)

// FlightService owns the business rules around flights. Registration
// is the only validated mutation in the system; every other path
// passes straight through to the repository.
type FlightService struct {
	flights FlightStore
}

// NewFlightService constructs a FlightService on top of the given store.
func NewFlightService(flights FlightStore) *FlightService {
	return &FlightService{flights: flights}
}

// Register persists a new flight after checking that its code is not
// already in use and that departure lies strictly before arrival.
// Validation failures never touch storage.
func (s *FlightService) Register(ctx context.Context, f *model.Flight) error {
	exists, err := s.CodeExists(ctx, f.Code)
	if err != nil {
		return err
	}
	if exists {
		return ErrFlightCodeExists
	}
	if !f.DepartureTime.Before(f.ArrivalTime) {
		return ErrFlightTimeOrder
	}
	return s.flights.Create(ctx, f)
}

// CodeExists reports whether any flight carries the given code.
func (s *FlightService) CodeExists(ctx context.Context, code string) (bool, error) {
	flights, err := s.flights.GetByCode(ctx, code)
	if err != nil {
		return false, err
	}
	return len(flights) > 0, nil
}

// GetAll returns every flight.
func (s *FlightService) GetAll(ctx context.Context) ([]model.FlightDetail, error) {
	return s.flights.GetAll(ctx)
}

// GetByID returns one flight by id.
func (s *FlightService) GetByID(ctx context.Context, id uint64) (*model.FlightDetail, error) {
	return s.flights.GetByID(ctx, id)
}

// GetByOrigin returns the flights departing from a city.
func (s *FlightService) GetByOrigin(ctx context.Context, cityID uint64) ([]model.FlightDetail, error) {
	return s.flights.GetByOriginCity(ctx, cityID)
}

// GetByDestination returns the flights arriving at a city.
func (s *FlightService) GetByDestination(ctx context.Context, cityID uint64) ([]model.FlightDetail, error) {
	return s.flights.GetByDestinationCity(ctx, cityID)
}

// Update overwrites a flight without re-running registration checks.
func (s *FlightService) Update(ctx context.Context, id uint64, f *model.Flight) error {
	return s.flights.Update(ctx, id, f)
}

// Delete removes a flight.
func (s *FlightService) Delete(ctx context.Context, id uint64) error {
	return s.flights.Delete(ctx, id)
}
