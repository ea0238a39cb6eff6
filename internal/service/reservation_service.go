package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/airflow/reservations/internal/database"
	"github.com/airflow/reservations/internal/model"
	"github.com/airflow/reservations/internal/repository"
)

// ErrSeatWrongAirplane is returned by Book when the requested seat is
// not installed on the airplane flying the requested flight.
var ErrSeatWrongAirplane = errors.New("seat does not belong to the flight's airplane")

// ReservationService runs the multi-statement reservation flows. It
// works with the concrete repositories rather than store interfaces
// because the flows hand a *sql.Tx through the repository Tx methods.
type ReservationService struct {
	db           *sql.DB
	reservations *repository.ReservationRepo
	flights      *repository.FlightRepo
	seats        *repository.SeatRepo
}

// NewReservationService constructs a ReservationService over the shared
// pool and the three repositories the flows touch.
func NewReservationService(db *sql.DB, reservations *repository.ReservationRepo, flights *repository.FlightRepo, seats *repository.SeatRepo) *ReservationService {
	return &ReservationService{db: db, reservations: reservations, flights: flights, seats: seats}
}

// Book creates a PENDING reservation for the flight and claims the
// seat, all inside one transaction. If the seat is already taken, sits
// on a different airplane, or any statement fails, the whole booking
// rolls back and nothing is persisted.
func (s *ReservationService) Book(ctx context.Context, userID, flightID, seatID uint64) (*model.Reservation, error) {
	var booked *model.Reservation
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		flight, err := s.flights.GetByIDTx(ctx, tx, flightID)
		if err != nil {
			return err
		}
		seat, err := s.seats.GetByIDTx(ctx, tx, seatID)
		if err != nil {
			return err
		}
		if seat.AirplaneID != flight.AirplaneID {
			return ErrSeatWrongAirplane
		}
		res := &model.Reservation{
			UserID:     userID,
			StatusID:   model.ReservationStatusPending,
			FlightID:   flightID,
			ReservedAt: time.Now().UTC(),
		}
		if err := s.reservations.CreateTx(ctx, tx, res); err != nil {
			return err
		}
		if err := s.seats.ClaimTx(ctx, tx, seatID, res.ID); err != nil {
			return err
		}
		booked = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}

// Confirm moves a reservation to CONFIRMED. A missing id surfaces as
// repository.ErrReservationNotFound.
func (s *ReservationService) Confirm(ctx context.Context, reservationID uint64) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.reservations.GetByIDTx(ctx, tx, reservationID); err != nil {
			return err
		}
		return s.reservations.UpdateStatusTx(ctx, tx, reservationID, model.ReservationStatusConfirmed)
	})
}

// Cancel moves a reservation to CANCELLED and releases every seat it
// held, inside one transaction.
func (s *ReservationService) Cancel(ctx context.Context, reservationID uint64) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.reservations.GetByIDTx(ctx, tx, reservationID); err != nil {
			return err
		}
		if err := s.reservations.UpdateStatusTx(ctx, tx, reservationID, model.ReservationStatusCancelled); err != nil {
			return err
		}
		return s.seats.ReleaseByReservationTx(ctx, tx, reservationID)
	})
}
