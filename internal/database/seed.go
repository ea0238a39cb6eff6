package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/airflow/reservations/internal/model"
)

// The status vocabularies are reference data with fixed ids; callers
// hold the ids as constants (model.FlightStatusScheduled and friends),
// so the rows must land exactly as listed here.

var flightStatuses = []model.FlightStatus{
	{ID: model.FlightStatusScheduled, Name: "SCHEDULED", Description: "Flight is scheduled as planned"},
	{ID: model.FlightStatusDelayed, Name: "DELAYED", Description: "Flight is delayed"},
	{ID: model.FlightStatusCancelled, Name: "CANCELLED", Description: "Flight has been cancelled"},
	{ID: model.FlightStatusBoarding, Name: "BOARDING", Description: "Boarding in progress"},
	{ID: model.FlightStatusInFlight, Name: "IN_FLIGHT", Description: "Flight is currently in the air"},
	{ID: model.FlightStatusLanded, Name: "LANDED", Description: "Flight has landed at destination"},
	{ID: model.FlightStatusCompleted, Name: "COMPLETED", Description: "Flight has completed all processes"},
}

var reservationStatuses = []model.ReservationStatus{
	{ID: model.ReservationStatusConfirmed, Name: "CONFIRMED", Description: "Reservation is confirmed"},
	{ID: model.ReservationStatusCancelled, Name: "CANCELLED", Description: "Reservation has been cancelled"},
	{ID: model.ReservationStatusPending, Name: "PENDING", Description: "Reservation is pending confirmation"},
	{ID: model.ReservationStatusCheckedIn, Name: "CHECKED_IN", Description: "Passenger has checked in"},
	{ID: model.ReservationStatusCompleted, Name: "COMPLETED", Description: "Travel has been completed"},
}

// SeedStatuses upserts both status vocabularies. Re-running converges
// existing rows to the current names and descriptions without touching
// their ids.
func SeedStatuses(ctx context.Context, db *sql.DB) error {
	const flightQ = `INSERT INTO flight_status (id_PK, name, description) VALUES (?, ?, ?)
	                 ON DUPLICATE KEY UPDATE name = VALUES(name), description = VALUES(description)`
	for _, s := range flightStatuses {
		if _, err := db.ExecContext(ctx, flightQ, s.ID, s.Name, s.Description); err != nil {
			return fmt.Errorf("seed flight_status %d: %w", s.ID, err)
		}
	}

	const reservationQ = `INSERT INTO reservations_status (id_PK, name, description) VALUES (?, ?, ?)
	                      ON DUPLICATE KEY UPDATE name = VALUES(name), description = VALUES(description)`
	for _, s := range reservationStatuses {
		if _, err := db.ExecContext(ctx, reservationQ, s.ID, s.Name, s.Description); err != nil {
			return fmt.Errorf("seed reservations_status %d: %w", s.ID, err)
		}
	}
	return nil
}
