package model

// FlightStatus is a row of the `flight_status` lookup table. Rows are
// seeded with fixed ids at initialization, so IDs are assigned by the
// seed data rather than auto-generated.
type FlightStatus struct {
	ID          uint64 // flight_status.id_PK
	Name        string // flight_status.name
	Description string // flight_status.description
}

// ReservationStatus is a row of the `reservations_status` lookup table.
// Same seeding rules as FlightStatus.
type ReservationStatus struct {
	ID          uint64 // reservations_status.id_PK
	Name        string // reservations_status.name
	Description string // reservations_status.description
}

// Stable ids of the seeded flight_status vocabulary. Callers reference
// these directly when creating or updating flights.
const (
	FlightStatusScheduled uint64 = 1
	FlightStatusDelayed   uint64 = 2
	FlightStatusCancelled uint64 = 3
	FlightStatusBoarding  uint64 = 4
	FlightStatusInFlight  uint64 = 5
	FlightStatusLanded    uint64 = 6
	FlightStatusCompleted uint64 = 7
)

// Stable ids of the seeded reservations_status vocabulary.
const (
	ReservationStatusConfirmed uint64 = 1
	ReservationStatusCancelled uint64 = 2
	ReservationStatusPending   uint64 = 3
	ReservationStatusCheckedIn uint64 = 4
	ReservationStatusCompleted uint64 = 5
)
