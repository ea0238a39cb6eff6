package model

import "time"

// Reservation mirrors a row of the `reservations` table.
type Reservation struct {
	ID         uint64    // reservations.id_PK
	UserID     uint64    // reservations.user_FK
	StatusID   uint64    // reservations.status_FK
	FlightID   uint64    // reservations.flight_FK
	ReservedAt time.Time // reservations.reserved_at
}

// ReservationDetail is the read model returned by reservation queries,
// a Reservation plus the status name and description joined in from
// reservations_status.
type ReservationDetail struct {
	Reservation
	StatusName        string // reservations_status.name
	StatusDescription string // reservations_status.description
}
