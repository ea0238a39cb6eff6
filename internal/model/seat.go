package model

import (
	"database/sql/driver"
	"fmt"
)

// SeatClass is the cabin class of a seat. The set is closed; decoding
// anything outside it is treated as corrupt data and fails the scan.
type SeatClass string

const (
	SeatClassEconomy  SeatClass = "ECONOMY"
	SeatClassBusiness SeatClass = "BUSINESS"
	SeatClassFirst    SeatClass = "FIRST"
)

// ParseSeatClass validates a raw string against the known classes.
func ParseSeatClass(s string) (SeatClass, error) {
	switch SeatClass(s) {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirst:
		return SeatClass(s), nil
	}
	return "", fmt.Errorf("unknown seat class %q", s)
}

// Scan implements sql.Scanner so seat_class values coming out of the
// database are validated instead of silently accepted.
func (c *SeatClass) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("seat class: cannot scan %T", src)
	}
	parsed, err := ParseSeatClass(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer.
func (c SeatClass) Value() (driver.Value, error) {
	return string(c), nil
}

func (c SeatClass) String() string { return string(c) }

// Seat mirrors a row of the `seats` table. ReservationID is nil while
// the seat is unassigned; a non-nil value points at the reservation
// currently holding it. IsWindow is nullable because cabin layouts do
// not always record it.
type Seat struct {
	ID            uint64    // seats.id_PK
	AirplaneID    uint64    // seats.airplane_FK
	ReservationID *uint64   // seats.reservation_FK (nullable)
	SeatNumber    string    // seats.seat_number (unique per airplane)
	Class         SeatClass // seats.seat_class
	IsWindow      *bool     // seats.is_window (nullable)
}
