package model

import "time"

// Flight mirrors a row of the `flights` table. DepartureTime must be
// strictly before ArrivalTime; the service layer enforces this, the
// schema does not.
type Flight struct {
	ID                uint64    // flights.id_PK
	AirplaneID        uint64    // flights.airplane_FK
	StatusID          uint64    // flights.status_FK
	OriginCityID      uint64    // flights.origin_city_FK
	DestinationCityID uint64    // flights.destination_city_FK
	Code              string    // flights.code
	DepartureTime     time.Time // flights.departure_time
	ArrivalTime       time.Time // flights.arrival_time
	PriceBase         float64   // flights.price_base
}

// FlightDetail is the read model returned by flight queries. It carries
// the persisted row plus the status name and description joined in from
// flight_status. The joined fields are never written back.
type FlightDetail struct {
	Flight
	StatusName        string // flight_status.name
	StatusDescription string // flight_status.description
}
