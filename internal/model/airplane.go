package model

// Airplane describes an aircraft in the fleet. Capacity is the total
// seat count the cabin was configured with; Year is the build year.
type Airplane struct {
	ID       uint64 // airplanes.id_PK
	Airline  string // airplanes.airline
	Model    string // airplanes.model
	Code     string // airplanes.code
	Capacity int    // airplanes.capacity
	Year     int    // airplanes.year
}
