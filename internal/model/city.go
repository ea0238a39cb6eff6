package model

// City is a destination reachable by the fleet. Code is the short
// airport code (e.g. "BOG").
type City struct {
	ID      uint64 // cities.id_PK
	Name    string // cities.name
	Country string // cities.country
	Code    string // cities.code
}
