// Package repository implements data access for the reservations schema
// on top of database/sql. Each entity has its own repository type, all
// sharing a single *sql.DB pool. The repositories follow one base
// contract:
//
//   - GetAll returns every row in storage order; an empty table yields
//     an empty result, not an error.
//   - GetByID returns the entity's not-found sentinel when no row has
//     the given id.
//   - Create inserts the record and populates its generated id on the
//     passed struct.
//   - Update overwrites every mutable column of the addressed row; a
//     missing id is a no-op, not an error.
//   - Delete removes the row; a missing id is likewise a no-op.
//
// Methods carrying a Tx suffix run against a caller-provided
// transaction and exist for the multi-statement flows in the service
// layer. Everything else goes straight to the pool.
package repository

import (
	"context"
)

// Repository is the base contract shared by the per-entity
// repositories. The flight and reservation repositories deviate on the
// read side only: their queries return joined read models
// (model.FlightDetail, model.ReservationDetail) rather than the bare
// row types, so they satisfy the same contract in spirit but not this
// interface.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uint64, record *T) error
	Delete(ctx context.Context, id uint64) error
}
