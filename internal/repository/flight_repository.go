package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrFlightNotFound is returned when a flight lookup yields no rows.
var ErrFlightNotFound = errors.New("flight not found")

// flightSelect is the shared read query. Every read path joins
// flight_status so results carry the denormalized status name and
// description.
const flightSelect = `SELECT f.id_PK, f.airplane_FK, f.status_FK, f.origin_city_FK, f.destination_city_FK,
       f.code, f.departure_time, f.arrival_time, f.price_base,
       fs.name, fs.description
FROM flights f
JOIN flight_status fs ON fs.id_PK = f.status_FK`

// FlightRepo provides access to the flights table. Reads return
// model.FlightDetail; mutations take the plain model.Flight. The
// flight code is not unique at the schema level, which is why
// GetByCode returns a slice; uniqueness is a service-level rule.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// GetAll returns every flight with its status joined in.
func (r *FlightRepo) GetAll(ctx context.Context) ([]model.FlightDetail, error) {
	rows, err := r.db.QueryContext(ctx, flightSelect)
	if err != nil {
		return nil, err
	}
	return collectFlightDetails(rows)
}

// GetByID fetches a single flight, returning ErrFlightNotFound when
// absent.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (*model.FlightDetail, error) {
	const q = flightSelect + ` WHERE f.id_PK = ?`
	var d model.FlightDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.AirplaneID, &d.StatusID, &d.OriginCityID, &d.DestinationCityID,
		&d.Code, &d.DepartureTime, &d.ArrivalTime, &d.PriceBase,
		&d.StatusName, &d.StatusDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByIDTx is GetByID inside a caller-provided transaction. The
// booking flow uses it to read the flight's airplane while holding the
// transaction open.
func (r *FlightRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.FlightDetail, error) {
	const q = flightSelect + ` WHERE f.id_PK = ?`
	var d model.FlightDetail
	err := tx.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.AirplaneID, &d.StatusID, &d.OriginCityID, &d.DestinationCityID,
		&d.Code, &d.DepartureTime, &d.ArrivalTime, &d.PriceBase,
		&d.StatusName, &d.StatusDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByCode returns all flights carrying the given code. An unused code
// yields an empty slice.
func (r *FlightRepo) GetByCode(ctx context.Context, code string) ([]model.FlightDetail, error) {
	const q = flightSelect + ` WHERE f.code = ?`
	rows, err := r.db.QueryContext(ctx, q, code)
	if err != nil {
		return nil, err
	}
	return collectFlightDetails(rows)
}

// GetByOriginCity returns all flights departing from a city.
func (r *FlightRepo) GetByOriginCity(ctx context.Context, cityID uint64) ([]model.FlightDetail, error) {
	const q = flightSelect + ` WHERE f.origin_city_FK = ?`
	rows, err := r.db.QueryContext(ctx, q, cityID)
	if err != nil {
		return nil, err
	}
	return collectFlightDetails(rows)
}

// GetByDestinationCity returns all flights arriving at a city.
func (r *FlightRepo) GetByDestinationCity(ctx context.Context, cityID uint64) ([]model.FlightDetail, error) {
	const q = flightSelect + ` WHERE f.destination_city_FK = ?`
	rows, err := r.db.QueryContext(ctx, q, cityID)
	if err != nil {
		return nil, err
	}
	return collectFlightDetails(rows)
}

// Create inserts a flight and populates its generated id.
func (r *FlightRepo) Create(ctx context.Context, f *model.Flight) error {
	const q = `INSERT INTO flights (airplane_FK, status_FK, origin_city_FK, destination_city_FK, code, departure_time, arrival_time, price_base)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		f.AirplaneID, f.StatusID, f.OriginCityID, f.DestinationCityID,
		f.Code, f.DepartureTime, f.ArrivalTime, f.PriceBase)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns; missing ids are a no-op.
func (r *FlightRepo) Update(ctx context.Context, id uint64, f *model.Flight) error {
	const q = `UPDATE flights
	           SET airplane_FK = ?, status_FK = ?, origin_city_FK = ?, destination_city_FK = ?,
	               code = ?, departure_time = ?, arrival_time = ?, price_base = ?
	           WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q,
		f.AirplaneID, f.StatusID, f.OriginCityID, f.DestinationCityID,
		f.Code, f.DepartureTime, f.ArrivalTime, f.PriceBase, id)
	return err
}

// Delete removes a flight row; missing ids are a no-op.
func (r *FlightRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM flights WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// collectFlightDetails drains rows into a slice, closing them on every
// path.
func collectFlightDetails(rows *sql.Rows) ([]model.FlightDetail, error) {
	defer rows.Close()

	flights := []model.FlightDetail{}
	for rows.Next() {
		var d model.FlightDetail
		if err := rows.Scan(
			&d.ID, &d.AirplaneID, &d.StatusID, &d.OriginCityID, &d.DestinationCityID,
			&d.Code, &d.DepartureTime, &d.ArrivalTime, &d.PriceBase,
			&d.StatusName, &d.StatusDescription,
		); err != nil {
			return nil, err
		}
		flights = append(flights, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flights, nil
}
