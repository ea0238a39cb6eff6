package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatTaken is returned by ClaimTx when the seat already carries a
// reservation.
var ErrSeatTaken = errors.New("seat already taken")

// SeatRepo provides access to the seats table. A seat with a NULL
// reservation_FK is available; claiming sets the column and releasing
// clears it again.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

var _ Repository[model.Seat] = (*SeatRepo)(nil)

const seatSelect = `SELECT id_PK, airplane_FK, reservation_FK, seat_number, seat_class, is_window FROM seats`

// GetAll returns every seat.
func (r *SeatRepo) GetAll(ctx context.Context) ([]model.Seat, error) {
	rows, err := r.db.QueryContext(ctx, seatSelect)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// GetByID fetches a seat by id, returning ErrSeatNotFound when absent.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = seatSelect + ` WHERE id_PK = ?`
	s, err := scanSeat(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return s, nil
}

// GetByIDTx is GetByID inside a caller-provided transaction.
func (r *SeatRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Seat, error) {
	const q = seatSelect + ` WHERE id_PK = ?`
	s, err := scanSeat(tx.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return s, nil
}

// GetByAirplaneID returns all seats installed on an airplane.
func (r *SeatRepo) GetByAirplaneID(ctx context.Context, airplaneID uint64) ([]model.Seat, error) {
	const q = seatSelect + ` WHERE airplane_FK = ?`
	rows, err := r.db.QueryContext(ctx, q, airplaneID)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// GetByReservationID returns the seats assigned to a reservation.
func (r *SeatRepo) GetByReservationID(ctx context.Context, reservationID uint64) ([]model.Seat, error) {
	const q = seatSelect + ` WHERE reservation_FK = ?`
	rows, err := r.db.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// GetAvailableByAirplaneID returns the seats of an airplane not yet
// assigned to any reservation.
func (r *SeatRepo) GetAvailableByAirplaneID(ctx context.Context, airplaneID uint64) ([]model.Seat, error) {
	const q = seatSelect + ` WHERE airplane_FK = ? AND reservation_FK IS NULL`
	rows, err := r.db.QueryContext(ctx, q, airplaneID)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// Create inserts a seat and populates its generated id. A nil
// ReservationID inserts NULL.
func (r *SeatRepo) Create(ctx context.Context, s *model.Seat) error {
	const q = `INSERT INTO seats (airplane_FK, reservation_FK, seat_number, seat_class, is_window)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.AirplaneID, s.ReservationID, s.SeatNumber, s.Class, s.IsWindow)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns; missing ids are a no-op.
func (r *SeatRepo) Update(ctx context.Context, id uint64, s *model.Seat) error {
	const q = `UPDATE seats
	           SET airplane_FK = ?, reservation_FK = ?, seat_number = ?, seat_class = ?, is_window = ?
	           WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, s.AirplaneID, s.ReservationID, s.SeatNumber, s.Class, s.IsWindow, id)
	return err
}

// Delete removes a seat row; missing ids are a no-op.
func (r *SeatRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM seats WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// ClaimTx assigns a free seat to a reservation. The IS NULL guard makes
// the claim atomic: if another transaction got the seat first, zero
// rows match and ErrSeatTaken is returned.
func (r *SeatRepo) ClaimTx(ctx context.Context, tx *sql.Tx, seatID, reservationID uint64) error {
	const q = `UPDATE seats SET reservation_FK = ? WHERE id_PK = ? AND reservation_FK IS NULL`
	res, err := tx.ExecContext(ctx, q, reservationID, seatID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatTaken
	}
	return nil
}

// ReleaseByReservationTx clears the assignment of every seat held by a
// reservation.
func (r *SeatRepo) ReleaseByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uint64) error {
	const q = `UPDATE seats SET reservation_FK = NULL WHERE reservation_FK = ?`
	_, err := tx.ExecContext(ctx, q, reservationID)
	return err
}

// scanSeat maps one row onto a Seat, converting the nullable columns to
// pointers.
func scanSeat(row *sql.Row) (*model.Seat, error) {
	var s model.Seat
	var reservationID sql.NullInt64
	var isWindow sql.NullBool
	if err := row.Scan(&s.ID, &s.AirplaneID, &reservationID, &s.SeatNumber, &s.Class, &isWindow); err != nil {
		return nil, err
	}
	if reservationID.Valid {
		v := uint64(reservationID.Int64)
		s.ReservationID = &v
	}
	if isWindow.Valid {
		v := isWindow.Bool
		s.IsWindow = &v
	}
	return &s, nil
}

// collectSeats drains rows into a slice, closing them on every path.
func collectSeats(rows *sql.Rows) ([]model.Seat, error) {
	defer rows.Close()

	seats := []model.Seat{}
	for rows.Next() {
		var s model.Seat
		var reservationID sql.NullInt64
		var isWindow sql.NullBool
		if err := rows.Scan(&s.ID, &s.AirplaneID, &reservationID, &s.SeatNumber, &s.Class, &isWindow); err != nil {
			return nil, err
		}
		if reservationID.Valid {
			v := uint64(reservationID.Int64)
			s.ReservationID = &v
		}
		if isWindow.Valid {
			v := isWindow.Bool
			s.IsWindow = &v
		}
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seats, nil
}
