package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airflow/reservations/internal/model"
)

var seatColumns = []string{"id_PK", "airplane_FK", "reservation_FK", "seat_number", "seat_class", "is_window"}

func TestSeatRepoGetByIDNullableColumns(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM seats WHERE id_PK = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(int64(3), int64(2), nil, "1A", "ECONOMY", nil))

	s, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.ID)
	assert.Equal(t, "1A", s.SeatNumber)
	assert.Equal(t, model.SeatClassEconomy, s.Class)
	assert.Nil(t, s.ReservationID)
	assert.Nil(t, s.IsWindow)
}

func TestSeatRepoGetByIDAssignedSeat(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM seats WHERE id_PK = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(int64(3), int64(2), int64(11), "1A", "BUSINESS", true))

	s, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, s.ReservationID)
	assert.Equal(t, uint64(11), *s.ReservationID)
	require.NotNil(t, s.IsWindow)
	assert.True(t, *s.IsWindow)
	assert.Equal(t, model.SeatClassBusiness, s.Class)
}

func TestSeatRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM seats WHERE id_PK = ?`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(seatColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestSeatRepoGetByIDRejectsCorruptClass(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM seats WHERE id_PK = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(int64(3), int64(2), nil, "1A", "COACH", nil))

	_, err := repo.GetByID(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COACH")
}

func TestSeatRepoGetAvailableByAirplaneID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE airplane_FK = ? AND reservation_FK IS NULL`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(int64(3), int64(2), nil, "1A", "ECONOMY", true).
			AddRow(int64(4), int64(2), nil, "1B", "ECONOMY", false))

	seats, err := repo.GetAvailableByAirplaneID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, "1A", seats[0].SeatNumber)
	assert.Nil(t, seats[0].ReservationID)
	require.NotNil(t, seats[1].IsWindow)
	assert.False(t, *seats[1].IsWindow)
}

func TestSeatRepoGetByReservationID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM seats WHERE reservation_FK = ?`)).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(int64(3), int64(2), int64(11), "1A", "ECONOMY", true))

	seats, err := repo.GetByReservationID(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, seats, 1)
	require.NotNil(t, seats[0].ReservationID)
	assert.Equal(t, uint64(11), *seats[0].ReservationID)
}

func TestSeatRepoCreateUnassignedSeat(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	window := true
	s := &model.Seat{AirplaneID: 2, SeatNumber: "1A", Class: model.SeatClassEconomy, IsWindow: &window}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO seats (airplane_FK, reservation_FK, seat_number, seat_class, is_window)`)).
		WithArgs(2, nil, "1A", "ECONOMY", true).
		WillReturnResult(sqlmock.NewResult(3, 1))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, uint64(3), s.ID)
}

func TestSeatRepoClaimTx(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE seats SET reservation_FK = ? WHERE id_PK = ? AND reservation_FK IS NULL`)).
		WithArgs(11, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ClaimTx(context.Background(), tx, 3, 11))
	require.NoError(t, tx.Commit())
}

func TestSeatRepoClaimTxSeatTaken(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE seats SET reservation_FK = ? WHERE id_PK = ? AND reservation_FK IS NULL`)).
		WithArgs(11, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.ClaimTx(context.Background(), tx, 3, 11)
	assert.ErrorIs(t, err, ErrSeatTaken)
	require.NoError(t, tx.Rollback())
}

func TestSeatRepoReleaseByReservationTx(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSeatRepo(db)

	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE seats SET reservation_FK = NULL WHERE reservation_FK = ?`)).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ReleaseByReservationTx(context.Background(), tx, 11))
	require.NoError(t, tx.Commit())
}
