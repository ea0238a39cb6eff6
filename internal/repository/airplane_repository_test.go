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

var airplaneColumns = []string{"id_PK", "airline", "model", "code", "capacity", "year"}

func TestAirplaneRepoGetByCode(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAirplaneRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM airplanes WHERE code = ?`)).
		WithArgs("AV-320-01").
		WillReturnRows(sqlmock.NewRows(airplaneColumns).
			AddRow(int64(2), "Avianca", "Airbus A320", "AV-320-01", 180, 2019))

	a, err := repo.GetByCode(context.Background(), "AV-320-01")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), a.ID)
	assert.Equal(t, "Airbus A320", a.Model)
	assert.Equal(t, 180, a.Capacity)
	assert.Equal(t, 2019, a.Year)
}

func TestAirplaneRepoGetByCodeNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAirplaneRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM airplanes WHERE code = ?`)).
		WithArgs("GHOST").
		WillReturnRows(sqlmock.NewRows(airplaneColumns))

	_, err := repo.GetByCode(context.Background(), "GHOST")
	assert.ErrorIs(t, err, ErrAirplaneNotFound)
}

func TestAirplaneRepoCreatePopulatesID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAirplaneRepo(db)

	a := &model.Airplane{Airline: "Avianca", Model: "Boeing 787", Code: "AV-787-02", Capacity: 250, Year: 2021}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO airplanes (airline, model, code, capacity, year)`)).
		WithArgs("Avianca", "Boeing 787", "AV-787-02", 250, 2021).
		WillReturnResult(sqlmock.NewResult(5, 1))

	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, uint64(5), a.ID)
}

func TestAirplaneRepoUpdateMissingIDIsNoOp(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAirplaneRepo(db)

	a := &model.Airplane{Airline: "Avianca", Model: "Boeing 787", Code: "AV-787-02", Capacity: 250, Year: 2021}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE airplanes SET airline = ?`)).
		WithArgs("Avianca", "Boeing 787", "AV-787-02", 250, 2021, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Update(context.Background(), 404, a))
}
