package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airflow/reservations/internal/model"
)

func TestSeedStatusesUpsertsFixedIDs(t *testing.T) {
	db, mock := newMock(t)

	for _, s := range flightStatuses {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO flight_status (id_PK, name, description)`)).
			WithArgs(s.ID, s.Name, s.Description).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for _, s := range reservationStatuses {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reservations_status (id_PK, name, description)`)).
			WithArgs(s.ID, s.Name, s.Description).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, SeedStatuses(context.Background(), db))
}

func TestSeedStatusesStopsOnFirstError(t *testing.T) {
	db, mock := newMock(t)

	down := errors.New("server has gone away")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO flight_status`)).WillReturnError(down)

	err := SeedStatuses(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "seed flight_status")
}

func TestSeedVocabularyMatchesModelConstants(t *testing.T) {
	require.Len(t, flightStatuses, 7)
	require.Len(t, reservationStatuses, 5)

	assert.Equal(t, model.FlightStatusScheduled, flightStatuses[0].ID)
	assert.Equal(t, "SCHEDULED", flightStatuses[0].Name)
	assert.Equal(t, model.FlightStatusCompleted, flightStatuses[6].ID)
	assert.Equal(t, "COMPLETED", flightStatuses[6].Name)

	assert.Equal(t, model.ReservationStatusConfirmed, reservationStatuses[0].ID)
	assert.Equal(t, "CONFIRMED", reservationStatuses[0].Name)
	assert.Equal(t, model.ReservationStatusPending, reservationStatuses[2].ID)
	assert.Equal(t, "PENDING", reservationStatuses[2].Name)

	// Ids must be unique within each vocabulary or the upserts collide.
	seen := map[uint64]bool{}
	for _, s := range flightStatuses {
		assert.False(t, seen[s.ID], "duplicate flight status id %d", s.ID)
		seen[s.ID] = true
	}
	seen = map[uint64]bool{}
	for _, s := range reservationStatuses {
		assert.False(t, seen[s.ID], "duplicate reservation status id %d", s.ID)
		seen[s.ID] = true
	}
}
