package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/sensorhub/internal/database"
	"github.com/itsatony/sensorhub/internal/errors"
	"github.com/itsatony/sensorhub/internal/models"
)

func newTestRepo(t *testing.T) (*ReadingRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewReadingRepository(database.NewFromSqlx(db)), mock
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func readingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "date", "temperature", "humidity", "recorded_at"})
}

func TestListWithDatePredicate(t *testing.T) {
	repo, mock := newTestRepo(t)
	date := mustDate(t, "2024-01-01")

	mock.ExpectQuery(`(?s)SELECT id, date, temperature, humidity, recorded_at.*FROM sensor_readings.*WHERE date = \$1.*ORDER BY recorded_at, id.*LIMIT \$2 OFFSET \$3`).
		WithArgs("2024-01-01", 10, 20).
		WillReturnRows(readingRows().
			AddRow(21, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 21.5, 40.0, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	readings, err := repo.List(context.Background(), &date, 20, 10)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, int64(21), readings[0].ID)
	assert.Equal(t, 21.5, readings[0].Temperature)
	assert.Equal(t, "2024-01-01", readings[0].Date.Format(models.DateLayout))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithoutDateHasNoPredicate(t *testing.T) {
	repo, mock := newTestRepo(t)

	// no WHERE clause at all when the filter is absent
	mock.ExpectQuery(`(?s)SELECT id, date, temperature, humidity, recorded_at.*FROM sensor_readings.*ORDER BY recorded_at, id.*LIMIT \$1 OFFSET \$2`).
		WithArgs(100, 0).
		WillReturnRows(readingRows().
			AddRow(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 20.0, 40.0, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)).
			AddRow(2, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 22.0, 45.0, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)))

	readings, err := repo.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	assert.Len(t, readings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDateUsesRoutine(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM get_sensor_readings_by_date\(\$1\)`).
		WithArgs("2024-01-01").
		WillReturnRows(readingRows().
			AddRow(7, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 21.5, 40.0, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	readings, err := repo.ListByDate(context.Background(), mustDate(t, "2024-01-01"))
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, int64(7), readings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsAssignedID(t *testing.T) {
	repo, mock := newTestRepo(t)

	recordedAt := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)INSERT INTO sensor_readings \(date, temperature, humidity\).*RETURNING id, recorded_at`).
		WithArgs("2024-01-01", 21.5, 40.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).AddRow(42, recordedAt))

	reading := &models.Reading{
		Date:        mustDate(t, "2024-01-01"),
		Temperature: 21.5,
		Humidity:    40.0,
	}
	require.NoError(t, repo.Create(context.Background(), reading))
	assert.Equal(t, int64(42), reading.ID)
	assert.Equal(t, recordedAt, reading.RecordedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateByValuesReportsAffectedRows(t *testing.T) {
	repo, mock := newTestRepo(t)

	newTemp := 25.0
	mock.ExpectExec(`(?s)UPDATE sensor_readings.*SET temperature = COALESCE\(\$1, temperature\),.*humidity = COALESCE\(\$2, humidity\).*WHERE date = \$3 AND temperature = \$4 AND humidity = \$5`).
		WithArgs(25.0, nil, "2024-01-01", 21.5, 40.0).
		WillReturnResult(sqlmock.NewResult(0, 3))

	rows, err := repo.UpdateByValues(context.Background(),
		models.ReadingMatch{Date: mustDate(t, "2024-01-01"), Temperature: 21.5, Humidity: 40.0},
		models.ReadingSet{Temperature: &newTemp},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateByValuesZeroRowsIsNotAnError(t *testing.T) {
	repo, mock := newTestRepo(t)

	newTemp := 25.0
	mock.ExpectExec(`UPDATE sensor_readings`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdateByValues(context.Background(),
		models.ReadingMatch{Date: mustDate(t, "2024-01-01"), Temperature: 99.0, Humidity: 1.0},
		models.ReadingSet{Temperature: &newTemp},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestDeleteByValuesBulk(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`DELETE FROM sensor_readings WHERE date = \$1 AND temperature = \$2 AND humidity = \$3`).
		WithArgs("2024-01-01", 21.5, 40.0).
		WillReturnResult(sqlmock.NewResult(0, 2))

	rows, err := repo.DeleteByValues(context.Background(),
		models.ReadingMatch{Date: mustDate(t, "2024-01-01"), Temperature: 21.5, Humidity: 40.0})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryFailureWrapsDatabaseError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM sensor_readings`).
		WillReturnError(assert.AnError)

	_, err := repo.List(context.Background(), nil, 0, 100)
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeDatabase, apiErr.Type)
}
