// FilePath: internal/repository/postgres/postgres.reading.go
package postgres

import (
	"context"

	"github.com/itsatony/sensorhub/internal/database"
	"github.com/itsatony/sensorhub/internal/errors"
	"github.com/itsatony/sensorhub/internal/models"
)

type ReadingRepo struct {
	PostgresBaseRepo
}

func NewReadingRepository(db database.DB) *ReadingRepo {
	repo := &PostgresBaseRepo{db: db}
	return &ReadingRepo{PostgresBaseRepo: *repo}
}

func (r *ReadingRepo) List(ctx context.Context, date *models.Date, offset, limit int) ([]*models.Reading, error) {
	readings := []*models.Reading{}

	// Two statement forms: filtering on a NULL date would never match.
	if date != nil {
		query := `
			SELECT id, date, temperature, humidity, recorded_at
			FROM sensor_readings
			WHERE date = $1
			ORDER BY recorded_at, id
			LIMIT $2 OFFSET $3`
		if err := r.db.GetDB().SelectContext(ctx, &readings, query, *date, limit, offset); err != nil {
			return nil, errors.NewDatabaseError("failed to list readings", err)
		}
		return readings, nil
	}

	query := `
		SELECT id, date, temperature, humidity, recorded_at
		FROM sensor_readings
		ORDER BY recorded_at, id
		LIMIT $1 OFFSET $2`
	if err := r.db.GetDB().SelectContext(ctx, &readings, query, limit, offset); err != nil {
		return nil, errors.NewDatabaseError("failed to list readings", err)
	}
	return readings, nil
}

func (r *ReadingRepo) ListByDate(ctx context.Context, date models.Date) ([]*models.Reading, error) {
	readings := []*models.Reading{}
	query := `SELECT id, date, temperature, humidity, recorded_at FROM get_sensor_readings_by_date($1)`

	if err := r.db.GetDB().SelectContext(ctx, &readings, query, date); err != nil {
		return nil, errors.NewDatabaseError("failed to list readings by date", err)
	}
	return readings, nil
}

func (r *ReadingRepo) Create(ctx context.Context, reading *models.Reading) error {
	query := `
		INSERT INTO sensor_readings (date, temperature, humidity)
		VALUES ($1, $2, $3)
		RETURNING id, recorded_at`

	err := r.db.GetDB().QueryRowxContext(ctx, query,
		reading.Date, reading.Temperature, reading.Humidity,
	).Scan(&reading.ID, &reading.RecordedAt)
	if err != nil {
		return errors.NewDatabaseError("failed to create reading", err)
	}
	return nil
}

func (r *ReadingRepo) UpdateByValues(ctx context.Context, match models.ReadingMatch, set models.ReadingSet) (int64, error) {
	// Nil set fields keep the stored value via COALESCE.
	query := `
		UPDATE sensor_readings
		SET temperature = COALESCE($1, temperature),
		    humidity = COALESCE($2, humidity)
		WHERE date = $3 AND temperature = $4 AND humidity = $5`

	result, err := r.db.GetDB().ExecContext(ctx, query,
		set.Temperature, set.Humidity,
		match.Date, match.Temperature, match.Humidity,
	)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to update readings", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}
	return rows, nil
}

func (r *ReadingRepo) DeleteByValues(ctx context.Context, match models.ReadingMatch) (int64, error) {
	query := `DELETE FROM sensor_readings WHERE date = $1 AND temperature = $2 AND humidity = $3`

	result, err := r.db.GetDB().ExecContext(ctx, query,
		match.Date, match.Temperature, match.Humidity,
	)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete readings", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}
	return rows, nil
}
