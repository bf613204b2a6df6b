// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/itsatony/sensorhub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ReadingRepository defines the interface for sensor reading data
// operations. Update and delete use value-triple matching and report the
// number of affected rows; zero affected rows is not an error.
type ReadingRepository interface {
	// List returns one pagination window, ordered by recording time. A nil
	// date means no date predicate at all, never `date = NULL`.
	List(ctx context.Context, date *models.Date, offset, limit int) ([]*models.Reading, error)
	// ListByDate delegates to the get_sensor_readings_by_date database
	// routine.
	ListByDate(ctx context.Context, date models.Date) ([]*models.Reading, error)
	// Create inserts one row and fills in the assigned id and recorded_at.
	Create(ctx context.Context, reading *models.Reading) error
	// UpdateByValues sets the given values on every row matching the triple.
	UpdateByValues(ctx context.Context, match models.ReadingMatch, set models.ReadingSet) (int64, error)
	// DeleteByValues removes every row matching the triple.
	DeleteByValues(ctx context.Context, match models.ReadingMatch) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
