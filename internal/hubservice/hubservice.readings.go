// FilePath: internal/hubservice/hubservice.readings.go
package hubservice

import (
	"context"

	"github.com/itsatony/sensorhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingService handles sensor-reading business logic
type ReadingService interface {
	ListReadings(ctx context.Context, date *models.Date, offset, limit int) ([]*models.Reading, error)
	ListReadingsByDate(ctx context.Context, date models.Date) ([]*models.Reading, error)
	CreateReading(ctx context.Context, reading *models.Reading) error
	UpdateReadingsByValues(ctx context.Context, match models.ReadingMatch, set models.ReadingSet) (int64, error)
	DeleteReadingsByValues(ctx context.Context, match models.ReadingMatch) (int64, error)
}

// ListReadings returns one pagination window, optionally filtered by date.
func (s *HubService) ListReadings(ctx context.Context, date *models.Date, offset, limit int) ([]*models.Reading, error) {
	return s.Readings.List(ctx, date, offset, limit)
}

// ListReadingsByDate looks up readings through the database routine.
func (s *HubService) ListReadingsByDate(ctx context.Context, date models.Date) ([]*models.Reading, error) {
	return s.Readings.ListByDate(ctx, date)
}

// CreateReading inserts one reading row and records the event.
func (s *HubService) CreateReading(ctx context.Context, reading *models.Reading) error {
	if err := s.Readings.Create(ctx, reading); err != nil {
		return err
	}
	nuts.L.Infof("[ReadingService] Created reading %d for %s", reading.ID, reading.Date.Format(models.DateLayout))
	s.RecordEvent("reading.created", map[string]string{
		"date": reading.Date.Format(models.DateLayout),
	})
	return nil
}

// UpdateReadingsByValues sets the new values on every row matching the
// triple and records the event. Zero affected rows is not an error.
func (s *HubService) UpdateReadingsByValues(ctx context.Context, match models.ReadingMatch, set models.ReadingSet) (int64, error) {
	rows, err := s.Readings.UpdateByValues(ctx, match, set)
	if err != nil {
		return 0, err
	}
	nuts.L.Infof("[ReadingService] Updated %d readings for %s", rows, match.Date.Format(models.DateLayout))
	s.RecordEvent("reading.updated", map[string]string{
		"date": match.Date.Format(models.DateLayout),
	})
	return rows, nil
}

// DeleteReadingsByValues removes every row matching the triple and
// records the event.
func (s *HubService) DeleteReadingsByValues(ctx context.Context, match models.ReadingMatch) (int64, error) {
	rows, err := s.Readings.DeleteByValues(ctx, match)
	if err != nil {
		return 0, err
	}
	nuts.L.Infof("[ReadingService] Deleted %d readings for %s", rows, match.Date.Format(models.DateLayout))
	s.RecordEvent("reading.deleted", map[string]string{
		"date": match.Date.Format(models.DateLayout),
	})
	return rows, nil
}
