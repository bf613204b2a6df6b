package hubservice

import (
	"github.com/itsatony/sensorhub/internal/errors"
	"github.com/itsatony/sensorhub/internal/monitoring"
	"github.com/itsatony/sensorhub/internal/repository"
)

// HubService contains the reading repository and service-wide dependencies.
// Handlers depend on this aggregate, never on the connection pool itself.
type HubService struct {
	Readings   repository.ReadingRepository
	Monitoring *monitoring.Service
}

// New creates a new HubService instance
func New(readings repository.ReadingRepository, mon *monitoring.Service) *HubService {
	return &HubService{
		Readings:   readings,
		Monitoring: mon,
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Readings == nil {
		return ErrMissingDependency("readings")
	}
	if s.Monitoring == nil {
		return ErrMissingDependency("monitoring")
	}
	return nil
}

// RecordEvent forwards an operation event to monitoring, if configured.
func (s *HubService) RecordEvent(eventName string, labels map[string]string) {
	if s.Monitoring == nil {
		return
	}
	s.Monitoring.RecordEvent(eventName, labels)
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}
