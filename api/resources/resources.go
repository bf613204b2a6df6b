// FilePath: api/resources/resources.go
package resources

import (
	"github.com/itsatony/sensorhub/internal/hubservice"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Readings *ReadingHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService) *Resources {
	return &Resources{
		Readings: &ReadingHandlers{hubservice: svc},
	}
}
