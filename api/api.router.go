package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/itsatony/sensorhub/api/middleware"
	"github.com/itsatony/sensorhub/api/resources"
	"github.com/itsatony/sensorhub/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.router.Use(middleware.RequestID)

	// Liveness
	r.router.HandleFunc("/", r.resources.Readings.Liveness).Methods(http.MethodGet)

	// Sensor readings
	readings := r.router.PathPrefix("/sensor-readings").Subrouter()
	readings.HandleFunc("/procedure", r.resources.Readings.ListReadingsByDate).Methods(http.MethodGet)
	readings.HandleFunc("", r.resources.Readings.ListReadings).Methods(http.MethodGet)
	readings.HandleFunc("", r.resources.Readings.CreateReading).Methods(http.MethodPost)
	readings.HandleFunc("", r.resources.Readings.UpdateReading).Methods(http.MethodPut)
	readings.HandleFunc("", r.resources.Readings.DeleteReading).Methods(http.MethodDelete)

	// Generated API documentation
	r.router.PathPrefix("/api-docs").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Handler wraps the router with recovery and CORS middleware.
func (r *Router) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
	)
	return handlers.RecoveryHandler()(cors(r.router))
}
