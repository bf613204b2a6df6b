// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/itsatony/sensorhub/api/middleware"
	"github.com/itsatony/sensorhub/internal/errors"
	"github.com/itsatony/sensorhub/internal/hubservice"
	"github.com/itsatony/sensorhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

const (
	defaultPage  = 1
	defaultLimit = 100
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// ReadingHandlers encapsulates the sensor-reading HTTP handlers
type ReadingHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Liveness check
// @Description Confirms the API process is up
// @Tags system
// @Produce plain
// @Success 200 {string} string "SensorHub API is running"
// @Router / [get]
func (h *ReadingHandlers) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("SensorHub API is running"))
}

// @Summary List sensor readings
// @Description List readings with pagination and an optional date filter
// @Tags readings
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 100"
// @Success 200 {array} models.Reading
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor-readings [get]
func (h *ReadingHandlers) ListReadings(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	q := parseListQuery(r)

	var date *models.Date
	if q.Date != "" {
		parsed, err := models.ParseDate(q.Date)
		if err != nil {
			respondWithError(w, errors.NewValidationError("invalid date parameter", err).WithRequestID(requestID))
			return
		}
		date = &parsed
	}

	readings, err := h.hubservice.ListReadings(r.Context(), date, q.Offset(), q.Limit)
	if err != nil {
		nuts.L.Errorf("[ReadingHandlers] ListReadings failed (request %s): %v", requestID, err)
		respondWithError(w, errors.NewDatabaseError("failed to list readings", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, readings)
}

// @Summary List sensor readings by date (database routine)
// @Description List all readings for one date via the get_sensor_readings_by_date routine
// @Tags readings
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} models.Reading
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor-readings/procedure [get]
func (h *ReadingHandlers) ListReadingsByDate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		respondWithError(w, errors.NewValidationError("date parameter is required", nil).WithRequestID(requestID))
		return
	}
	date, err := models.ParseDate(dateStr)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid date parameter", err).WithRequestID(requestID))
		return
	}

	readings, err := h.hubservice.ListReadingsByDate(r.Context(), date)
	if err != nil {
		nuts.L.Errorf("[ReadingHandlers] ListReadingsByDate failed (request %s): %v", requestID, err)
		respondWithError(w, errors.NewDatabaseError("failed to list readings", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, readings)
}

// @Summary Create a sensor reading
// @Description Insert one reading row
// @Tags readings
// @Accept json
// @Produce json
// @Param reading body models.CreateReadingRequest true "Reading values"
// @Success 201 {object} models.Reading
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor-readings [post]
func (h *ReadingHandlers) CreateReading(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req models.CreateReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	reading := req.Reading()
	if err := h.hubservice.CreateReading(r.Context(), reading); err != nil {
		nuts.L.Errorf("[ReadingHandlers] CreateReading failed (request %s): %v", requestID, err)
		respondWithError(w, errors.NewDatabaseError("failed to create reading", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, reading)
}

// @Summary Update sensor readings by value match
// @Description Set new values on every row whose (date, temperature, humidity) equals the match triple. Zero affected rows is still a success.
// @Tags readings
// @Accept json
// @Produce json
// @Param update body models.UpdateReadingRequest true "Match triple and new values"
// @Success 200 {object} resources.AffectedResponse
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor-readings [put]
func (h *ReadingHandlers) UpdateReading(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req models.UpdateReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	rows, err := h.hubservice.UpdateReadingsByValues(r.Context(), req.MatchValues(), *req.Set)
	if err != nil {
		nuts.L.Errorf("[ReadingHandlers] UpdateReading failed (request %s): %v", requestID, err)
		respondWithError(w, errors.NewDatabaseError("failed to update readings", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, AffectedResponse{Status: "updated", RowsAffected: rows})
}

// @Summary Delete sensor readings by value match
// @Description Delete every row whose (date, temperature, humidity) equals the given triple. Zero affected rows is still a success.
// @Tags readings
// @Accept json
// @Produce json
// @Param reading body models.DeleteReadingRequest true "Match triple"
// @Success 200 {object} resources.AffectedResponse
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor-readings [delete]
func (h *ReadingHandlers) DeleteReading(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req models.DeleteReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	rows, err := h.hubservice.DeleteReadingsByValues(r.Context(), req.MatchValues())
	if err != nil {
		nuts.L.Errorf("[ReadingHandlers] DeleteReading failed (request %s): %v", requestID, err)
		respondWithError(w, errors.NewDatabaseError("failed to delete readings", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, AffectedResponse{Status: "deleted", RowsAffected: rows})
}

// AffectedResponse confirms a bulk update or delete. RowsAffected may be
// zero; the operation is still reported as a success.
type AffectedResponse struct {
	Status       string `json:"status"`
	RowsAffected int64  `json:"rows_affected"`
}

// Helper functions

// parseListQuery decodes pagination parameters best-effort: each
// malformed or non-positive value behaves exactly like omitting it.
// Decode errors are per-field; schema leaves an unparseable field at its
// preset and still fills the rest, so a bad page never discards a good
// limit.
func parseListQuery(r *http.Request) models.ListReadingsQuery {
	q := models.ListReadingsQuery{Page: defaultPage, Limit: defaultLimit}
	_ = queryDecoder.Decode(&q, r.URL.Query())
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	return q
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
