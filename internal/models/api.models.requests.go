// FilePath: internal/models/api.models.requests.go
package models

import "errors"

// CreateReadingRequest is the POST /sensor-readings body. Pointer fields
// distinguish a missing field from a zero value.
type CreateReadingRequest struct {
	Date        *Date    `json:"date"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

// Validate checks that all required fields are present.
func (r *CreateReadingRequest) Validate() error {
	if r.Date == nil {
		return errors.New("date is required")
	}
	if r.Temperature == nil {
		return errors.New("temperature is required")
	}
	if r.Humidity == nil {
		return errors.New("humidity is required")
	}
	return nil
}

// Reading builds the row to insert.
func (r *CreateReadingRequest) Reading() *Reading {
	return &Reading{
		Date:        *r.Date,
		Temperature: *r.Temperature,
		Humidity:    *r.Humidity,
	}
}

// readingTriple mirrors ReadingMatch with pointer fields for validation.
type readingTriple struct {
	Date        *Date    `json:"date"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

func (t *readingTriple) validate() error {
	if t.Date == nil {
		return errors.New("date is required")
	}
	if t.Temperature == nil {
		return errors.New("temperature is required")
	}
	if t.Humidity == nil {
		return errors.New("humidity is required")
	}
	return nil
}

func (t *readingTriple) match() ReadingMatch {
	return ReadingMatch{
		Date:        *t.Date,
		Temperature: *t.Temperature,
		Humidity:    *t.Humidity,
	}
}

// UpdateReadingRequest is the PUT /sensor-readings body. The match triple
// selects rows; the set pair carries the new values.
type UpdateReadingRequest struct {
	Match *readingTriple `json:"match"`
	Set   *ReadingSet    `json:"set"`
}

// Validate checks the match triple and requires at least one set field.
func (r *UpdateReadingRequest) Validate() error {
	if r.Match == nil {
		return errors.New("match is required")
	}
	if err := r.Match.validate(); err != nil {
		return errors.New("match: " + err.Error())
	}
	if r.Set == nil || (r.Set.Temperature == nil && r.Set.Humidity == nil) {
		return errors.New("set must contain temperature or humidity")
	}
	return nil
}

// MatchValues returns the selection triple.
func (r *UpdateReadingRequest) MatchValues() ReadingMatch {
	return r.Match.match()
}

// DeleteReadingRequest is the DELETE /sensor-readings body: an exact-match
// triple. Every matching row is deleted.
type DeleteReadingRequest struct {
	Date        *Date    `json:"date"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

// Validate checks that all triple fields are present.
func (r *DeleteReadingRequest) Validate() error {
	t := readingTriple{Date: r.Date, Temperature: r.Temperature, Humidity: r.Humidity}
	return t.validate()
}

// MatchValues returns the selection triple.
func (r *DeleteReadingRequest) MatchValues() ReadingMatch {
	return ReadingMatch{
		Date:        *r.Date,
		Temperature: *r.Temperature,
		Humidity:    *r.Humidity,
	}
}

// ListReadingsQuery holds the decoded GET /sensor-readings query string.
type ListReadingsQuery struct {
	Date  string `schema:"date"`
	Page  int    `schema:"page"`
	Limit int    `schema:"limit"`
}

// Offset computes the pagination window start.
func (q ListReadingsQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
