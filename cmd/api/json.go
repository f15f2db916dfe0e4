package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/farxc/cesla-billing/internal/response"
	"github.com/lib/pq"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &response.ErrorResponse{Error: message})

}

// readJSON decodes the request body into data. An empty body decodes as an
// empty object.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(data)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// serverError logs err and returns its message to the client as a 500.
// Postgres errors are reported by their server message alone.
func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	message := err.Error()

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		message = pqErr.Message
		app.logger.Error("API", "%s %s: %v (code=%s detail=%q)", r.Method, r.URL.Path, err, pqErr.Code, pqErr.Detail)
	} else {
		app.logger.Error("API", "%s %s: %v", r.Method, r.URL.Path, err)
	}

	writeJSONError(w, http.StatusInternalServerError, message)
}
