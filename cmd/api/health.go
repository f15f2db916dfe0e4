package main

import (
	"context"
	"net/http"
	"time"

	"github.com/farxc/cesla-billing/internal/response"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	data := response.HealthResponse{
		Status:   "available",
		Version:  version,
		Database: "up",
	}
	status := http.StatusOK

	if err := app.store.Health.Ping(ctx); err != nil {
		app.logger.Warn("Health", "database ping failed: %v", err)
		data.Database = "down"
		status = http.StatusInternalServerError
	}

	if err := writeJSON(w, status, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
