package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/app"
	"github.com/shrimpsizemoose/stipendium/internal/models"
	"github.com/shrimpsizemoose/stipendium/internal/tracker"
)

type ApplicationHandler struct {
	service *app.Service
}

func NewApplicationHandler(service *app.Service) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
	}
}

// HandleList serves every application, or with ?student=<name> only the ones
// filed under exactly that name.
func (h *ApplicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps := h.service.Tracker.Applications.List()
	if query := r.URL.Query(); query.Has("student") {
		apps = h.service.Tracker.Applications.ListByStudent(query.Get("student"))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": apps,
	})
}

func (h *ApplicationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var fields models.NewApplication
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		logger.Debug.Printf("Bad application body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Tracker.Applications.Create(fields)
	if errors.Is(err, tracker.ErrRejected) {
		writeRejected(w, err)
		return
	}
	if err != nil {
		logger.Error.Printf("Failed to create application: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := models.ParseStatus(body.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := h.service.Tracker.Applications.UpdateStatus(id, status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
