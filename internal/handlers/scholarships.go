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

type ScholarshipHandler struct {
	service *app.Service
}

func NewScholarshipHandler(service *app.Service) *ScholarshipHandler {
	return &ScholarshipHandler{
		service: service,
	}
}

// HandleList serves ?q=<term> as a name search; no term lists everything.
func (h *ScholarshipHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": h.service.Tracker.Scholarships.FilterByName(term),
	})
}

func (h *ScholarshipHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var fields models.NewScholarship
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		logger.Debug.Printf("Bad scholarship body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Tracker.Scholarships.Create(fields)
	if errors.Is(err, tracker.ErrRejected) {
		writeRejected(w, err)
		return
	}
	if err != nil {
		logger.Error.Printf("Failed to create scholarship: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create scholarship")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ScholarshipHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid scholarship id")
		return
	}

	sch, found := h.service.Tracker.Scholarships.Lookup(id)
	if !found {
		writeError(w, http.StatusNotFound, "Scholarship not found")
		return
	}
	writeJSON(w, http.StatusOK, sch)
}

func (h *ScholarshipHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid scholarship id")
		return
	}

	if !h.service.Tracker.Scholarships.Delete(id) {
		writeError(w, http.StatusNotFound, "Scholarship not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
