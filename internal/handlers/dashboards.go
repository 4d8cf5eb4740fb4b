package handlers

import (
	"net/http"
	"strconv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/app"
)

type DashboardHandler struct {
	service *app.Service
}

func NewDashboardHandler(service *app.Service) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

func (h *DashboardHandler) HandleStudent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	writeJSON(w, http.StatusOK, h.service.StudentDashboard(query.Get("q"), query.Get("student")))
}

func (h *DashboardHandler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.AdminDashboard())
}

func (h *DashboardHandler) HandleJournal(w http.ResponseWriter, r *http.Request) {
	if h.service.Journal == nil {
		writeError(w, http.StatusNotFound, "Change journal is disabled")
		return
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := h.service.Journal.ListEvents(limit)
	if err != nil {
		logger.Error.Printf("Failed to list journal: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch journal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": records,
	})
}
