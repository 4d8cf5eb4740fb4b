package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/stipendium/internal/app"
)

func NewRouter(service *app.Service) *http.ServeMux {
	scholarships := NewScholarshipHandler(service)
	applications := NewApplicationHandler(service)
	dashboards := NewDashboardHandler(service)

	routes := map[string]http.HandlerFunc{
		"GET /api/v1/scholarships":             scholarships.HandleList,
		"POST /api/v1/scholarships":            scholarships.HandleCreate,
		"GET /api/v1/scholarships/{id}":        scholarships.HandleGet,
		"DELETE /api/v1/scholarships/{id}":     scholarships.HandleDelete,
		"GET /api/v1/applications":             applications.HandleList,
		"POST /api/v1/applications":            applications.HandleCreate,
		"PUT /api/v1/applications/{id}/status": applications.HandleUpdateStatus,
		"GET /api/v1/student/dashboard":        dashboards.HandleStudent,
		"GET /api/v1/admin/dashboard":          dashboards.HandleAdmin,
		"GET /api/v1/admin/journal":            dashboards.HandleJournal,
	}

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, instrument(pattern, handler))
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
