package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/zicku/belimbing-ledger/internal/adapter/http/models"
	"github.com/zicku/belimbing-ledger/internal/commons"
	"github.com/zicku/belimbing-ledger/internal/usecase/services"
)

type DashboardService interface {
	Snapshot(ctx context.Context) (services.Snapshot, error)
	Stats(ctx context.Context) (services.Stats, error)
}

type DashboardController struct {
	service DashboardService
}

func NewDashboardController(service DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (c *DashboardController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard-data", c.data)
	mux.HandleFunc("GET /api/dashboard-stats", c.stats)
}

func (c *DashboardController) data(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snapshot, err := c.service.Snapshot(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.DashboardDataResponse]("failed to load dashboard data", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("dashboard data fetched successfully", models.NewDashboardDataResponse(snapshot)))
}

func (c *DashboardController) stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats, err := c.service.Stats(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.DashboardStatsResponse]("failed to load dashboard stats", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("dashboard stats fetched successfully", models.NewDashboardStatsResponse(stats)))
}
