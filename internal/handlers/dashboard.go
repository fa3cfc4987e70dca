package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/models"
)

// Dashboarder defines the interface that the report service must implement.
type Dashboarder interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

// NewDashboardHandler returns an HTTP handler for the admin dashboard.
// The counts table doubles as the bar chart's data source; the feed is
// sorted newest first and flags rows whose image file is gone.
// @Summary Admin dashboard
// @Description Per-user submission counts plus the full submission feed.
// @Tags admin
// @Produce json
// @Success 200 {object} models.Dashboard "Counts and feed"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Failure 403 {object} handlers.ErrorResponse "Admins only"
// @Router /admin/dashboard [get]
func NewDashboardHandler(svc Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dash, err := svc.Dashboard(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		json.NewEncoder(w).Encode(dash)
	}
}
