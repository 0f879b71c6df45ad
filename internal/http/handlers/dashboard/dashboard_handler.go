package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"remotesync/internal/http/api"
	"remotesync/internal/http/middleware"
	"remotesync/internal/lib/sl"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=dashboardService --exported --structname=MockDashboardService
type dashboardService interface {
	Dashboard(ctx context.Context, userID string) (*api.DashboardResponse, error)
}

type DashboardHandler struct {
	log     *slog.Logger
	service dashboardService
}

func NewDashboardHandler(log *slog.Logger, s dashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:     log,
		service: s,
	}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	resp, err := h.service.Dashboard(ctx, user.ID)
	if err != nil {
		log.Error("error while building dashboard", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
