package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Get(ctx context.Context, userID string, year int) (Data, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	year, err := workouts.ParseYear(r, 0)
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "invalid year")
		return
	}

	data, err := handler.service.Get(ctx, userID, year)
	if err != nil {
		if errors.Is(err, ErrSetupRequired) {
			pkg.WriteJSON(w, map[string]bool{"setupRequired": true}, http.StatusOK)
			return
		}
		log.Errorf("get dashboard for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, data, http.StatusOK)
}
