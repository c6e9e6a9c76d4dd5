package syncer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/gymstats/hevy"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=syncer_test

type syncRunner interface {
	Sync(ctx context.Context, userID string) (Result, error)
	Recompute(ctx context.Context, userID string) (RecomputeResult, error)
}

type Handler struct {
	runner syncRunner
}

func NewHandler(runner syncRunner) *Handler {
	return &Handler{
		runner: runner,
	}
}

type syncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.syncer.sync")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := handler.runner.Sync(ctx, userID)
	if err != nil {
		writeSyncError(w, err)
		return
	}

	pkg.WriteJSON(w, syncResponse{
		Success: true,
		Message: fmt.Sprintf("Synced %d workouts", result.WorkoutsUpdated),
		Result:  result,
	}, http.StatusOK)
}

func (handler *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.syncer.recompute")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := handler.runner.Recompute(ctx, userID)
	if err != nil {
		writeSyncError(w, err)
		return
	}

	pkg.WriteJSON(w, syncResponse{
		Success: true,
		Message: fmt.Sprintf("Recomputed %d workouts", result.WorkoutsRecomputed),
		Result:  result,
	}, http.StatusOK)
}

func writeSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingCredential):
		pkg.WriteJSONError(w, "No API Key configured", http.StatusBadRequest)
	case errors.Is(err, ErrSyncInProgress):
		pkg.WriteJSONError(w, "Sync already in progress", http.StatusConflict)
	default:
		status := http.StatusInternalServerError
		if _, ok := hevy.AsRemoteError(err); ok {
			status = http.StatusBadGateway
		} else if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		log.Errorf("sync request failed: %s", err)
		pkg.WriteJSON(w, syncResponse{
			Success: false,
			Message: "Sync failed: " + err.Error(),
		}, status)
	}
}
