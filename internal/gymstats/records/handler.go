package records

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type recordsRepo interface {
	ListExerciseRecords(ctx context.Context, userID string) ([]ExerciseRecord, error)
	RecentEvents(ctx context.Context, userID string, limit int) ([]Event, error)
}

type Handler struct {
	repo recordsRepo
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	recs, err := handler.repo.ListExerciseRecords(ctx, userID)
	if err != nil {
		log.Errorf("list exercise records for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get records", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []ExerciseRecord{}
	}

	pkg.WriteJSON(w, recs, http.StatusOK)
}

func (handler *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.recent")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := defaultRecentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > maxRecentLimit {
			pkg.WriteJSON(w, pkg.NewValidationError("limit", "must be between 1 and %d", maxRecentLimit), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, err := handler.repo.RecentEvents(ctx, userID, limit)
	if err != nil {
		log.Errorf("recent pr events for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get recent records", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []Event{}
	}

	pkg.WriteJSON(w, events, http.StatusOK)
}
