package workouts

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 50
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type topWorkoutsRepo interface {
	TopWorkouts(ctx context.Context, userID string, year, limit int) ([]Summary, error)
}

type Handler struct {
	repo topWorkoutsRepo
	now  func() time.Time
}

func NewHandler(repo topWorkoutsRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

// ParseYear reads an optional year query param, falling back to fallback.
func ParseYear(r *http.Request, fallback int) (int, error) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		return 0, pkg.NewValidationError("year", "invalid year: %s", yearStr)
	}
	return year, nil
}

func (handler *Handler) HandleTop(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.top")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	year, err := ParseYear(r, handler.now().UTC().Year())
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "invalid year")
		return
	}

	limit := defaultTopLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > maxTopLimit {
			pkg.WriteJSON(w, pkg.NewValidationError("limit", "must be between 1 and %d", maxTopLimit), http.StatusBadRequest)
			return
		}
	}
	span.SetAttributes(attribute.Int("year", year), attribute.Int("limit", limit))

	top, err := handler.repo.TopWorkouts(ctx, userID, year, limit)
	if err != nil {
		log.Errorf("top workouts for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get top workouts", http.StatusInternalServerError)
		return
	}
	if top == nil {
		top = []Summary{}
	}

	pkg.WriteJSON(w, top, http.StatusOK)
}
