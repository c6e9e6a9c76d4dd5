package exercisetypes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercisetypes_test

type templatesRepo interface {
	List(ctx context.Context, userID string) ([]Template, error)
	Set(ctx context.Context, userID, templateID string, exType volume.ExerciseType) (Template, error)
	Delete(ctx context.Context, userID, templateID string) error
}

// derivedDataRefresher recomputes volumes, records and aggregates of a user.
type derivedDataRefresher interface {
	Refresh(ctx context.Context, userID string) error
}

type Handler struct {
	repo      templatesRepo
	refresher derivedDataRefresher
}

func NewHandler(repo templatesRepo, refresher derivedDataRefresher) *Handler {
	return &Handler{
		repo:      repo,
		refresher: refresher,
	}
}

// refresh failures are only logged, the next sync brings stored volumes in line
func (handler *Handler) refresh(ctx context.Context, userID string) {
	if err := handler.refresher.Refresh(ctx, userID); err != nil {
		log.Warnf("refresh derived data of %s after exercise type change: %s", userID, err)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisetypes.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	templates, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list exercise type templates for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get exercise types", http.StatusInternalServerError)
		return
	}
	if templates == nil {
		templates = []Template{}
	}

	pkg.WriteJSON(w, templates, http.StatusOK)
}

func (handler *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisetypes.set")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	templateID := mux.Vars(r)["templateId"]
	if templateID == "" {
		pkg.WriteJSON(w, pkg.NewValidationError("templateId", "missing exercise template id"), http.StatusBadRequest)
		return
	}

	var req struct {
		ExerciseType string `json:"exerciseType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSON(w, pkg.NewValidationError("body", "invalid json"), http.StatusBadRequest)
		return
	}
	exType, ok := volume.ParseExerciseType(req.ExerciseType)
	if !ok {
		pkg.WriteJSON(w, pkg.NewValidationError("exerciseType", "unknown exercise type %q", req.ExerciseType), http.StatusBadRequest)
		return
	}

	template, err := handler.repo.Set(ctx, userID, templateID, exType)
	if err != nil {
		log.Errorf("set exercise type template %s for %s: %s", templateID, userID, err)
		pkg.WriteJSONError(w, "failed to set exercise type", http.StatusInternalServerError)
		return
	}
	handler.refresh(ctx, userID)

	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisetypes.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	templateID := mux.Vars(r)["templateId"]
	if err := handler.repo.Delete(ctx, userID, templateID); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			pkg.WriteJSONError(w, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise type template %s for %s: %s", templateID, userID, err)
		pkg.WriteJSONError(w, "failed to delete exercise type", http.StatusInternalServerError)
		return
	}
	handler.refresh(ctx, userID)

	w.WriteHeader(http.StatusNoContent)
}
