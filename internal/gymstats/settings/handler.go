package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=settings_test

type connectionsRepo interface {
	Get(ctx context.Context, userID string) (Connection, error)
	Save(ctx context.Context, conn Connection) (Connection, error)
}

type Handler struct {
	repo connectionsRepo
}

func NewHandler(repo connectionsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

type settingsResponse struct {
	Connection
	APIKey    string `json:"apiKey"`
	HasAPIKey bool   `json:"hasApiKey"`
}

func newSettingsResponse(conn Connection) settingsResponse {
	return settingsResponse{
		Connection: conn,
		APIKey:     conn.MaskedAPIKey(),
		HasAPIKey:  conn.Configured(),
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrConnectionNotFound) {
			pkg.WriteJSONError(w, "No settings found", http.StatusNotFound)
			return
		}
		log.Errorf("get settings for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, newSettingsResponse(conn), http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		pkg.WriteJSON(w, pkg.NewValidationError("body", "invalid json"), http.StatusBadRequest)
		return
	}

	var existing *Connection
	conn, err := handler.repo.Get(ctx, userID)
	switch {
	case err == nil:
		existing = &conn
	case errors.Is(err, ErrConnectionNotFound):
	default:
		log.Errorf("get settings for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to save settings", http.StatusInternalServerError)
		return
	}

	updated, err := update.Apply(userID, existing)
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "failed to save settings")
		return
	}

	saved, err := handler.repo.Save(ctx, updated)
	if err != nil {
		log.Errorf("save settings for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to save settings", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, newSettingsResponse(saved), http.StatusOK)
}
