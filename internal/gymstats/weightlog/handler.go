package weightlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weightlog_test

type weightLogRepo interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	Add(ctx context.Context, userID string, entry Entry) (Entry, error)
	Update(ctx context.Context, userID string, entry Entry) (Entry, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type derivedDataRefresher interface {
	Refresh(ctx context.Context, userID string) error
}

type Handler struct {
	repo      weightLogRepo
	refresher derivedDataRefresher
}

func NewHandler(repo weightLogRepo, refresher derivedDataRefresher) *Handler {
	return &Handler{
		repo:      repo,
		refresher: refresher,
	}
}

// bodyweight feeds the volume of bodyweight exercises, so every change re-derives the stored data
func (handler *Handler) refresh(ctx context.Context, userID string) {
	if err := handler.refresher.Refresh(ctx, userID); err != nil {
		log.Warnf("refresh derived data of %s after weight log change: %s", userID, err)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlog.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list weight log for %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get weight log", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func decodeInput(r *http.Request) (Entry, error) {
	var in EntryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return Entry{}, pkg.NewValidationError("body", "invalid json")
	}
	return in.ToEntry()
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlog.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entry, err := decodeInput(r)
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "invalid weight log entry")
		return
	}

	added, err := handler.repo.Add(ctx, userID, entry)
	if err != nil {
		if !pkg.WriteErrorOrValidation(w, err, "failed to add weight log entry") {
			log.Errorf("add weight log entry for %s: %s", userID, err)
		}
		return
	}
	handler.refresh(ctx, userID)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func entryID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, pkg.NewValidationError("id", "invalid id")
	}
	return id, nil
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlog.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := entryID(r)
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "invalid id")
		return
	}

	entry, err := decodeInput(r)
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "invalid weight log entry")
		return
	}
	entry.ID = id

	updated, err := handler.repo.Update(ctx, userID, entry)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			pkg.WriteJSONError(w, "weight log entry not found", http.StatusNotFound)
			return
		}
		if !pkg.WriteErrorOrValidation(w, err, "failed to update weight log entry") {
			log.Errorf("update weight log entry %d for %s: %s", id, userID, err)
		}
		return
	}
	handler.refresh(ctx, userID)

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlog.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := entryID(r)
	if err != nil {
		pkg.WriteErrorOrValidation(w, err, "invalid id")
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			pkg.WriteJSONError(w, "weight log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete weight log entry %d for %s: %s", id, userID, err)
		pkg.WriteJSONError(w, "failed to delete weight log entry", http.StatusInternalServerError)
		return
	}
	handler.refresh(ctx, userID)

	w.WriteHeader(http.StatusNoContent)
}
