package modules

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=modules_test

type service interface {
	Save(ctx context.Context, uid string, module WorkoutModule) (*WorkoutModule, error)
	List(ctx context.Context, uid string) ([]WorkoutModule, error)
	Get(ctx context.Context, uid, id string) (*WorkoutModule, error)
	Delete(ctx context.Context, uid, id string) error
	DeleteByTitle(ctx context.Context, uid, title string) (int64, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/modules", h.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/modules", h.HandleSave).Methods("POST", "OPTIONS")
	r.HandleFunc("/modules", h.HandleDeleteByTitle).Methods("DELETE", "OPTIONS").Queries("title", "{title}")
	r.HandleFunc("/modules/{id}", h.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/modules/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.modules.list")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	modules, err := h.service.List(ctx, uid)
	if err != nil {
		log.Errorf("list modules for user %s: %s", uid, err)
		http.Error(w, "failed to list modules", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, modules)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.modules.save")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var module WorkoutModule
	if err := json.NewDecoder(r.Body).Decode(&module); err != nil {
		log.Errorf("save module, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.service.Save(ctx, uid, module)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyTitle), errors.Is(err, ErrInvalidExercises):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateTitle):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("save module for user %s: %s", uid, err)
			http.Error(w, "failed to save module", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, saved)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.modules.get")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	module, err := h.service.Get(ctx, uid, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("get module for user %s: %s", uid, err)
		http.Error(w, "failed to get module", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, module)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.modules.delete")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.service.Delete(ctx, uid, id); err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("delete module %s for user %s: %s", id, uid, err)
		http.Error(w, "failed to delete module", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDeleteByTitle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.modules.deleteByTitle")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "title missing", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteByTitle(ctx, uid, title)
	if err != nil {
		log.Errorf("delete modules [%s] for user %s: %s", title, uid, err)
		http.Error(w, "failed to delete modules", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
