package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/middleware"
	"github.com/2beens/fitgenius/internal/modules"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=chat_test

type service interface {
	Send(ctx context.Context, uid, text string) (*Reply, error)
	Reset(ctx context.Context, uid string) error
	AddModule(ctx context.Context, uid string, module modules.WorkoutModule) (*modules.WorkoutModule, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

type sendRequest struct {
	Message string `json:"message"`
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	requestsPerMin int,
	metricsManager *metrics.Manager,
) {
	rateLimit := middleware.RateLimit(rateLimiter, "chat", requestsPerMin, middleware.ByUser, metricsManager)

	mainRouter.Handle("/chat/messages", rateLimit(http.HandlerFunc(h.HandleSend))).Methods("POST", "OPTIONS")
	mainRouter.Handle("/chat/modules", rateLimit(http.HandlerFunc(h.HandleAddModule))).Methods("POST", "OPTIONS")
	mainRouter.Handle("/chat", rateLimit(http.HandlerFunc(h.HandleReset))).Methods("DELETE", "OPTIONS")
}

func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.send")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("chat send, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.service.Send(ctx, uid, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("chat send for user %s: %s", uid, err)
		http.Error(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, reply)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.reset")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.Reset(ctx, uid); err != nil {
		log.Errorf("chat reset for user %s: %s", uid, err)
		http.Error(w, "failed to reset conversation", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAddModule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.addModule")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var module modules.WorkoutModule
	if err := json.NewDecoder(r.Body).Decode(&module); err != nil {
		log.Errorf("chat add module, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.service.AddModule(ctx, uid, module)
	if err != nil {
		switch {
		case errors.Is(err, modules.ErrDuplicateTitle):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, modules.ErrEmptyTitle), errors.Is(err, modules.ErrInvalidExercises):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("chat add module for user %s: %s", uid, err)
			http.Error(w, "failed to save module", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, saved)
}
