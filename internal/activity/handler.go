package activity

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

type service interface {
	Report(ctx context.Context, uid string, totals DailyTotals) error
	Today(ctx context.Context, uid string) (DailyTotals, error)
	LastSevenDays(ctx context.Context, uid string) (*WeekSeries, error)
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
	r.HandleFunc("/activity/today", h.HandleToday).Methods("GET", "OPTIONS")
	r.HandleFunc("/activity/week", h.HandleWeek).Methods("GET", "OPTIONS")
	r.HandleFunc("/activity/{date}", h.HandleReport).Methods("PUT", "OPTIONS")
}

func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.report")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var totals DailyTotals
	if err := json.NewDecoder(r.Body).Decode(&totals); err != nil {
		log.Errorf("activity report, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	totals.Date = mux.Vars(r)["date"]

	if err := h.service.Report(ctx, uid, totals); err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTotals), errors.Is(err, ErrFutureDate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("activity report for user %s: %s", uid, err)
			http.Error(w, "failed to store activity", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusOK, totals)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.today")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	totals, err := h.service.Today(ctx, uid)
	if err != nil {
		log.Errorf("activity today for user %s: %s", uid, err)
		http.Error(w, "failed to get activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, totals)
}

func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.week")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	series, err := h.service.LastSevenDays(ctx, uid)
	if err != nil {
		log.Errorf("activity week for user %s: %s", uid, err)
		http.Error(w, "failed to get activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, series)
}
