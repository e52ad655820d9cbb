package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type service interface {
	Location(ctx context.Context, uid string) (*time.Location, error)
	GetWeek(ctx context.Context, uid string) (*Week, error)
	GetWeekByID(ctx context.Context, uid, weekID string) (*Week, error)
	AssignModule(ctx context.Context, uid string, date time.Time, moduleID string) (*Week, error)
	ClearDay(ctx context.Context, uid string, date time.Time) (*Week, error)
	SetExerciseCompletion(ctx context.Context, uid string, date time.Time, index int, completed bool) (*Week, error)
	ClaimReward(ctx context.Context, uid string, date time.Time) (*Week, error)
}

type Handler struct {
	service service
	now     func() time.Time
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

type DayResponse struct {
	DayPlan
	Progress float64 `json:"progress"`
	IsToday  bool    `json:"isToday"`
	Locked   bool    `json:"locked"`
}

type WeekResponse struct {
	ID        string        `json:"id"`
	DateRange string        `json:"dateRange"`
	Days      []DayResponse `json:"days"`
}

type assignModuleRequest struct {
	ModuleID string `json:"moduleId"`
}

type exerciseCompletionRequest struct {
	Completed *bool `json:"completed"`
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans/week", h.HandleGetWeek).Methods("GET", "OPTIONS")
	r.HandleFunc("/plans/week/export.ics", h.HandleExportICS).Methods("GET", "OPTIONS")
	r.HandleFunc("/plans/week/export.xlsx", h.HandleExportXLSX).Methods("GET", "OPTIONS")
	r.HandleFunc("/plans/week/{weekId:week-[0-9]{4}-[0-9]{2}-[0-9]{2}}", h.HandleGetWeekByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/plans/week/day/{date}/module", h.HandleAssignModule).Methods("PUT", "OPTIONS")
	r.HandleFunc("/plans/week/day/{date}/module", h.HandleClearDay).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/plans/week/day/{date}/exercise/{index}", h.HandleSetExerciseCompletion).Methods("PUT", "OPTIONS")
	r.HandleFunc("/plans/week/day/{date}/reward", h.HandleClaimReward).Methods("POST", "OPTIONS")
}

func (h *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getWeek")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	week, err := h.service.GetWeek(ctx, uid)
	if err != nil {
		h.writeError(w, "get week", err)
		return
	}
	h.writeWeek(ctx, w, uid, week)
}

func (h *Handler) HandleGetWeekByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getWeekByID")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	week, err := h.service.GetWeekByID(ctx, uid, mux.Vars(r)["weekId"])
	if err != nil {
		h.writeError(w, "get week by id", err)
		return
	}
	h.writeWeek(ctx, w, uid, week)
}

func (h *Handler) HandleAssignModule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.assignModule")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req assignModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("assign module, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ModuleID == "" {
		http.Error(w, "module id missing", http.StatusBadRequest)
		return
	}

	date, err := h.parseDate(ctx, uid, mux.Vars(r)["date"])
	if err != nil {
		h.writeError(w, "assign module", err)
		return
	}

	week, err := h.service.AssignModule(ctx, uid, date, req.ModuleID)
	if err != nil {
		h.writeError(w, "assign module", err)
		return
	}
	h.writeWeek(ctx, w, uid, week)
}

func (h *Handler) HandleClearDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.clearDay")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	date, err := h.parseDate(ctx, uid, mux.Vars(r)["date"])
	if err != nil {
		h.writeError(w, "clear day", err)
		return
	}

	week, err := h.service.ClearDay(ctx, uid, date)
	if err != nil {
		h.writeError(w, "clear day", err)
		return
	}
	h.writeWeek(ctx, w, uid, week)
}

func (h *Handler) HandleSetExerciseCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.setExerciseCompletion")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid exercise index", http.StatusBadRequest)
		return
	}

	var req exerciseCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	date, err := h.parseDate(ctx, uid, mux.Vars(r)["date"])
	if err != nil {
		h.writeError(w, "set exercise completion", err)
		return
	}

	week, err := h.service.SetExerciseCompletion(ctx, uid, date, index, *req.Completed)
	if err != nil {
		h.writeError(w, "set exercise completion", err)
		return
	}
	h.writeWeek(ctx, w, uid, week)
}

func (h *Handler) HandleClaimReward(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.claimReward")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	date, err := h.parseDate(ctx, uid, mux.Vars(r)["date"])
	if err != nil {
		h.writeError(w, "claim reward", err)
		return
	}

	week, err := h.service.ClaimReward(ctx, uid, date)
	if err != nil {
		h.writeError(w, "claim reward", err)
		return
	}
	h.writeWeek(ctx, w, uid, week)
}

func (h *Handler) HandleExportICS(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.exportICS")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	week, err := h.service.GetWeek(ctx, uid)
	if err != nil {
		h.writeError(w, "export ics", err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, week.ID))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.ICS, ICS(*week, h.now()))
}

func (h *Handler) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.exportXLSX")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	week, err := h.service.GetWeek(ctx, uid)
	if err != nil {
		h.writeError(w, "export xlsx", err)
		return
	}

	workbook, err := XLSX(*week)
	if err != nil {
		log.Errorf("export xlsx for user %s: %s", uid, err)
		http.Error(w, "failed to export week", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, week.ID))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.XLSX, workbook)
}

func (h *Handler) parseDate(ctx context.Context, uid, date string) (time.Time, error) {
	loc, err := h.service.Location(ctx, uid)
	if err != nil {
		return time.Time{}, err
	}
	return ParseDay(date, loc)
}

func (h *Handler) writeWeek(ctx context.Context, w http.ResponseWriter, uid string, week *Week) {
	loc, err := h.service.Location(ctx, uid)
	if err != nil {
		h.writeError(w, "week location", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, NewWeekResponse(week, loc, h.now()))
}

// NewWeekResponse decorates the week with per day progress and lock state as of now.
func NewWeekResponse(week *Week, loc *time.Location, now time.Time) WeekResponse {
	resp := WeekResponse{
		ID:        week.ID,
		DateRange: DateRange(week.Days, loc),
		Days:      make([]DayResponse, 0, len(week.Days)),
	}
	for _, day := range week.Days {
		isToday := IsSameDay(day.Date, now, loc)
		resp.Days = append(resp.Days, DayResponse{
			DayPlan:  day,
			Progress: Progress(day),
			IsToday:  isToday,
			Locked:   isToday && day.RewardClaimed,
		})
	}
	return resp
}

func (h *Handler) writeError(w http.ResponseWriter, action string, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", status)
		return
	}
	log.Debugf("%s: %s", action, err)
	http.Error(w, err.Error(), status)
}

// StatusForError maps plan errors to HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidWeekID),
		errors.Is(err, ErrExerciseIndex),
		errors.Is(err, ErrDayNotInWeek):
		return http.StatusBadRequest
	case errors.Is(err, ErrWeekNotFound),
		errors.Is(err, ErrModuleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDayLocked),
		errors.Is(err, ErrNotToday),
		errors.Is(err, ErrNoModule),
		errors.Is(err, ErrRewardClaimed),
		errors.Is(err, ErrModuleIncomplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
