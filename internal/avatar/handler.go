package avatar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=avatar_test

type service interface {
	SetFromExport(ctx context.Context, uid, exportURL, vendorUserID string) (*Avatar, error)
	Get(ctx context.Context, uid string, size int) (*Avatar, error)
	UnlockedOutfits(ctx context.Context, uid string) ([]UnlockedOutfit, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

type setAvatarRequest struct {
	URL          string `json:"url"`
	VendorUserID string `json:"userId"`
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/avatar", h.HandleSet).Methods("PUT", "OPTIONS")
	r.HandleFunc("/avatar", h.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/avatar/outfits", h.HandleOutfits).Methods("GET", "OPTIONS")
	r.HandleFunc("/avatar/render/{avatarId}", h.HandleRender).Methods("GET", "OPTIONS")
}

func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.avatar.set")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req setAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set avatar, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	avatar, err := h.service.SetFromExport(ctx, uid, req.URL, req.VendorUserID)
	if err != nil {
		if errors.Is(err, ErrInvalidExportURL) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set avatar for user %s: %s", uid, err)
		http.Error(w, "failed to set avatar", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, avatar)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.avatar.get")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	size := DefaultRenderSize
	if sizeParam := r.URL.Query().Get("size"); sizeParam != "" {
		var err error
		if size, err = strconv.Atoi(sizeParam); err != nil {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
	}

	avatar, err := h.service.Get(ctx, uid, size)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoAvatar):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrInvalidSize):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("get avatar for user %s: %s", uid, err)
			http.Error(w, "failed to get avatar", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusOK, avatar)
}

func (h *Handler) HandleOutfits(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.avatar.outfits")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	outfits, err := h.service.UnlockedOutfits(ctx, uid)
	if err != nil {
		log.Errorf("list outfits for user %s: %s", uid, err)
		http.Error(w, "failed to list outfits", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, outfits)
}

// HandleRender redirects to a render of any avatar, it needs no session.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	avatarID := mux.Vars(r)["avatarId"]
	if avatarID == "" {
		http.Error(w, "missing avatar id", http.StatusBadRequest)
		return
	}

	size := DefaultRenderSize
	if sizeParam := r.URL.Query().Get("size"); sizeParam != "" {
		s, err := strconv.Atoi(sizeParam)
		if err != nil || s <= 0 || s > 1024 {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		size = s
	}

	http.Redirect(w, r, RenderURL(avatarID, size), http.StatusFound)
}
