package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/middleware"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const loginRequestsPerMin = 15

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type userService interface {
	SignUp(ctx context.Context, email, password string, profile Profile) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, uid string) (*Profile, error)
	UpdateProfile(ctx context.Context, uid string, profile Profile) (*Profile, error)
}

type sessionService interface {
	Login(ctx context.Context, uid string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	users    userService
	sessions sessionService
}

func NewHandler(users userService, sessions sessionService) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
	}
}

type signUpRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Profile  Profile `json:"profile"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("profile-get")
	mainRouter.HandleFunc("/profile", h.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("profile-update")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/signup", h.HandleSignUp).
		Methods("POST", "OPTIONS").Name("signup")
	loginSubrouter.
		HandleFunc("/login", h.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", h.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// credentials guessing is limited per client IP
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginRequestsPerMin, middleware.ByIP, metricsManager))
}

func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.signUp")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("signup, unmarshal json params: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	uid, err := h.users.SignUp(ctx, req.Email, req.Password, req.Profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrWeakPassword):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("signup failed: %s", err)
			http.Error(w, "signup failed", http.StatusInternalServerError)
		}
		return
	}

	h.startSession(ctx, w, uid, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	uid, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	h.startSession(ctx, w, uid, http.StatusOK)
}

func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, uid string, status int) {
	token, err := h.sessions.Login(ctx, uid, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Tracef("new login success for user %s", uid)
	pkg.WriteJSON(w, status, loginResponse{Token: token, UserID: uid})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := r.Header.Get(auth.TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.getProfile")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("get profile for user %s: %s", uid, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateProfile")
	defer span.End()

	uid, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.users.UpdateProfile(ctx, uid, profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTimezone):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Errorf("update profile for user %s: %s", uid, err)
			http.Error(w, "failed to update profile", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}
