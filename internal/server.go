package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitgenius/internal/activity"
	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/avatar"
	"github.com/2beens/fitgenius/internal/chat"
	"github.com/2beens/fitgenius/internal/config"
	"github.com/2beens/fitgenius/internal/db"
	"github.com/2beens/fitgenius/internal/docstore"
	plansmcp "github.com/2beens/fitgenius/internal/mcp"
	"github.com/2beens/fitgenius/internal/middleware"
	"github.com/2beens/fitgenius/internal/misc"
	"github.com/2beens/fitgenius/internal/modules"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/internal/users"
)

const docCacheTTL = 5 * time.Minute

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	cron        *cron.Cron

	loginChecker *auth.LoginChecker
	authService  *auth.Service

	usersService    *users.Service
	modulesService  *modules.Service
	plansService    *plans.Service
	activityService *activity.Service
	avatarService   *avatar.Service
	chatService     *chat.Service
	mcpService      *plansmcp.PlanContextService

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	GeminiAPIKey            string
	AvatarAPIKey            string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitgenius-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   15 * time.Second,
	}

	store := docstore.NewCachedStore(docstore.NewPsqlStore(dbPool), cfg.DocCacheSizeMB, docCacheTTL)

	usersService := users.NewService(users.NewAccountRepo(dbPool), store)
	modulesService := modules.NewService(store)
	avatarService := avatar.NewService(usersService, store)
	outfitRewarder := avatar.NewOutfitRewarder(avatar.NewOutfitRewarderParams{
		Avatars:        avatarService,
		Store:          store,
		APIBaseURL:     cfg.AvatarAPIBaseURL,
		APIKey:         params.AvatarAPIKey,
		OutfitAssets:   cfg.AvatarOutfitAssets,
		HttpClient:     tracedHttpClient,
		MetricsManager: metricsManager,
	})
	plansService := plans.NewService(plans.NewServiceParams{
		Store:          store,
		Modules:        modulesService,
		Locations:      usersService,
		RewardHook:     outfitRewarder,
		MetricsManager: metricsManager,
	})

	prompt, err := chat.LoadPrompt(cfg.ChatPromptPath)
	if err != nil {
		return nil, fmt.Errorf("load chat prompt: %w", err)
	}
	var completer chat.Completer = chat.DisabledCompleter{}
	if params.GeminiAPIKey != "" {
		if completer, err = chat.NewGenAICompleter(ctx, params.GeminiAPIKey, prompt); err != nil {
			return nil, err
		}
	} else {
		log.Warnln("no gemini api key, chat assistant disabled")
	}

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		authService:  auth.NewAuthService(cfg.SessionTTL, rdb),
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL, rdb),

		usersService:    usersService,
		modulesService:  modulesService,
		plansService:    plansService,
		activityService: activity.NewService(store, usersService),
		avatarService:   avatarService,
		chatService: chat.NewService(chat.NewServiceParams{
			Conversations:  chat.NewConversationStore(rdb, cfg.ChatConversationTTL),
			Completer:      completer,
			Profiles:       usersService,
			Modules:        modulesService,
			Prompt:         prompt,
			MetricsManager: metricsManager,
		}),
		mcpService: plansmcp.NewPlanContextService(plansService, modulesService),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	misc.NewHandler(s.versionInfo).SetupRoutes(r)
	users.NewHandler(s.usersService, s.authService).SetupRoutes(r, reqRateLimiter, s.metricsManager)
	modules.NewHandler(s.modulesService).SetupRoutes(r)
	plans.NewHandler(s.plansService).SetupRoutes(r)
	activity.NewHandler(s.activityService).SetupRoutes(r)
	avatar.NewHandler(s.avatarService).SetupRoutes(r)
	chat.NewHandler(s.chatService).SetupRoutes(r, reqRateLimiter, s.config.ChatRequestsPerMin, s.metricsManager)

	r.Handle("/mcp", plansmcp.NewHTTPHandler(s.mcpService)).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	if err := s.startJobs(); err != nil {
		log.Fatalf("failed to schedule jobs: %s", err)
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.cron != nil {
		s.cron.Stop()
		log.Trace("scheduled jobs stopped ...")
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
