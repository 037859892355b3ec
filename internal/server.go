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
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/auth"
	"github.com/shreyajaiswal17/athletehub/internal/config"
	"github.com/shreyajaiswal17/athletehub/internal/dashboard"
	"github.com/shreyajaiswal17/athletehub/internal/db"
	"github.com/shreyajaiswal17/athletehub/internal/guidance"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	"github.com/shreyajaiswal17/athletehub/internal/mcp"
	"github.com/shreyajaiswal17/athletehub/internal/middleware"
	"github.com/shreyajaiswal17/athletehub/internal/misc"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/metrics"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mcpSecret         string // required in X-MCP-Secret for /mcp requests
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	athletesRepo     *athletes.Repo
	recordsRepo      *performance.Repo
	injuriesRepo     *injuries.Repo
	metricsCache     *dashboard.Cache
	dashboardService *dashboard.Service

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	PostgresPassword        string
	MCPSecret               string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go cleanupSessionsLoop(ctx, authService, params.Config.SessionCleanupEvery)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "athletehub-backend", rdb)
	if err != nil {
		return nil, err
	}

	athletesRepo := athletes.NewRepo(dbPool, workload.CanonicalSport)
	recordsRepo := performance.NewRepo(dbPool)
	injuriesRepo := injuries.NewRepo(dbPool)
	metricsCache := dashboard.NewCache(
		params.Config.MetricsCacheSizeMB,
		params.Config.MetricsCacheTTL,
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		mcpSecret:   params.MCPSecret,
		versionInfo: params.VersionInfo,

		athletesRepo: athletesRepo,
		recordsRepo:  recordsRepo,
		injuriesRepo: injuriesRepo,
		metricsCache: metricsCache,
		dashboardService: dashboard.NewService(
			athletesRepo,
			recordsRepo,
			injuriesRepo,
			metricsCache,
			metricsManager,
		),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func cleanupSessionsLoop(ctx context.Context, authService *auth.Service, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := authService.ScanAndClean(ctx)
			log.Debugf("session cleanup: removed %d stale tokens", removed)
		}
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	athletesHandler := athletes.NewHandler(s.athletesRepo, s.metricsCache)
	recordsHandler := performance.NewHandler(s.recordsRepo, s.metricsCache, s.metricsManager)
	injuriesHandler := injuries.NewHandler(s.injuriesRepo, s.metricsCache, s.metricsManager)
	dashboardHandler := dashboard.NewHandler(s.dashboardService)
	guidanceHandler := guidance.NewHandler(s.dashboardService)

	registerRoutes(r, routeHandlers{
		athletes:  athletesHandler,
		records:   recordsHandler,
		injuries:  injuriesHandler,
		dashboard: dashboardHandler,
		guidance:  guidanceHandler,
	})

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	mcpServer := mcp.NewServer(mcp.NewContextService(
		mcp.NewPoolSchemaRepo(s.dbPool),
		s.athletesRepo,
		s.recordsRepo,
		s.dashboardService,
	))
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(otelhttp.NewHandler(mcpHandler, "mcp")).Name("mcp")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.mcpSecret, s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

type routeHandlers struct {
	athletes  *athletes.Handler
	records   *performance.Handler
	injuries  *injuries.Handler
	dashboard *dashboard.Handler
	guidance  *guidance.Handler
}

// registerRoutes wires the athlete, training data, injury, metrics and guidance endpoints.
// Numeric path params are constrained so /athletes/data and /athletes/injuries never
// collide with /athletes/{id}.
func registerRoutes(r *mux.Router, h routeHandlers) {
	r.HandleFunc("/athletes", h.athletes.HandleAdd).Methods("POST", "OPTIONS").Name("new-athlete")
	r.HandleFunc("/athletes", h.athletes.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-athlete")
	r.HandleFunc("/athletes/{id:[0-9]+}", h.athletes.HandleGet).Methods("GET", "OPTIONS").Name("get-athlete")
	r.HandleFunc("/athletes/{id:[0-9]+}", h.athletes.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-athlete")
	r.HandleFunc("/athletes/list/page/{page}/size/{size}", h.athletes.HandleList).Methods("GET", "OPTIONS").Name("list-athletes")

	r.HandleFunc("/athletes/{id:[0-9]+}/data", h.records.HandleAdd).Methods("POST", "OPTIONS").Name("new-record")
	r.HandleFunc("/athletes/{id:[0-9]+}/data/page/{page}/size/{size}", h.records.HandleList).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/athletes/data", h.records.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-record")
	r.HandleFunc("/athletes/data/{rid:[0-9]+}", h.records.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-record")

	r.HandleFunc("/athletes/{id:[0-9]+}/injuries", h.injuries.HandleAdd).Methods("POST", "OPTIONS").Name("new-injury")
	r.HandleFunc("/athletes/{id:[0-9]+}/injuries", h.injuries.HandleList).Methods("GET", "OPTIONS").Name("list-injuries")
	r.HandleFunc("/athletes/injuries", h.injuries.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-injury")
	r.HandleFunc("/athletes/injuries/{iid:[0-9]+}", h.injuries.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-injury")
	r.HandleFunc("/athletes/injuries/{iid:[0-9]+}/recover", h.injuries.HandleRecover).Methods("POST", "OPTIONS").Name("recover-injury")

	r.HandleFunc("/athletes/{id:[0-9]+}/metrics", h.dashboard.HandleMetrics).Methods("GET", "OPTIONS").Name("athlete-metrics")
	r.HandleFunc("/athletes/{id:[0-9]+}/metrics/load", h.dashboard.HandleLoad).Methods("GET", "OPTIONS").Name("athlete-load")
	r.HandleFunc("/athletes/{id:[0-9]+}/status", h.dashboard.HandleStatus).Methods("GET", "OPTIONS").Name("athlete-status")
	r.HandleFunc("/team/overview", h.dashboard.HandleTeamOverview).Methods("GET", "OPTIONS").Name("team-overview")

	r.HandleFunc("/athletes/{id:[0-9]+}/guidance/schedule", h.guidance.HandleSchedule).Methods("GET", "OPTIONS").Name("guidance-schedule")
	r.HandleFunc("/athletes/{id:[0-9]+}/guidance/nutrition", h.guidance.HandleNutrition).Methods("GET", "OPTIONS").Name("guidance-nutrition")
	r.HandleFunc("/athletes/{id:[0-9]+}/guidance/career", h.guidance.HandleCareer).Methods("GET", "OPTIONS").Name("guidance-career")
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf(" >>> graceful shutdown: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
