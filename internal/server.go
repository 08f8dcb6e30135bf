package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/seefit/internal/config"
	"github.com/2beens/seefit/internal/db"
	"github.com/2beens/seefit/internal/hiits"
	"github.com/2beens/seefit/internal/middleware"
	"github.com/2beens/seefit/internal/progress"
	"github.com/2beens/seefit/internal/telemetry/metrics"
	"github.com/2beens/seefit/internal/telemetry/tracing"
	"github.com/2beens/seefit/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// hiits and progress payloads are tiny, anything above this is refused
const maxRequestBodyBytes = 64 << 10

type hiitsStore interface {
	ListHiits(ctx context.Context) ([]hiits.Hiit, error)
	AddHiit(ctx context.Context, hiit hiits.Hiit) error
	DeleteHiit(ctx context.Context, id string) error
	FindHiit(ctx context.Context, id string) (hiits.Hiit, bool, error)
	ListExercises(ctx context.Context) ([]hiits.Exercise, error)
	ListHiitExercises(ctx context.Context, hiitID string) ([]hiits.Exercise, error)
	AddExercise(ctx context.Context, exercise hiits.Exercise) (hiits.Exercise, error)
}

type schemaExecer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// prepareStore creates the tables if missing, and seeds the default hiits
// when seed is set.
func prepareStore(ctx context.Context, schemaDB schemaExecer, repo hiitsStore, seed bool) error {
	if err := db.Migrate(ctx, schemaDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if !seed {
		log.Debugln("seed on startup disabled")
		return nil
	}

	addedHiits, addedExercises, err := hiits.Seed(ctx, repo)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Infof("seed done, new hiits: %d, new exercises: %d", addedHiits, addedExercises)
	return nil
}

type progressStore interface {
	Get(ctx context.Context) (progress.Progress, error)
	Save(ctx context.Context, p progress.Progress) error
	Update(ctx context.Context, fn func(p *progress.Progress)) (progress.Progress, error)
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	hiitsRepo     hiitsStore
	progressStore progressStore

	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
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
	}

	repo := hiits.NewRepo(dbPool)
	if err := prepareStore(ctx, dbPool, repo, params.Config.SeedOnStartup); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry(pgxpoolCollector)
	metricsManager := metrics.NewManager("seefit", "backend", promRegistry)
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

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "seefit-backend", rdb)
	if err != nil {
		return nil, err
	}

	var hiitsRepo hiitsStore = repo
	if params.Config.CacheEnabled {
		hiitsRepo = hiits.NewCachedRepo(repo, params.Config.CacheSizeMB, params.Config.CacheTTLSeconds)
	}

	return &Server{
		config:        params.Config,
		versionInfo:   params.VersionInfo,
		dbPool:        dbPool,
		hiitsRepo:     hiitsRepo,
		progressStore: progress.NewRedisStore(rdb, params.Config.ProgressKey),

		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

type RouterParams struct {
	HiitsRepo           hiitsStore
	ProgressStore       progressStore
	RateLimiter         middleware.RequestRateLimiter
	MetricsManager      *metrics.Manager
	WritesAllowedPerMin int
	AllowedOrigins      []string
	StaticDir           string
	VersionInfo         string
}

// NewRouter builds the main router with all the API routes. Paths not taken
// by the API are served from the static dir, if one is set.
func NewRouter(params RouterParams) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("seefit-router"))

	writeLimit := func(routeName string) mux.MiddlewareFunc {
		if params.RateLimiter == nil {
			return nil
		}
		return middleware.RateLimit(params.RateLimiter, routeName, params.WritesAllowedPerMin, params.MetricsManager)
	}

	hiitsHandler := hiits.NewHandler(params.HiitsRepo, params.MetricsManager)
	hiitsHandler.SetupRoutes(r, writeLimit("hiits-writes"))

	progressHandler := progress.NewHandler(params.ProgressStore, params.HiitsRepo, params.MetricsManager)
	progressHandler.SetupRoutes(r, writeLimit("progress-writes"))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteText(w, "ok", http.StatusOK)
	}).Methods("GET").Name("health")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteText(w, params.VersionInfo, http.StatusOK)
	}).Methods("GET").Name("version")

	// preflight requests are answered by the cors middleware
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Name("preflight")

	if params.StaticDir != "" {
		if exists, err := pkg.PathExists(params.StaticDir, true); err != nil || !exists {
			log.Warnf("static dir [%s] not found: %v", params.StaticDir, err)
		}
		r.PathPrefix("/").Methods("GET", "HEAD").Handler(
			otelhttp.NewHandler(http.FileServer(http.Dir(params.StaticDir)), "static"),
		).Name("static")
	}

	r.Use(middleware.PanicRecovery(params.MetricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(params.MetricsManager))
	r.Use(middleware.Cors(params.AllowedOrigins))
	r.Use(middleware.LimitBody(maxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := NewRouter(RouterParams{
		HiitsRepo:           s.hiitsRepo,
		ProgressStore:       s.progressStore,
		RateLimiter:         s.rateLimiter,
		MetricsManager:      s.metricsManager,
		WritesAllowedPerMin: s.config.WritesAllowedPerMin,
		AllowedOrigins:      s.config.AllowedOrigins,
		StaticDir:           s.config.StaticDir,
		VersionInfo:         s.versionInfo,
	})

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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
