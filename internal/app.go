package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fileshare-api/config"
	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/application/services"
	"fileshare-api/internal/infrastructure/db/postgres"
	uploadRepo "fileshare-api/internal/infrastructure/db/postgres/upload"
	"fileshare-api/internal/infrastructure/logger"
	"fileshare-api/internal/infrastructure/metrics"
	"fileshare-api/internal/infrastructure/objectstore"
	"fileshare-api/internal/interface/api/rest"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/reaper"
)

// Transport-level body cap: the 25 MiB upload ceiling plus headroom
// for multipart framing.
const maxRequestBody = 25<<20 + 1<<20

type App struct {
	logger  *zap.Logger
	cfg     config.Config
	db      *pgxpool.Pool
	store   ports.ObjectStore
	httpSrv *http.Server
	router  *gin.Engine
	reaper  *reaper.Reaper

	mCounter *prometheus.CounterVec
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	cfg := config.Load()

	// logger
	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer lg.Sync()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(lg, mCounter))
	r.Use(middleware.BodyLimit(maxRequestBody))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Upload.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		lg.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, lg, dbDsn)
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}

	// object store
	store, err := objectstore.New(ctx, lg, cfg.S3)
	if err != nil {
		lg.Fatal("failed to connect to object store", zap.Error(err))
	}

	return &App{
		logger:   lg,
		cfg:      cfg,
		db:       dbPool,
		store:    store,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run launches the HTTP server and the expiry reaper and manages both
// through a single context.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.reaper.Run(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	uploads := uploadRepo.NewRepository(a.db)

	// services
	ids := services.NewShortIDGenerator(nil)
	sanitizer := services.NewTextSanitizer()
	uploadService := services.NewUploadService(
		a.store, uploads, ids, sanitizer,
		a.cfg.App.Domain, a.cfg.Upload.AllowedExtensions, a.mCounter,
	)

	// background jobs
	a.reaper = reaper.New(uploads, a.store, a.logger, a.cfg.Reaper.Interval, a.mCounter)

	// controllers
	rest.NewUploadController(a.router, uploadService, a.logger)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
