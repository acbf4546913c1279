package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plumbing_portal/internal/adapter/http/handlers"
	"plumbing_portal/internal/adapter/http/middleware"
	"plumbing_portal/internal/adapter/http/templates"
	"plumbing_portal/internal/config"
	"plumbing_portal/internal/domain/catalog"
	"plumbing_portal/internal/domain/pricing"
	"plumbing_portal/internal/usecase"
	"plumbing_portal/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Dependencies are the use cases and settings the router is built from.
type Dependencies struct {
	Intake  usecase.IIntakeUseCase
	Contact usecase.IContactUseCase
	Config  config.Config
	Logger  *zap.Logger
}

// Run wires the store and use cases from cfg and serves HTTP until SIGINT/SIGTERM.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	store, err := NewRequestStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router, err := NewRouter(NewDependencies(cfg, store, logger))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("[http] shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("[http] server stopped")
	return nil
}

// NewDependencies builds the intake and contact use cases over store.
func NewDependencies(cfg config.Config, store interfaces.IRequestStore, logger *zap.Logger) Dependencies {
	cat := catalog.Default().WithProfile(cfg.BusinessName, cfg.EmergencyPhone)
	return Dependencies{
		Intake:  usecase.NewIntakeUseCase(store, cat, pricing.NewEstimator(), logger),
		Contact: usecase.NewContactUseCase(logger),
		Config:  cfg,
		Logger:  logger,
	}
}

// NewRouter registers middleware, HTML pages, the /v1 API and swagger.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	// gin trusts every proxy by default; only configured ones may set the client IP.
	if err := router.SetTrustedProxies(deps.Config.Proxies()); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = deps.Config.MaxPhotoBytes
	setMiddlewares(router, deps)

	pageHandler := handlers.NewPageHandler(deps.Intake, deps.Contact, deps.Config.MaxPhotoBytes, deps.Logger)
	addPageRoutes(router, pageHandler)

	estimateHandler := handlers.NewEstimateHandler(deps.Intake)
	serviceRequestHandler := handlers.NewServiceRequestHandler(deps.Intake, deps.Logger)
	contactHandler := handlers.NewContactHandler(deps.Contact)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, estimateHandler, serviceRequestHandler, contactHandler)
	addSwaggerRoutes(router)

	return router, nil
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(cors.New(corsConfig(deps.Config.Origins())))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	if deps.Config.MaxRequestsPerMin > 0 {
		router.Use(middleware.NewRateLimiter(deps.Config.MaxRequestsPerMin, deps.Logger).Handler())
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
