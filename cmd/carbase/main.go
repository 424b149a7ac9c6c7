package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/catalog"
	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/application/vehicles"
	"github.com/carbase/carbase/internal/config"
	httprouter "github.com/carbase/carbase/internal/infrastructure/http"
	"github.com/carbase/carbase/internal/infrastructure/http/handlers"
	"github.com/carbase/carbase/internal/infrastructure/http/middleware"
	"github.com/carbase/carbase/internal/infrastructure/inspection"
	"github.com/carbase/carbase/internal/infrastructure/persistence/postgres"
	"github.com/carbase/carbase/internal/infrastructure/queue"
	"github.com/carbase/carbase/internal/infrastructure/regcheck"
	"github.com/carbase/carbase/internal/infrastructure/webhook"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		log = log.Level(level)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	vehicleRepo := postgres.NewVehicleRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)

	var emitter ports.WebhookEmitter
	if cfg.Webhook.URL != "" {
		opts := []webhook.HTTPEmitterOption{}
		if cfg.Webhook.APIKey != "" {
			opts = append(opts, webhook.WithHeader("X-API-Key", cfg.Webhook.APIKey))
		}
		emitter = webhook.NewHTTPEmitter(cfg.Webhook.URL, opts...)
	} else {
		emitter = webhook.NewNoopEmitter()
	}

	var taskEnqueuer ports.TaskEnqueuer
	var auditWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		auditWorker = queue.NewWorker(asynqOpt, emitter, log)
		go func() {
			if err := auditWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("audit worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewNoopEnqueuer()
	}

	checkerClient := &http.Client{Timeout: cfg.Validators.Timeout}
	var registrationChecker ports.RegistrationChecker
	if cfg.Validators.RegistrationURL != "" {
		registrationChecker = regcheck.New(cfg.Validators.RegistrationURL, regcheck.WithClient(checkerClient))
	} else {
		log.Warn().Msg("REGISTRATION_CHECK_URL not set; registration always reported invalid")
		registrationChecker = regcheck.NewDisabled()
	}
	var inspectionChecker ports.InspectionChecker
	if cfg.Validators.InspectionURL != "" {
		inspectionChecker = inspection.New(cfg.Validators.InspectionURL, inspection.WithClient(checkerClient))
	} else {
		log.Warn().Msg("INSPECTION_CHECK_URL not set; inspection always reported invalid")
		inspectionChecker = inspection.NewDisabled()
	}

	createUC := vehicles.NewCreateVehicle(vehicleRepo)
	updateUC := vehicles.NewUpdateVehicle(vehicleRepo)
	deleteUC := vehicles.NewDeleteVehicle(vehicleRepo, log)
	listUC := vehicles.NewListVehicles(vehicleRepo)
	detailUC := vehicles.NewGetVehicleDetail(vehicleRepo, registrationChecker, inspectionChecker, log)
	listBrandsUC := catalog.NewListBrands(catalogRepo)
	listModelsUC := catalog.NewListModels(catalogRepo)

	vehiclesHandler := handlers.NewVehiclesHandler(createUC, updateUC, deleteUC, listUC, detailUC, taskEnqueuer, log)
	catalogHandler := handlers.NewCatalogHandler(listBrandsUC, listModelsUC, log)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		VehiclesHandler: vehiclesHandler,
		CatalogHandler:  catalogHandler,
		HealthHandler:   healthHandler,
		Log:             log,
		Secure:          secureMiddleware,
		CORS:            corsMiddleware,
		IPRateLimit:     ipLimit,
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if auditWorker != nil {
		auditWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
