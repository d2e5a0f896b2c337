package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rizaldy/angkut/internal/pkg/config"
	"github.com/rizaldy/angkut/internal/pkg/database"
	"github.com/rizaldy/angkut/internal/pkg/eta"
	"github.com/rizaldy/angkut/internal/pkg/health"
	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/nsq"
	"github.com/rizaldy/angkut/internal/pkg/server"
	"github.com/rizaldy/angkut/services/geo"
	locationgateway "github.com/rizaldy/angkut/services/location/gateway"
	locationhandler "github.com/rizaldy/angkut/services/location/handler"
	locationrepo "github.com/rizaldy/angkut/services/location/repository"
	locationusecase "github.com/rizaldy/angkut/services/location/usecase"
	matchhandler "github.com/rizaldy/angkut/services/match/handler"
	matchusecase "github.com/rizaldy/angkut/services/match/usecase"
	"github.com/rizaldy/angkut/services/trip"
	tripgateway "github.com/rizaldy/angkut/services/trip/gateway"
	triphandler "github.com/rizaldy/angkut/services/trip/handler"
	triprepo "github.com/rizaldy/angkut/services/trip/repository"
	tripusecase "github.com/rizaldy/angkut/services/trip/usecase"
)

func main() {
	appName := "dispatch-service"
	configs := config.InitConfig("config/dispatch.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsq.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Spatial index and distance estimator
	spatialIndex := geo.NewRedisIndex(redisClient)

	var estimator eta.Estimator = eta.NewHaversineEstimator(configs.ETA.AvgSpeedKmh)
	if configs.ETA.OSRMEndpoint != "" {
		estimator = eta.NewFallbackEstimator(
			eta.NewOSRMEstimator(configs.ETA.OSRMEndpoint),
			estimator)
	}

	// Location service
	locationGW := locationgateway.NewLocationGW(producer)
	locationRepo := locationrepo.NewRedisLocationRepo(redisClient)
	locationUC := locationusecase.NewLocationUC(locationRepo, spatialIndex, locationGW, configs)

	// Trip service
	tripGW := tripgateway.NewTripGW(producer)
	tripRepo := triprepo.NewPostgresTripRepo(postgresClient.GetDB())
	tripUC := tripusecase.NewTripUC(tripRepo, tripGW,
		trip.NewClosingCancelPolicy(locationUC),
		trip.NewBalanceSettlePolicy(locationUC))

	// Match service
	matchUC := matchusecase.NewMatchUC(tripRepo, tripGW, locationUC, estimator)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(logger.EchoMiddleware(zapLogger))

	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQChecker(producer))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	locationhandler.NewHandler(locationUC, configs).RegisterRoutes(e)
	triphandler.NewHandler(tripUC, configs).RegisterRoutes(e)
	matchhandler.NewHandler(matchUC, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
}
