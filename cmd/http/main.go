package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opencrvs-service/internal/app/config"
	"opencrvs-service/internal/app/delivery/http/middlewares"
	"opencrvs-service/internal/app/delivery/http/routers"
	"opencrvs-service/internal/app/drivers/database"
	"opencrvs-service/internal/app/drivers/logger"
	"opencrvs-service/internal/app/drivers/messaging"
	driverstorage "opencrvs-service/internal/app/drivers/storage"
	"opencrvs-service/internal/app/services/assignment"
	"opencrvs-service/internal/app/services/registration"
	"opencrvs-service/internal/app/services/search"
	"opencrvs-service/internal/app/services/shared/notifications"
	"opencrvs-service/internal/app/services/shared/redis"
	"opencrvs-service/internal/app/services/shared/storage"
	"opencrvs-service/internal/pkg/codes"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLog.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Terminology tables
	tables := codes.NewTables()

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	objectStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	documentStorage := storage.NewDocumentStorage(objectStorage, bootstrap.Logger)
	indexNotifier, err := notifications.NewRabbitMQIndexNotifier(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Search.IndexNotificationQueue,
	)
	if err != nil {
		log.Fatalf("Failed to initialize index notifier: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Registration
	registrationUsecase := registration.NewRegistrationUsecase(bootstrap.Logger, tables, documentStorage)
	registrationController := registration.NewRegistrationController(bootstrap.Logger, registrationUsecase)

	// Assignment
	userManagementClient := assignment.NewUserManagementClient(
		bootstrap.Logger,
		bootstrap.InternalConfig.UserManagement.BaseUrl,
		nil,
	)
	assignmentUsecase := assignment.NewAssignmentUsecase(bootstrap.Logger, userManagementClient)
	assignmentController := assignment.NewAssignmentController(bootstrap.Logger, assignmentUsecase)

	// Search
	searchRepository := search.NewSearchMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.Search.DbName)
	searchUsecase := search.NewSearchUsecase(
		bootstrap.Logger,
		searchRepository,
		redisRepository,
		indexNotifier,
		time.Duration(bootstrap.InternalConfig.Search.DedupTTLInMinutes)*time.Minute,
	)
	searchController := search.NewSearchController(bootstrap.Logger, searchUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		registrationController,
		assignmentController,
		searchController,
	)
}
