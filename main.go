// File: towline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"towline/config"
	"towline/cron"
	"towline/database"
	assignmentRepoPkg "towline/database/repository/assignment"
	boattowRepoPkg "towline/database/repository/boattow"
	clientRepoPkg "towline/database/repository/client"
	imagebucketRepoPkg "towline/database/repository/imagebucket"
	providerRepoPkg "towline/database/repository/provider"
	workerRepoPkg "towline/database/repository/worker"
	"towline/handlers"
	"towline/routes"
	assignmentSvc "towline/services/assignment"
	"towline/services/identity"
	imageSvc "towline/services/image"
	"towline/services/notification"
	"towline/services/storage"
	"towline/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	var blobStore storage.BlobStore
	switch config.AppConfig.BlobBackend {
	case "gcs":
		gcs, err := storage.NewGCSBlobStore(context.Background(),
			config.AppConfig.FirebaseCredentialsFile,
			config.AppConfig.FirebaseStorageBucket)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize GCS blob store: %v", err)
		}
		blobStore = gcs
	default:
		cld, err := utils.CloudinaryFromConfig()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
		}
		blobStore = storage.NewCloudinaryBlobStore(cld)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	db := database.DB()
	clientRepo := clientRepoPkg.NewMongoClientRepo(db)
	providerRepo := providerRepoPkg.NewMongoProviderRepo(db)
	workerRepo := workerRepoPkg.NewMongoWorkerRepo(db, providerRepo)
	boattowRepo := boattowRepoPkg.NewMongoBoatTowRepo(db, providerRepo)
	bucketRepo := imagebucketRepoPkg.NewMongoImageBucketRepo(db)
	assignmentRepo := assignmentRepoPkg.NewMongoAssignmentRepo(db, clientRepo, providerRepo, workerRepo)

	// task queue and background dispatch.
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queue.Close()

	dispatcher := notification.NewFCMDispatcher(utils.FCMClient)
	cron.InitNotifyWorker(workerRepo, dispatcher)

	// services.
	provisioner := identity.NewFirebaseProvisioner(utils.AuthClient)
	imageService := imageSvc.NewService(bucketRepo, blobStore, utils.GetCacheClient())
	assignmentService := assignmentSvc.NewService(assignmentRepo, clientRepo, blobStore, queue)

	// handlers.
	handlerSet := &routes.Handlers{
		Auth:        &handlers.AuthHandler{Verifier: utils.AuthClient},
		Clients:     &handlers.ClientHandler{Clients: clientRepo, Identity: provisioner},
		Providers:   &handlers.ProviderHandler{Providers: providerRepo, Identity: provisioner},
		Workers:     &handlers.WorkerHandler{Workers: workerRepo},
		BoatTows:    &handlers.BoatTowHandler{BoatTows: boattowRepo},
		Assignments: &handlers.AssignmentHandler{Assignments: assignmentService},
		Images:      &handlers.ImageHandler{Images: imageService},
	}

	routes.RegisterRoutes(router, handlerSet)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
