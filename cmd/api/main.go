package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"altanzam/internal/adapter/api"
	"altanzam/internal/adapter/api/handler"
	apimiddleware "altanzam/internal/adapter/api/middleware"
	"altanzam/internal/adapter/api/router"
	"altanzam/internal/adapter/repository"
	"altanzam/internal/adapter/repository/memory"
	domainrepo "altanzam/internal/domain/repository"
	"altanzam/internal/domain/service"
	"altanzam/internal/infrastructure/cache"
	"altanzam/internal/infrastructure/firebase"
	"altanzam/internal/infrastructure/storage"
	"altanzam/internal/infrastructure/websocket"
	"altanzam/internal/usecase"
	"altanzam/pkg/config"
	"altanzam/pkg/logger"
	"altanzam/pkg/metrics"
	"altanzam/pkg/response"
)

type repositories struct {
	items         domainrepo.ItemRepository
	reviews       domainrepo.ReviewRepository
	orders        domainrepo.OrderRepository
	notifications domainrepo.NotificationRepository
	savedItems    domainrepo.SavedItemRepository
	users         domainrepo.UserRepository
	reference     domainrepo.ReferenceRepository
}

func firestoreRepositories(client *firestore.Client) repositories {
	return repositories{
		items:         repository.NewFirestoreItemRepository(client),
		reviews:       repository.NewFirestoreReviewRepository(client),
		orders:        repository.NewFirestoreOrderRepository(client),
		notifications: repository.NewFirestoreNotificationRepository(client),
		savedItems:    repository.NewFirestoreSavedItemRepository(client),
		users:         repository.NewFirestoreUserRepository(client),
		reference:     repository.NewFirestoreReferenceRepository(client),
	}
}

func memoryRepositories(store *memory.Store) repositories {
	return repositories{
		items:         memory.NewItemRepository(store),
		reviews:       memory.NewReviewRepository(store),
		orders:        memory.NewOrderRepository(store),
		notifications: memory.NewNotificationRepository(store),
		savedItems:    memory.NewSavedItemRepository(store),
		users:         memory.NewUserRepository(store),
		reference:     memory.NewReferenceRepository(store),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Environment, cfg.LogFile)

	ctx := context.Background()

	firebaseApp, opts, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		logger.Fatal("%v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase Auth: %v", err)
	}
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseAPIKey)

	var repos repositories
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		logger.Warn("Using the in-process store; data is lost on restart")
		repos = memoryRepositories(memory.NewStore())
	default:
		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			logger.Fatal("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		repos = firestoreRepositories(firestoreClient)
	}

	var push usecase.PushSender
	if messagingClient, err := firebaseApp.Messaging(ctx); err != nil {
		logger.Warn("Push delivery disabled: %v", err)
	} else {
		push = firebase.NewMessagingClient(messagingClient)
	}

	var files service.FileUploadService
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			logger.Fatal("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		files = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set; photo uploads are disabled")
	}

	var referenceCache usecase.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Reference cache disabled: %v", err)
		} else {
			defer redisCache.Close()
			referenceCache = redisCache
		}
	}

	hub := websocket.NewHub()
	notifier := usecase.NewNotifier(repos.users, hub, push)

	authUseCase := usecase.NewAuthUseCase(repos.users, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(repos.users, firebaseAuthClient, files, cfg.UploadMaxBytes)
	catalogUseCase := usecase.NewCatalogUseCase(repos.items)
	reviewUseCase := usecase.NewReviewUseCase(repos.reviews)
	orderUseCase := usecase.NewOrderUseCase(repos.orders, repos.items, repos.users, notifier)
	notificationUseCase := usecase.NewNotificationUseCase(repos.notifications, notifier)
	savedItemUseCase := usecase.NewSavedItemUseCase(repos.savedItems, catalogUseCase, notifier)
	referenceUseCase := usecase.NewReferenceUseCase(repos.reference, referenceCache, cfg.ReferenceCacheTTL)

	handler.Setup(
		authUseCase,
		userUseCase,
		catalogUseCase,
		reviewUseCase,
		orderUseCase,
		notificationUseCase,
		savedItemUseCase,
		referenceUseCase,
	)
	handler.SetupHealthHandler(cfg.StoreBackend)
	handler.SetupWebSocketHandler(hub, cfg.CORSOrigins)

	writeLimiter, err := apimiddleware.NewRateLimiter(cfg.WriteRateLimit)
	if err != nil {
		logger.Fatal("Invalid RATE_LIMIT_WRITES %q: %v", cfg.WriteRateLimit, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: logger.Writer()}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.BodyLimit("6M"))
	e.Use(metrics.Middleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(repos.users)

	router.Setup(e, authMiddleware, adminMiddleware, writeLimiter)

	go func() {
		logger.Info("Starting server on port %s (%s store)...", cfg.ServerPort, cfg.StoreBackend)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
