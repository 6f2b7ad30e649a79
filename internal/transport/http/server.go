package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"sociagram_22520074/internal/config"
	"sociagram_22520074/internal/database"
	"sociagram_22520074/internal/handler"
	"sociagram_22520074/internal/queue"
	"sociagram_22520074/internal/redis"
	"sociagram_22520074/internal/repository"
	"sociagram_22520074/internal/service"
	"sociagram_22520074/internal/worker"
)

// Run wires the whole application together and blocks until shutdown.
func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// 3. Connect to Redis
	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	discoverRepo := repository.NewDiscoverRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// 5. Queue
	publisher := queue.NewPublisher(redisClient.Client)
	consumer := queue.NewConsumer(redisClient.Client)

	// 6. Services
	userService := service.NewUserService(userRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo, publisher)
	postService := service.NewPostService(postRepo, userRepo, publisher)
	suggestService := service.NewSuggestService(discoverRepo, userRepo, followRepo)
	exploreService := service.NewExploreService(discoverRepo, userRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	adminService := service.NewAdminService(userRepo, postRepo, followRepo)

	// 7. Notification worker pool
	workerManager := worker.NewManager(consumer, worker.NewHandler(notificationRepo), cfg.WorkerCount)
	if err := workerManager.Start(); err != nil {
		return fmt.Errorf("failed to start workers: %w", err)
	}
	defer workerManager.Stop()

	// 8. Handlers and router
	router := NewRouter(RouterConfig{
		CategoryHandler:     handler.NewCategoryHandler(),
		UserHandler:         handler.NewUserHandler(userService),
		DiscoverHandler:     handler.NewDiscoverHandler(suggestService, exploreService),
		FollowHandler:       handler.NewFollowHandler(followService),
		InteractionHandler:  handler.NewInteractionHandler(postService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		AdminHandler:        handler.NewAdminHandler(adminService, userService, followService, postService),
	})

	// 9. HTTP server with graceful shutdown
	server := &stdhttp.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
