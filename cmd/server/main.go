package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"latissimus/trainer-app/internal/api"
	"latissimus/trainer-app/internal/config"
	"latissimus/trainer-app/internal/repository"
	"latissimus/trainer-app/internal/repository/cache"
	"latissimus/trainer-app/internal/repository/mongo"
	"latissimus/trainer-app/internal/service"
)

func main() {
	log.Println("Starting Trainer App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatalf("FATAL: JWT secret is not configured")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	// The unique (trainerId, startDay) session index is the storage-side half
	// of the double-booking guard; it must exist before traffic arrives.
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 1*time.Minute)
	err = mongo.EnsureSessionIndexes(indexCtx, appDB.Collection("training_sessions"))
	indexCancel()
	if err != nil {
		// Without the unique session index the conflict check degrades to a
		// racy read-then-write, so refusing to start is the only safe option.
		log.Fatalf("FATAL: Could not ensure database indexes: %v", err)
	}
	log.Println("Database indexes ensured.")

	// --- Initialize Repositories ---
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)

	var sessionRepo repository.SessionRepository = mongo.NewMongoSessionRepository(appDB)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sessionRepo = cache.NewCachedSessionRepository(sessionRepo, redisClient)
		log.Printf("Session cache enabled (redis at %s)", cfg.Redis.Addr)
	}

	// --- Initialize Services ---
	trainerService := service.NewTrainerService(trainerRepo)
	workoutService := service.NewWorkoutService(trainerRepo, workoutRepo)
	sessionService := service.NewSessionService(trainerRepo, sessionRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, trainerService, workoutService, sessionService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
