package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/eventpulse/eventpulse/internal/config"
	"github.com/eventpulse/eventpulse/internal/handlers"
	"github.com/eventpulse/eventpulse/internal/jobs"
	"github.com/eventpulse/eventpulse/internal/notify"
	scheduler "github.com/eventpulse/eventpulse/internal/scheduler"
	"github.com/eventpulse/eventpulse/internal/storage"
	"github.com/eventpulse/eventpulse/internal/store"
	"github.com/eventpulse/eventpulse/pkg/location"
	"github.com/eventpulse/eventpulse/pkg/logger"
	"github.com/eventpulse/eventpulse/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	// Open the local snapshot database
	kv, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}
	defer kv.Close()

	// --- Device capabilities ---
	var service notify.Service
	if cfg.PushSupported {
		service = notify.NewDeviceService(kv)
	} else {
		service = notify.NewNoopService()
	}

	// Demo builds pin the device to downtown San Francisco.
	loc := location.Static{Position: location.Position{Latitude: 37.7749, Longitude: -122.4194, Name: "San Francisco"}}

	// --- Stores ---
	notificationStore := store.NewNotificationStore(kv, service)
	authStore := store.NewAuthStore(kv, cfg.SimulatedLatency)
	eventsStore := store.NewEventsStore(kv, notificationStore, cfg.SimulatedLatency)
	messagesStore := store.NewMessagesStore(notificationStore, cfg.SimulatedLatency)

	notificationStore.InitializeNotifications(context.Background())

	// Every delivered notification bumps the app badge.
	service.AddNotificationReceivedListener(func(n notify.Notification) {
		ctx := context.Background()
		count, err := service.GetBadgeCount(ctx)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to read badge count")
			return
		}
		if err := service.SetBadgeCount(ctx, count+1); err != nil {
			logger.Log.WithError(err).Error("Failed to bump badge count")
		}
	})

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authStore, cfg)
	eventHandler := handlers.NewEventHandler(eventsStore, loc)
	messageHandler := handlers.NewMessageHandler(messagesStore, service)
	notificationHandler := handlers.NewNotificationHandler(notificationStore)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public auth routes
	router.HandleFunc("/auth/register", authHandler.RegisterHandler).Methods("POST")
	router.HandleFunc("/auth/login", authHandler.LoginHandler).Methods("POST")

	// Protected auth routes
	protectedAuthRoutes := router.PathPrefix("/auth").Subrouter()
	protectedAuthRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedAuthRoutes.HandleFunc("/logout", authHandler.LogoutHandler).Methods("POST")
	protectedAuthRoutes.HandleFunc("/me", authHandler.MeHandler).Methods("GET")
	protectedAuthRoutes.HandleFunc("/profile", authHandler.UpdateProfileHandler).Methods("PATCH")

	// Event routes
	protectedEventRoutes := router.PathPrefix("/events").Subrouter()
	protectedEventRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedEventRoutes.HandleFunc("", eventHandler.GetEventsHandler).Methods("GET")
	protectedEventRoutes.HandleFunc("", eventHandler.CreateEventHandler).Methods("POST")
	protectedEventRoutes.HandleFunc("/categories", eventHandler.GetCategoriesHandler).Methods("GET")
	protectedEventRoutes.HandleFunc("/bookmarked", eventHandler.GetBookmarkedEventsHandler).Methods("GET")
	protectedEventRoutes.HandleFunc("/{id}", eventHandler.GetEventHandler).Methods("GET")
	protectedEventRoutes.HandleFunc("/{id}", eventHandler.UpdateEventHandler).Methods("PUT")
	protectedEventRoutes.HandleFunc("/{id}", eventHandler.DeleteEventHandler).Methods("DELETE")
	protectedEventRoutes.HandleFunc("/{id}/bookmark", eventHandler.ToggleBookmarkHandler).Methods("POST")

	// Conversation routes
	protectedMessageRoutes := router.PathPrefix("/conversations").Subrouter()
	protectedMessageRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedMessageRoutes.HandleFunc("", messageHandler.GetConversationsHandler).Methods("GET")
	protectedMessageRoutes.HandleFunc("/contacts", messageHandler.GetContactsHandler).Methods("GET")
	protectedMessageRoutes.HandleFunc("", messageHandler.CreateConversationHandler).Methods("POST")
	protectedMessageRoutes.HandleFunc("/{id}/messages", messageHandler.GetMessagesHandler).Methods("GET")
	protectedMessageRoutes.HandleFunc("/{id}/messages", messageHandler.SendMessageHandler).Methods("POST")
	protectedMessageRoutes.HandleFunc("/{id}/read", messageHandler.MarkAsReadHandler).Methods("POST")

	// Notification routes
	protectedNotificationRoutes := router.PathPrefix("/notifications").Subrouter()
	protectedNotificationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedNotificationRoutes.HandleFunc("/initialize", notificationHandler.InitializeHandler).Methods("POST")
	protectedNotificationRoutes.HandleFunc("/settings", notificationHandler.GetSettingsHandler).Methods("GET")
	protectedNotificationRoutes.HandleFunc("/settings", notificationHandler.UpdateSettingsHandler).Methods("PATCH")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Schedule the nearby events scan
	nearbyNotifier := jobs.NewNearbyEventsNotifier(eventsStore, notificationStore, loc)
	if _, err := scheduler.StartNearbyEventJobs(nearbyNotifier, cfg.NearbyScanSchedule); err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
