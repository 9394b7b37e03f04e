package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"youthchain-server/handlers"
	"youthchain-server/services"
	"youthchain-server/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default configuration")
	}

	db := store.Connect()
	userStore := store.NewMongoUserStore(db)
	projectStore := store.NewMongoProjectStore(db)
	eventStore := store.NewMongoEventStore(db)

	// Redis cache is optional; without REDIS_ADDR every read hits MongoDB.
	var cache *redis.Client
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: redisAddr})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable, caching disabled: %v", err)
			cache = nil
		}
	}

	// Initialize services and handlers
	userService := services.NewUserService(userStore, projectStore, eventStore)
	projectService := services.NewProjectService(projectStore, cache)
	eventService := services.NewEventService(eventStore, cache)

	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	eventHandler := handlers.NewEventHandler(eventService)

	r := handlers.NewRouter(userHandler, projectHandler, eventHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Server starting on :%s", port)
	log.Fatal(server.ListenAndServe())
}
