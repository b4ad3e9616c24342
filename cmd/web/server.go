package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	mw "github.com/atasoy/shelfmate/internal/api/middlewares"
	"github.com/atasoy/shelfmate/internal/api/router"
	"github.com/atasoy/shelfmate/internal/metadata"
	"github.com/atasoy/shelfmate/internal/recommend"
	"github.com/atasoy/shelfmate/internal/repository/sqlconnect"
	"github.com/atasoy/shelfmate/internal/view"
	"github.com/atasoy/shelfmate/internal/weather"
	"github.com/atasoy/shelfmate/pkg/utils"
)

func main() {
	_ = godotenv.Load(".env")

	addr := getEnv("ADDR", ":3000")
	publicBaseURL := getEnv("PUBLIC_BASE_URL", "http://localhost:3000")
	lat := getEnvFloat("WEATHER_LAT", 41.0151)
	lon := getEnvFloat("WEATHER_LON", 28.9795)

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlconnect.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("template parse failed: %v", err)
	}

	books := metadata.NewClient()
	forecast := weather.NewClient(lat, lon)
	selector := recommend.NewSelector(books)

	handler := router.New(router.Deps{
		DB:            db,
		View:          renderer,
		Metadata:      books,
		Weather:       forecast,
		Recommend:     selector,
		PublicBaseURL: publicBaseURL,
	})

	chain := []utils.Middleware{
		mw.RequestID,
		mw.Recovery,
		mw.ResponseTime,
		mw.SecurityHeaders,
	}

	// Rate limiting only when Redis is configured; a single-user install
	// runs fine without it.
	if rdb := redisFromEnv(); rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		log.Println("Connected to Redis, rate limiting enabled")
		fw := mw.NewRedisFixedWindow(rdb, 120, time.Minute, "rl")
		chain = append(chain, fw.Middleware)
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      utils.ApplyMiddleware(handler, chain...),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Println("Server is running on", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalln("Error starting server:", err)
	}
}

func redisFromEnv() *redis.Client {
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		opt.DialTimeout = 2 * time.Second
		opt.ReadTimeout = 500 * time.Millisecond
		opt.WriteTimeout = 500 * time.Millisecond
		return redis.NewClient(opt)
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     os.Getenv("REDIS_USER"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}
