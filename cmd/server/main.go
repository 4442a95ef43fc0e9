package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"synchron/internal/cache"
	"synchron/internal/config"
	"synchron/internal/handlers"
	"synchron/internal/portal"
	"synchron/internal/timetable"
)

func main() {
	// Load .env if present.
	_ = godotenv.Load()

	cfg := config.Load()

	// --- Redis document cache (optional) ---
	var docCache *cache.Cache
	if cfg.RedisURL != "" {
		var err error
		docCache, err = cache.New(cfg.RedisURL, time.Duration(cfg.DocCacheTTL)*time.Second)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer docCache.Close()
		log.Println("redis connected")
	} else {
		log.Println("document cache disabled (REDIS_URL not set)")
	}

	// --- Portal client ---
	hosts := []portal.Host{
		{Name: "portal", BaseURL: cfg.PortalBaseURL},
		{Name: "api", BaseURL: cfg.APIBaseURL},
	}
	client := portal.NewClient(hosts, portal.StaticToken(cfg.PortalToken), docCache,
		time.Duration(cfg.FetchTimeout)*time.Second, cfg.VerboseLogging)

	// --- Merge pipeline ---
	schedule := timetable.NewService(client, cfg.RealPeriodMax, cfg.VerboseLogging)

	// --- Fiber HTTP Server ---
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New())

	// API routes
	h := handlers.New(schedule, client, time.Duration(cfg.ScheduleCacheTTL)*time.Second)
	api := app.Group("/api")
	api.Get("/health", h.Health)
	api.Get("/timetable", h.GetTimetable)
	api.Get("/bells", h.GetBells)
	api.Get("/portal/*", h.Proxy)

	// --- Graceful shutdown ---
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("server starting on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
