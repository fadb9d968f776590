package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/soyroberto/roblox/internal/api"
	"github.com/soyroberto/roblox/internal/logger"
	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/config"
	"github.com/soyroberto/roblox/pkg/seed"
	"github.com/soyroberto/roblox/pkg/store"

	// Import for side-effect of formula registration.
	_ "github.com/soyroberto/roblox/formulas/database"
	_ "github.com/soyroberto/roblox/formulas/gameserver"
	_ "github.com/soyroberto/roblox/formulas/loadbalancer"
)

func main() {
	cfg := config.Load()
	lg := logger.Default
	lg.Info("starting architecture explorer API", "db_driver", cfg.DBDriver)

	// Open the document store and seed it on first run.
	st, err := store.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded, err := st.SeedIfEmpty(ctx, seed.Components(), seed.Steps())
	if err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}
	if seeded {
		lg.Info("seeded architecture content")
	}

	// The cache layer is optional; without redis the store answers directly.
	var loader store.Loader = st
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := client.Ping(ctx).Result(); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		cached := store.NewCachedLoader(st, client, cfg.CacheTTL, lg)
		if seeded {
			if err := cached.Invalidate(ctx); err != nil {
				lg.Warn("cache invalidation after seed failed", "error", err)
			}
		}
		loader = cached
		lg.Info("redis cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	// One full load at startup; the catalog is read-only afterwards.
	components, err := loader.LoadComponents(ctx)
	if err != nil {
		log.Fatalf("Failed to load components: %v", err)
	}
	steps, err := loader.LoadSteps(ctx)
	if err != nil {
		log.Fatalf("Failed to load steps: %v", err)
	}
	lg.Info("content loaded", "components", len(components), "steps", len(steps))

	handlers := api.NewHandlers(catalog.NewCatalog(components), catalog.NewStepSequence(steps))

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// Setup API routes
	api.SetupRouter(router, handlers)

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "UP",
		})
	})

	// Start the server
	log.Printf("Server listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
