package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/assets"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/cache"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/catalog"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/config"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/fetch"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/menu"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/options"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	cfg := config.Load()

	// ───────────────────────── ASSETS ─────────────────────────
	var images catalog.ImageResolver
	if index, err := assets.NewIndexFromFS(os.DirFS(cfg.AssetDir), cfg.AssetBaseURL); err == nil {
		images = index
	} else {
		log.Printf("asset index unavailable (%v); image references pass through", err)
	}

	// ───────────────────────── CACHE ─────────────────────────
	store, err := cache.NewFileStore(cfg.CacheDir)
	if err != nil {
		log.Fatal("❌ cache dir init failed:", err)
	}
	menuCache := cache.New(store)

	// ───────────────────────── MENU PIPELINE ─────────────────────────
	fetcher := fetch.NewFetcher(cfg.POSAPIKey)
	normalizer := catalog.NewNormalizer(images)
	loader := menu.NewLoader(fetcher, normalizer, menuCache, cfg.MenuURL)

	// Warm the state before serving: cache first, then a live load.
	loader.Load(context.Background())

	resolver := options.NewResolver(nil)
	menuHandler := menu.NewHandler(loader, resolver)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.Register(r, menuHandler)

	// Serve the local asset files the resolver points at
	r.Static(cfg.AssetBaseURL, cfg.AssetDir)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 menu API running at %s (source: %s)", cfg.Addr, cfg.MenuURL)
	r.Run(cfg.Addr)
}
