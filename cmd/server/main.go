package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/propline/property-sales-backend/internal/config"
	"github.com/propline/property-sales-backend/internal/database"
	"github.com/propline/property-sales-backend/internal/handler"
	"github.com/propline/property-sales-backend/internal/middleware"
	"github.com/propline/property-sales-backend/internal/queue"
	"github.com/propline/property-sales-backend/internal/repository"
	"github.com/propline/property-sales-backend/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	// Process-wide database handle: opened once here, borrowed by every
	// repository, closed when the process exits.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	// Redis backs the response cache and the rate limiter.  A nil client
	// simply disables both.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	floors := repository.NewFloorRepo(db)
	shops := repository.NewShopRepo(db)
	users := repository.NewUserRepo(db)

	admin := handler.NewAdminHandler(floors, shops, users, cfg.BcryptCost)
	auth := handler.NewAuthHandler(cfg, users)
	sales := handler.NewSalesHandler(floors, shops)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // all origins, matching the dashboard deployment
	e.Use(limitMW)

	router.RegisterRoutes(e)
	router.RegisterAdmin(e, admin, auth, cfg.JWTSecret, cacheMW)
	router.RegisterSales(e, sales, cacheMW)

	// Background consumer appends sold-shop events to logs/sales.log and
	// reconnects on its own; it never takes the server down.
	go func() {
		if err := queue.StartShopSoldConsumer(); err != nil {
			log.Printf("sales consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
