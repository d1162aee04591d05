// The server command runs the full Ghana Lingo web application: static
// site pages, server-side sessions and the auth API in one process.
package main

import (
	"log"
	"time"

	"ghanalingo/internal/app/router"
	"ghanalingo/internal/feature/auth/adapters"
	"ghanalingo/internal/feature/auth/transport/credentials"
	authhandler "ghanalingo/internal/feature/auth/transport/handler"
	authusecase "ghanalingo/internal/feature/auth/usecase"
	"ghanalingo/internal/platform/config"
	"ghanalingo/internal/platform/db"
	platformredis "ghanalingo/internal/platform/redis"
	"ghanalingo/internal/platform/session"
	"ghanalingo/internal/platform/token"
	"ghanalingo/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Open(cfg.DB, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}

	// Sessions are an optional credential channel: without Redis the
	// token cookie still authenticates every request.
	var sessions *session.Store
	if rdb, err := platformredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
		log.Println("[WARN] Redis unavailable. Running without server-side sessions.")
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		sessions = session.NewStore(rdb, "ghanalingo:session", config.TokenTTL)
	}

	userRepo := adapters.NewUserGorm(gormDB)
	tokens := token.NewService(cfg.JWTSecret, config.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)

	var finder credentials.SessionFinder
	var store authhandler.SessionStore
	if sessions != nil {
		finder = sessions
		store = sessions
	}
	resolver := credentials.NewChain(finder, tokens)
	authH := authhandler.NewAuthHandler(authUC, resolver, store, config.TokenTTL)

	r := router.New(router.Options{
		Auth:      authH,
		PublicDir: cfg.PublicDir,
		AuthLimit: ratelimiter.New(30, time.Minute),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
