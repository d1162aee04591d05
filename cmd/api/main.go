// The api command runs the auth API alone: no static pages and no
// server-side sessions, so each instance is stateless and fits
// function-style hosting behind a separate static frontend.
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

	userRepo := adapters.NewUserGorm(gormDB)
	tokens := token.NewService(cfg.JWTSecret, config.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)

	// Token-only credential chain; there is no session store to consult.
	resolver := credentials.NewChain(nil, tokens)
	authH := authhandler.NewAuthHandler(authUC, resolver, nil, config.TokenTTL)

	r := router.New(router.Options{
		Auth:      authH,
		AuthLimit: ratelimiter.New(30, time.Minute),
		AllowCORS: true,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
