// Package router assembles the HTTP routing for every deployment
// target. The long-running server and the stateless API process share
// one route table; they differ only in the options passed here.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ghanalingo/internal/app/web"
	authhandler "ghanalingo/internal/feature/auth/transport/handler"
	"ghanalingo/internal/shared/ratelimiter"
)

// Options selects the per-deployment features around the shared auth
// routes.
type Options struct {
	Auth *authhandler.AuthHandler

	// PublicDir enables the static site pages when non-empty.
	PublicDir string

	// AuthLimit throttles register and login when set.
	AuthLimit *ratelimiter.Limiter

	// AllowCORS enables permissive CORS for browser clients on other
	// origins (the stateless deployment).
	AllowCORS bool
}

// New builds the engine for the given options.
func New(opts Options) *gin.Engine {
	r := gin.Default()

	if opts.AllowCORS {
		r.Use(cors.Default())
	}

	r.GET("/healthz", Health)

	guard := func(c *gin.Context) { c.Next() }
	if opts.AuthLimit != nil {
		guard = opts.AuthLimit.Middleware()
	}

	grp := r.Group("/api")
	{
		grp.POST("/register", guard, opts.Auth.Register)
		grp.POST("/login", guard, opts.Auth.Login)
		grp.GET("/user", opts.Auth.User)
		grp.POST("/logout", opts.Auth.Logout)
	}

	if opts.PublicDir != "" {
		web.Register(r, opts.PublicDir)
	}

	return r
}
