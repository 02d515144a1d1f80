// Package router builds the gin engine and its route table.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	userhandler "account_backend/internal/feature/user/transport/handler"
	"account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/logger"
	"account_backend/internal/platform/metrics"
	"account_backend/internal/shared/ratelimiter"
)

// Deps are the collaborators the routes are bound to.
type Deps struct {
	Log         logrus.FieldLogger
	Auth        *authhandler.AuthHandler
	Users       *userhandler.UserHandler
	Tokens      jwtmw.TokenValidator
	Health      handler.Pinger
	Metrics     *metrics.HTTP
	AuthLimiter *ratelimiter.RateLimiter
	CORSOrigins []string

	// TrustedProxies may set X-Forwarded-For. Nil means the client IP is the peer address.
	TrustedProxies []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		d.Log.WithError(err).Warn("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(logger.GinMiddleware(d.Log), gin.Recovery())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(cors.New(corsConfig(d.CORSOrigins)))

	// unauthenticated
	health := handler.NewHealth(d.Health)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	auth := r.Group("/auth")
	{
		limited := auth.Group("")
		if d.AuthLimiter != nil {
			limited.Use(ratelimiter.Middleware(d.AuthLimiter, d.Log))
		}
		limited.POST("/register", d.Auth.Register)
		limited.POST("/login", d.Auth.Login)

		auth.POST("/refresh", d.Auth.Refresh)
		// bearer token required
		auth.GET("/profile", jwtmw.AuthRequired(d.Tokens), d.Auth.Profile)
	}

	users := r.Group("/users")
	{
		users.POST("", d.Users.Create)
		users.GET("", d.Users.List)
		users.GET("/:id", d.Users.Get)
		users.PUT("/:id", d.Users.Update)
		users.DELETE("/:id", d.Users.Delete)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || containsWildcard(origins) {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
