// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/http/handlers"
	"tripgen/internal/http/middleware"
	"tripgen/internal/infra"
	"tripgen/internal/modules/trip"
	"tripgen/internal/modules/user"
)

func NewRouter(
	userService *user.Service,
	tripService *trip.Service,
	verifier infra.TokenVerifier,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	authHandler := handlers.NewAuthHandler(userService)
	r.POST("/signup", authHandler.SignUp)
	r.POST("/login", authHandler.Login)

	api := r.Group("/api", middleware.Auth(verifier))
	tripHandler := handlers.NewTripHandler(tripService)
	api.POST("/trips/generate", tripHandler.Generate)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
