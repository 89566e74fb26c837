// Package router assembles the application's HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/interface/handler"
	"user_backend/internal/interface/middleware"
)

// NewRouter wires the user endpoints and the health probe onto a gin
// engine with CORS and request-id middleware applied.
func NewRouter(users *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	r.GET("/healthz", handler.Health)

	u := r.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("", users.List)
		// /search must sit alongside /:id; gin gives the static segment priority.
		u.GET("/search", users.Search)
		u.GET("/:id", users.Get)
		u.PATCH("/:id", users.UpdateFullName)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)
	}

	return r
}
