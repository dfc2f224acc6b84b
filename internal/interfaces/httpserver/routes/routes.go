package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/handlers"
)

// Register mounts the API routes on the engine.
func Register(engine *gin.Engine, provider *handlers.Provider) {
	engine.POST("/users", provider.Users.Register)
	engine.GET("/users/:id", provider.Users.Get)
	engine.GET("/users/:id/generations", provider.Users.History)
	engine.POST("/generate", provider.Generate.Generate)
}
