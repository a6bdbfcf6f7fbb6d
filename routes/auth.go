package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	deps := authControllers.Deps{
		Provider:  d.Provider,
		Profiles:  d.Profiles,
		Broker:    d.Broker,
		JWTSecret: d.JWTSecret,
		Log:       d.Log,
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps)) // POST /auth/register
		authGroup.POST("/google", authControllers.GoogleSignIn(deps)) // POST /auth/google
	}
}
