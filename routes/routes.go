package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/emmanuel-nwafor/Fore-made-webApp/cart"
	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
	orderControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/order"
	"github.com/emmanuel-nwafor/Fore-made-webApp/identity"
	"github.com/emmanuel-nwafor/Fore-made-webApp/profile"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Catalog   *catalog.Catalog
	Cart      *cart.Service
	Profiles  *profile.Service
	Provider  identity.Provider
	Broker    *identity.Broker
	OrderHub  *orderControllers.Hub
	JWTSecret []byte
	Log       zerolog.Logger
}

// SetupRoutes is the single entry-point that wires up the Auth, Product and
// User route groups plus the websocket and metrics endpoints.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1. Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// 2. Public catalog routes
	SetupProductRoutes(r, d)

	// 3. User routes (JWT-protected): profile + cart
	SetupUserRoutes(r, d)

	// Order events + diagnostics
	r.GET("/ws/orders", d.OrderHub.OrderWebSocketHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
