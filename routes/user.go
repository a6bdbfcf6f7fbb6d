package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/cart"
	userControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/user"
	"github.com/emmanuel-nwafor/Fore-made-webApp/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(d.Profiles))            // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(d.Profiles))         // PUT /user/
		userGroup.POST("/avatar", userControllers.UploadAvatar(d.Profiles)) // POST /user/avatar

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(d.Cart))                    // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(d.Cart))                // POST /user/cart
			cartGroup.POST("/checkout", cartControllers.Checkout(d.Cart, d.OrderHub))  // POST /user/cart/checkout
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Cart))   // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(d.Cart))               // DELETE /user/cart
		}
	}
}
