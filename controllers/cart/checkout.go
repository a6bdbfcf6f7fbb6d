package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-nwafor/Fore-made-webApp/cart"
	orderControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/order"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// POST /user/cart/checkout
// Runs the admission check only; payment happens downstream. A blocked
// checkout returns 409 with the offending lines so the caller can render a
// precise multi-line message.
func Checkout(svc *cart.Service, hub *orderControllers.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		rec, err := svc.Checkout(c.Request.Context(), uid)
		if err != nil {
			var blocked *models.CheckoutBlockedError
			if errors.As(err, &blocked) {
				c.JSON(http.StatusConflict, gin.H{
					"error": blocked.Error(),
					"lines": blocked.Lines,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check out"})
			return
		}

		hub.BroadcastOrderPlaced(uid, rec.Totals.GrandTotal)
		respond(c, rec, nil)
	}
}
