package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-nwafor/Fore-made-webApp/cart"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	return id, id != ""
}

func respond(c *gin.Context, rec cart.Reconciliation, notices []string) {
	c.JSON(http.StatusOK, gin.H{
		"lines":           rec.Lines,
		"totals":          rec.Totals,
		"removed":         rec.Removed,
		"total_items":     rec.TotalItems,
		"unique_products": rec.UniqueProducts,
		"notices":         notices,
	})
}

func fail(c *gin.Context, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		return
	}
	if errors.Is(err, cart.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
}

// GET /user/cart
func GetUserCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		rec, notices, err := svc.Get(c.Request.Context(), uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respond(c, rec, notices)
	}
}

// POST /user/cart
func UpdateCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		rec, notices, err := svc.UpdateItem(c.Request.Context(), uid, input.ProductID, input.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, rec, notices)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		pid, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		rec, notices, err := svc.Remove(c.Request.Context(), uid, uint(pid))
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, rec, notices)
	}
}

// DELETE /user/cart
func ClearUserCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		if err := svc.Clear(c.Request.Context(), uid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
