package orders

import (
	"net/http"

	"printcase-backend/db"
	"printcase-backend/models"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
)

// The order tables are written exclusively by the payment webhook; these
// endpoints are the read surface the storefront and the admin dashboard use.

// @Summary Get the user's orders
// @Description Retrieve the orders whose customer email matches the authenticated user, items included, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "orders: list of orders with their items"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/orders/my-orders [get]
func GetMyOrders(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	email, _ := c.Get("email")
	emailStr, ok := email.(string)
	if !ok || emailStr == "" {
		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		emailStr = user.Email
	}

	// Stripe reports the email as the buyer typed it at checkout, which may
	// differ in case from the registered one
	var orders []models.Order
	err := db.DB.Preload("OrderItems").
		Where("LOWER(customer_email) = LOWER(?)", emailStr).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading orders in GetMyOrders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// @Summary Get all orders
// @Description Retrieve every recorded order with its items, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "orders: list of orders with their items"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Access denied"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/orders [get]
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	err := db.DB.Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		utils.LogError(err, "Error loading orders in GetAllOrders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
