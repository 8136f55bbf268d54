package cart

import (
	"net/http"

	"printcase-backend/db"
	"printcase-backend/models"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
)

// findCartLine resolves one cart line for the user by product ID. When the
// same product appears on several lines (custom designs are never merged) the
// caller addresses a specific one with itemIndex, counted in insertion order.
func findCartLine(userID interface{}, ref models.CartItemRef, savedForLater bool) (*models.CartItem, bool) {
	var lines []models.CartItem
	err := db.DB.Where("user_id = ? AND product_id = ? AND saved_for_later = ?", userID, ref.ProductID, savedForLater).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil || len(lines) == 0 {
		return nil, false
	}

	idx := 0
	if ref.ItemIndex != nil {
		idx = *ref.ItemIndex
	}
	if idx < 0 || idx >= len(lines) {
		return nil, false
	}
	return &lines[idx], true
}

// @Summary Get the cart
// @Description Retrieve the user's cart lines and saved-for-later lines, products populated
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "cartItems, savedForLater"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/cart [get]
func GetCart(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var items []models.CartItem
	err := db.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading cart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading cart"})
		return
	}

	cartItems := []models.CartItem{}
	savedForLater := []models.CartItem{}
	for _, item := range items {
		if item.SavedForLater {
			savedForLater = append(savedForLater, item)
		} else {
			cartItems = append(cartItems, item)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"cartItems":     cartItems,
		"savedForLater": savedForLater,
	})
}

// @Summary Add a product to the cart
// @Description Add a product to the cart, optionally with customizer state. Customized lines always create a new line; plain lines for the same product are merged by quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItemAdd true "Cart line"
// @Security BearerAuth
// @Success 200 {object} models.CartItem
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/cart/add [post]
func AddToCart(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payload models.CartItemAdd
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if payload.Quantity <= 0 {
		payload.Quantity = 1
	}

	var product models.Product
	if err := db.DB.First(&product, "id = ?", payload.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if payload.Customization == nil {
		var existing models.CartItem
		err := db.DB.Where("user_id = ? AND product_id = ? AND saved_for_later = ? AND customization IS NULL",
			userID, payload.ProductID, false).
			First(&existing).Error
		if err == nil {
			existing.Quantity += payload.Quantity
			if err := db.DB.Save(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating cart: " + err.Error()})
				return
			}
			c.JSON(http.StatusOK, existing)
			return
		}
	}

	item := models.CartItem{
		UserID:        userID.(string),
		ProductID:     payload.ProductID,
		Quantity:      payload.Quantity,
		Customization: payload.Customization,
	}

	if err := db.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding to cart: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Remove a cart line
// @Description Remove a line from the active cart. Pass itemIndex when the product has several lines.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItemRef true "Line reference"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Item removed from cart"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found in cart"
// @Router /api/cart/remove [post]
func RemoveFromCart(c *gin.Context) {
	removeLine(c, false, "Item removed from cart")
}

// @Summary Remove a saved-for-later line
// @Description Remove a line from the saved-for-later list
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItemRef true "Line reference"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Item removed"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Router /api/cart/remove-saved [post]
func RemoveFromSaved(c *gin.Context) {
	removeLine(c, true, "Item removed")
}

func removeLine(c *gin.Context, savedForLater bool, message string) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var ref models.CartItemRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	line, ok := findCartLine(userID, ref, savedForLater)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	if err := db.DB.Delete(line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing item: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// @Summary Save a cart line for later
// @Description Move a line from the active cart to the saved-for-later list
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItemRef true "Line reference"
// @Security BearerAuth
// @Success 200 {object} models.CartItem
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found in cart"
// @Router /api/cart/save-for-later [post]
func SaveForLater(c *gin.Context) {
	moveLine(c, false, true)
}

// @Summary Move a saved line back to the cart
// @Description Move a line from the saved-for-later list back to the active cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItemRef true "Line reference"
// @Security BearerAuth
// @Success 200 {object} models.CartItem
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Router /api/cart/move-to-cart [post]
func MoveToCart(c *gin.Context) {
	moveLine(c, true, false)
}

func moveLine(c *gin.Context, fromSaved bool, toSaved bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var ref models.CartItemRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	line, ok := findCartLine(userID, ref, fromSaved)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	if err := db.DB.Model(line).Update("saved_for_later", toSaved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error moving item: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, line)
}
