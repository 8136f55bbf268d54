package pricing

import (
	"net/http"

	"printcase-backend/db"
	"printcase-backend/models"

	"github.com/gin-gonic/gin"
)

func isKnownProductType(productType string) bool {
	return productType == models.PricingPhoneCase || productType == models.PricingTShirt
}

// @Summary Get pricing for a product type
// @Description Retrieve the current pricing for phone cases or t-shirts
// @Tags pricing
// @Produce json
// @Param type path string true "Product type (phone-case or t-shirt)"
// @Success 200 {object} models.Pricing
// @Failure 400 {object} map[string]string "error: Unknown product type"
// @Failure 404 {object} map[string]string "error: Pricing not found"
// @Router /api/pricing/{type} [get]
func GetPricing(c *gin.Context) {
	productType := c.Param("type")

	if !isKnownProductType(productType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product type"})
		return
	}

	var pricing models.Pricing
	result := db.DB.First(&pricing, "product_type = ?", productType)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing not found"})
		return
	}

	c.JSON(http.StatusOK, pricing)
}

// @Summary Get all pricing entries
// @Description Retrieve pricing for every product type
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Pricing
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/pricing [get]
func GetAllPricing(c *gin.Context) {
	var pricings []models.Pricing

	result := db.DB.Order("product_type ASC").Find(&pricings)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, pricings)
}

// @Summary Initialize default pricing
// @Description Seed pricing rows for the known product types when they do not exist yet
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Pricing
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/pricing/initialize [post]
func InitializePricing(c *gin.Context) {
	defaults := []models.Pricing{
		{ProductType: models.PricingPhoneCase, BasePrice: 499, CustomDesignFee: 100, Currency: "inr"},
		{ProductType: models.PricingTShirt, BasePrice: 699, CustomDesignFee: 150, Currency: "inr"},
	}

	for _, def := range defaults {
		var existing models.Pricing
		if err := db.DB.First(&existing, "product_type = ?", def.ProductType).Error; err == nil {
			continue
		}
		if err := db.DB.Create(&def).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initializing pricing: " + err.Error()})
			return
		}
	}

	var pricings []models.Pricing
	db.DB.Order("product_type ASC").Find(&pricings)
	c.JSON(http.StatusOK, pricings)
}

// @Summary Update pricing for a product type
// @Description Update the base price and custom design fee for phone cases or t-shirts
// @Tags pricing
// @Accept json
// @Produce json
// @Param type path string true "Product type (phone-case or t-shirt)"
// @Param pricing body models.PricingUpdate true "Pricing information"
// @Security BearerAuth
// @Success 200 {object} models.Pricing
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/pricing/{type} [put]
func UpdatePricing(c *gin.Context) {
	productType := c.Param("type")

	if !isKnownProductType(productType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product type"})
		return
	}

	var pricingUpdate models.PricingUpdate
	if err := c.ShouldBindJSON(&pricingUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	currency := pricingUpdate.Currency
	if currency == "" {
		currency = "inr"
	}

	var pricing models.Pricing
	err := db.DB.First(&pricing, "product_type = ?", productType).Error
	if err != nil {
		pricing = models.Pricing{
			ProductType:     productType,
			BasePrice:       pricingUpdate.BasePrice,
			CustomDesignFee: pricingUpdate.CustomDesignFee,
			Currency:        currency,
		}
		if err := db.DB.Create(&pricing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating pricing: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, pricing)
		return
	}

	pricing.BasePrice = pricingUpdate.BasePrice
	pricing.CustomDesignFee = pricingUpdate.CustomDesignFee
	pricing.Currency = currency

	if err := db.DB.Save(&pricing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating pricing: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, pricing)
}

// @Summary Delete pricing for a product type
// @Description Remove the pricing row of a product type
// @Tags pricing
// @Produce json
// @Param type path string true "Product type"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Pricing deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Pricing not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/pricing/{type} [delete]
func DeletePricing(c *gin.Context) {
	productType := c.Param("type")

	var pricing models.Pricing
	result := db.DB.First(&pricing, "product_type = ?", productType)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing not found"})
		return
	}

	result = db.DB.Delete(&pricing)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting pricing: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pricing deleted successfully"})
}
