package products

import (
	"net/http"

	"printcase-backend/db"
	"printcase-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get all products
// @Description Retrieve the product catalog
// @Tags products
// @Produce json
// @Success 200 {object} map[string]interface{} "products: list of products"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/products [get]
func GetAllProducts(c *gin.Context) {
	var products []models.Product

	result := db.DB.Order("created_at DESC").Find(&products)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// @Summary Get a product
// @Description Retrieve one product by its ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid product ID"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Router /api/products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID := c.Param("id")

	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	result := db.DB.First(&product, "id = ?", productID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Create a new product
// @Description Create a new product with the provided information
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductCreate true "Product information"
// @Security BearerAuth
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/products [post]
func CreateProduct(c *gin.Context) {
	var productCreate models.ProductCreate

	if err := c.ShouldBindJSON(&productCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product := models.Product{
		Name:        productCreate.Name,
		Description: productCreate.Description,
		Price:       productCreate.Price,
		Category:    productCreate.Category,
		Images:      productCreate.Images,
	}

	result := db.DB.Create(&product)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating product: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// @Summary Update a product
// @Description Update a product with the provided information
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductCreate true "Product information"
// @Security BearerAuth
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	result := db.DB.First(&product, "id = ?", productID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var productUpdate models.ProductCreate
	if err := c.ShouldBindJSON(&productUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product.Name = productUpdate.Name
	product.Description = productUpdate.Description
	product.Price = productUpdate.Price
	product.Category = productUpdate.Category
	product.Images = productUpdate.Images

	result = db.DB.Save(&product)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Delete a product
// @Description Delete a product by its ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Product deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	result := db.DB.First(&product, "id = ?", productID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Drop any cart lines still pointing at the product
	if err := db.DB.Exec("DELETE FROM cart_items WHERE product_id = ?", productID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing product from carts: " + err.Error()})
		return
	}

	result = db.DB.Delete(&product)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
