package phonemodels

import (
	"net/http"

	"printcase-backend/db"
	"printcase-backend/models"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Request a missing phone model
// @Description Record a request for a phone model the case customizer does not offer yet
// @Tags phone-models
// @Accept json
// @Produce json
// @Param request body models.PhoneModelRequestCreate true "Requested brand and model"
// @Success 201 {object} models.PhoneModelRequest
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/phone-models/request [post]
func RequestPhoneModel(c *gin.Context) {
	var input models.PhoneModelRequestCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	request := models.PhoneModelRequest{
		Brand: input.Brand,
		Model: input.Model,
		Email: input.Email,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		utils.LogError(err, "Error saving phone model request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving request: " + err.Error()})
		return
	}

	utils.LogSuccess("Phone model request recorded: " + input.Brand + " " + input.Model)
	c.JSON(http.StatusCreated, request)
}

// @Summary List phone model requests
// @Description Retrieve every recorded phone model request, newest first
// @Tags phone-models
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PhoneModelRequest
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/phone-models/requests [get]
func GetAllPhoneModelRequests(c *gin.Context) {
	var requests []models.PhoneModelRequest

	result := db.DB.Order("created_at DESC").Find(&requests)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}
