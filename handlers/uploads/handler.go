package uploads

import (
	"mime/multipart"
	"net/http"

	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
)

var uploadImage func(file *multipart.FileHeader) (string, error) = utils.UploadDesignImage

// @Summary Upload a design image
// @Description Upload a customizer design image, returns its hosted URL for cart customization
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Design image (JPG, PNG, GIF, WEBP, BMP or SVG, 10MB max)"
// @Security BearerAuth
// @Success 200 {object} map[string]string "url: hosted image URL"
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Upload error"
// @Router /api/upload/design [post]
func UploadDesign(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image: " + err.Error()})
		return
	}

	url, err := uploadImage(file)
	if err != nil {
		userID, _ := c.Get("user_id")
		utils.LogErrorWithUser(userID, err, "Error uploading design image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
