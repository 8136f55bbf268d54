package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"printcase-backend/db"
	"printcase-backend/models"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// @Summary Create a new user
// @Description Create a new user with the provided information
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "User information"
// @Success 201 {object} map[string]interface{} "message: User created successfully, email: user email"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Email already exists"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var userCreate models.UserCreate

	if err := c.ShouldBindJSON(&userCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !utils.ValidateEmail(userCreate.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if len(userCreate.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The password must contain at least 6 characters"})
		return
	}

	hasLower := strings.ContainsAny(userCreate.Password, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(userCreate.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(userCreate.Password, "0123456789")

	if !hasLower || !hasUpper || !hasDigit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The password must contain at least one lowercase, one uppercase and one digit"})
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", userCreate.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userCreate.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing the password"})
		return
	}

	user := models.User{
		Email:    userCreate.Email,
		Password: string(hashedPassword),
		Name:     userCreate.Name,
		Role:     models.UserRole,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User created successfully")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"email":   user.Email,
	})
}

// @Summary Log a user in
// @Description Log a user in with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]interface{} "token: JWT, user: user information"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Invalid credentials"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var credentials models.UserLogin

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", credentials.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user, 168)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating JWT")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	user.Password = ""
	utils.LogSuccessWithUser(user.ID, "User logged in")
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type emailPayload struct {
	Email string `json:"email" binding:"required,email"`
}

type otpPayload struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required"`
}

type resetPayload struct {
	Email       string `json:"email" binding:"required,email"`
	Otp         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// @Summary Request a password reset
// @Description Send a one-time code to the given email when an account exists. Always answers 200 so the endpoint does not leak which emails are registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param email body emailPayload true "Account email"
// @Success 200 {object} map[string]string "message: If the email exists, a code has been sent"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /auth/forgot-password [post]
func ForgotPassword(c *gin.Context) {
	var payload emailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", payload.Email).First(&user).Error; err == nil {
		code, err := generateOtp()
		if err == nil {
			expires := time.Now().Add(10 * time.Minute)
			db.DB.Model(&user).Updates(map[string]interface{}{
				"otp_code":       code,
				"otp_expires_at": expires,
			})
			go utils.SendMail(user.Email, utils.BuildOtpMail(user.Email, code))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a code has been sent"})
}

// @Summary Verify a password reset code
// @Description Check that the one-time code matches and has not expired
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body otpPayload true "Email and code"
// @Success 200 {object} map[string]string "message: Code verified"
// @Failure 400 {object} map[string]string "error: Invalid or expired code"
// @Router /auth/verify-otp [post]
func VerifyOtp(c *gin.Context) {
	var payload otpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !otpMatches(payload.Email, payload.Otp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Code verified"})
}

// @Summary Reset the password
// @Description Set a new password after verifying the one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body resetPayload true "Email, code and new password"
// @Success 200 {object} map[string]string "message: Password updated"
// @Failure 400 {object} map[string]string "error: Invalid or expired code"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /auth/reset-password [post]
func ResetPassword(c *gin.Context) {
	var payload resetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !otpMatches(payload.Email, payload.Otp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing the password"})
		return
	}

	err = db.DB.Model(&models.User{}).
		Where("email = ?", payload.Email).
		Updates(map[string]interface{}{
			"password":       string(hashedPassword),
			"otp_code":       "",
			"otp_expires_at": nil,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating password: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func otpMatches(email string, code string) bool {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return false
	}
	if user.OtpCode == "" || user.OtpCode != code {
		return false
	}
	if user.OtpExpiresAt == nil || time.Now().After(*user.OtpExpiresAt) {
		return false
	}
	return true
}
