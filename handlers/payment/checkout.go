package payment

import (
	"fmt"
	"net/http"
	"os"

	"printcase-backend/db"
	"printcase-backend/models"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	session "github.com/stripe/stripe-go/v82/checkout/session"
)

// CheckoutItem is one purchasable line sent by the cart page. The client also
// sends its displayed price; it is ignored and recomputed from the catalog.
type CheckoutItem struct {
	ProductID     string                    `json:"productId" binding:"required"`
	ProductName   string                    `json:"productName"`
	Price         float64                   `json:"price"`
	Quantity      int                       `json:"quantity"`
	Customization *models.CartCustomization `json:"customization"`
}

// CheckoutRequest covers the two purchase flows: the cart page sends
// cartItems, the customizer/product pages send a single productId with
// optional display metadata (buy now).
type CheckoutRequest struct {
	ProductID string                 `json:"productId"`
	Price     float64                `json:"price"`
	Metadata  map[string]interface{} `json:"metadata"`
	CartItems []CheckoutItem         `json:"cartItems"`
}

// unitAmount prices one line server-side: catalog price plus the custom-design
// fee of its product type. The client-reported price never reaches Stripe.
func unitAmount(product *models.Product, customization *models.CartCustomization) int64 {
	price := product.Price
	if customization != nil && customization.HasCustomDesign && customization.ProductType != "" {
		var pricing models.Pricing
		if err := db.DB.First(&pricing, "product_type = ?", customization.ProductType).Error; err == nil {
			price = pricing.BasePrice + pricing.CustomDesignFee
		}
	}
	return int64(price * 100)
}

func lineItemParams(product *models.Product, quantity int, customization *models.CartCustomization, currency string) *stripe.CheckoutSessionLineItemParams {
	name := product.Name
	if customization != nil && customization.HasCustomDesign {
		name += " (custom design)"
	}
	if quantity < 1 {
		quantity = 1
	}
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(currency),
			UnitAmount: stripe.Int64(unitAmount(product, customization)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
		},
		Quantity: stripe.Int64(int64(quantity)),
	}
}

// CreateCheckoutSession starts a Stripe hosted-checkout payment.
// @Summary Create a Stripe Checkout session
// @Description Builds a Checkout session from the posted cartItems, from a single productId (buy now), or from the user's stored cart when the body is empty. Prices are resolved server-side from the catalog and pricing tables. The frontend redirects the browser to the returned URL; Stripe later reports the payment through the webhook.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body CheckoutRequest false "Cart lines or a single product to buy"
// @Security BearerAuth
// @Success 200 {object} map[string]string "sessionId: ID of the Stripe Checkout session, url: Stripe Checkout URL"
// @Failure 400 {object} map[string]string "error: Cart is empty"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Stripe error or server error"
// @Router /api/payment/create-checkout-session [post]
func CreateCheckoutSession(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in CreateCheckoutSession")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req CheckoutRequest
	_ = c.ShouldBindJSON(&req)

	currency := os.Getenv("CHECKOUT_CURRENCY")
	if currency == "" {
		currency = "inr"
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams

	switch {
	case len(req.CartItems) > 0:
		for _, item := range req.CartItems {
			var product models.Product
			if err := db.DB.First(&product, "id = ?", item.ProductID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found: " + item.ProductID})
				return
			}
			lineItems = append(lineItems, lineItemParams(&product, item.Quantity, item.Customization, currency))
		}

	case req.ProductID != "":
		// Buy now from the customizer or product page
		var product models.Product
		if err := db.DB.First(&product, "id = ?", req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		customization := customizationFromMetadata(req.Metadata)
		lineItems = append(lineItems, lineItemParams(&product, 1, customization, currency))

	default:
		// No body: fall back to the stored cart
		var cartItems []models.CartItem
		err := db.DB.Preload("Product").
			Where("user_id = ? AND saved_for_later = ?", user.ID, false).
			Order("created_at ASC").
			Find(&cartItems).Error
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error loading cart in CreateCheckoutSession")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading cart"})
			return
		}
		for _, item := range cartItems {
			if item.Product == nil {
				continue
			}
			lineItems = append(lineItems, lineItemParams(item.Product, item.Quantity, item.Customization, currency))
		}
	}

	if len(lineItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		CustomerEmail:      stripe.String(user.Email),
		SuccessURL:         stripe.String(frontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(frontendURL + "/cart"),
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, fmt.Sprint(value))
	}

	s, err := session.New(params)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the Stripe Checkout session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Stripe Checkout session created")
	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID, "url": s.URL})
}

// customizationFromMetadata maps the buy-now metadata the phone-case customizer
// sends ({phoneModel, caseColor, customDesign: true}) onto the cart
// customization shape so pricing and naming follow the same path.
func customizationFromMetadata(metadata map[string]interface{}) *models.CartCustomization {
	if metadata == nil {
		return nil
	}
	if custom, _ := metadata["customDesign"].(bool); !custom {
		return nil
	}
	productType, _ := metadata["productType"].(string)
	phoneModel, _ := metadata["phoneModel"].(string)
	caseColor, _ := metadata["caseColor"].(string)
	if productType == "" && phoneModel != "" {
		productType = models.PricingPhoneCase
	}
	return &models.CartCustomization{
		ProductType:     productType,
		PhoneModel:      phoneModel,
		CaseColor:       caseColor,
		HasCustomDesign: true,
	}
}
