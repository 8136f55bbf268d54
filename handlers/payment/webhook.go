package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"printcase-backend/models"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

// LineItemLister fetches the line items of a completed Checkout session from
// Stripe. Behind an interface so webhook tests can substitute a fake.
type LineItemLister interface {
	ListLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error)
}

// WebhookHandler ingests Stripe webhook deliveries. Stripe delivers events at
// least once, so the handler must be safe under replays and concurrent
// redeliveries of the same event: the unique index on orders.stripe_session_id
// is the idempotency anchor, and Order plus OrderItems are written in a single
// transaction after the line items have been fetched, so a failure at any point
// leaves no partial order behind.
type WebhookHandler struct {
	db        *gorm.DB
	lineItems LineItemLister
	secret    string
}

func NewWebhookHandler(db *gorm.DB, lineItems LineItemLister, secret string) *WebhookHandler {
	return &WebhookHandler{
		db:        db,
		lineItems: lineItems,
		secret:    secret,
	}
}

// Handle processes one webhook delivery
// @Summary Stripe webhook endpoint
// @Description Receives signed Stripe events. Records an order on checkout.session.completed, acknowledges everything else.
// @Tags payment
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "message: outcome of the delivery"
// @Failure 400 {object} map[string]string "error: Missing or invalid signature"
// @Failure 500 {object} map[string]string "error: Transient failure, Stripe will retry"
// @Router /api/payment/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read the request body"})
		return
	}

	if h.secret == "" {
		utils.LogError(nil, "Stripe webhook secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if sig == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Stripe signature"})
		return
	}

	// The raw body is verified before anything in it is trusted. Parsing for
	// branching only happens on the event returned by ConstructEvent.
	event, err := webhook.ConstructEvent(payload, sig, h.secret)
	if err != nil {
		utils.LogError(err, "Stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		h.handleCheckoutSessionCompleted(c, event)
	default:
		// 200 so Stripe does not retry events this handler ignores on purpose
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func (h *WebhookHandler) handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CheckoutSession"})
		return
	}

	if session.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID missing in the event"})
		return
	}

	var existing models.Order
	err := h.db.First(&existing, "stripe_session_id = ?", session.ID).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Order already recorded"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking for an existing order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking for an existing order"})
		return
	}

	// Line items are fetched before the transaction opens: if Stripe is down
	// nothing has been written yet and the whole delivery can be retried.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	lineItems, err := h.lineItems.ListLineItems(ctx, session.ID)
	if err != nil {
		utils.LogError(err, "Error fetching line items for session "+session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching line items"})
		return
	}

	order := models.Order{
		StripeSessionID: session.ID,
		TotalAmount:     float64(session.AmountTotal) / 100,
		Currency:        string(session.Currency),
		PaymentStatus:   string(session.PaymentStatus),
	}
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email := session.CustomerDetails.Email
		order.CustomerEmail = &email
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range lineItems {
			orderItem := models.OrderItem{
				OrderID:     order.ID,
				ProductName: item.Description,
				Quantity:    item.Quantity,
				// Stripe reports the line total here, stored as-is
				UnitPrice: float64(item.AmountTotal) / 100,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent redelivery can win the insert race; its duplicate-key
		// failure means the order exists and the delivery succeeded.
		if isDuplicateKey(err) {
			c.JSON(http.StatusOK, gin.H{"message": "Order already recorded"})
			return
		}
		utils.LogError(err, "Error recording order for session "+session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording order"})
		return
	}

	utils.LogSuccess("Order recorded for session " + session.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order recorded"})
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "SQLSTATE 23505")
}
