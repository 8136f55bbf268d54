package routes

import (
	"os"

	"printcase-backend/db"
	"printcase-backend/handlers/payment"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	r.POST("/api/payment/create-checkout-session", middleware.JWTAuth(), payment.CreateCheckoutSession)

	// The webhook is called by Stripe, not by the frontend; it authenticates
	// with the signature header, never with a bearer token.
	webhookHandler := payment.NewWebhookHandler(
		db.DB,
		payment.NewStripeLineItemLister(),
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
	)
	r.POST("/api/payment/webhook", webhookHandler.Handle)
}
