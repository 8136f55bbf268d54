package models

import (
	"time"
)

const (
	PricingPhoneCase = "phone-case"
	PricingTShirt    = "t-shirt"
)

// Pricing holds the base price charged for one product type plus the extra
// fee applied when the buyer uploads a custom design.
type Pricing struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductType     string    `json:"productType" gorm:"uniqueIndex;not null"`
	BasePrice       float64   `json:"basePrice" gorm:"type:numeric(10,2)"`
	CustomDesignFee float64   `json:"customDesignFee" gorm:"type:numeric(10,2)"`
	Currency        string    `json:"currency" gorm:"default:'inr'"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type PricingUpdate struct {
	BasePrice       float64 `json:"basePrice" binding:"required,gt=0"`
	CustomDesignFee float64 `json:"customDesignFee" binding:"gte=0"`
	Currency        string  `json:"currency"`
}
