package models

import (
	"time"
)

// CartCustomization carries the customizer state attached to a cart line
// (design upload, phone model, shirt options). Stored as a JSON column.
type CartCustomization struct {
	DesignImageURL  string `json:"designImageUrl,omitempty"`
	ProductType     string `json:"productType,omitempty"`
	PhoneModel      string `json:"phoneModel,omitempty"`
	CaseColor       string `json:"caseColor,omitempty"`
	ShirtType       string `json:"shirtType,omitempty"`
	ShirtSize       string `json:"shirtSize,omitempty"`
	ShirtColor      string `json:"shirtColor,omitempty"`
	HasCustomDesign bool   `json:"hasCustomDesign,omitempty"`
}

// CartItem is one line of a user's cart. Customized lines are never merged:
// each custom design gets its own row, so the same product can appear on
// several lines and removal is addressed by (productId, itemIndex).
type CartItem struct {
	ID            string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string             `json:"userId" gorm:"type:uuid;not null;index"`
	ProductID     string             `json:"productId" gorm:"type:uuid;not null"`
	Product       *Product           `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity      int                `json:"quantity"`
	SavedForLater bool               `json:"-" gorm:"index"`
	Customization *CartCustomization `json:"customization,omitempty" gorm:"serializer:json"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type CartItemAdd struct {
	ProductID     string             `json:"productId" binding:"required"`
	Quantity      int                `json:"quantity"`
	Customization *CartCustomization `json:"customization"`
}

type CartItemRef struct {
	ProductID string `json:"productId" binding:"required"`
	ItemIndex *int   `json:"itemIndex"`
}
