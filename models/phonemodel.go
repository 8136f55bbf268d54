package models

import (
	"time"
)

// PhoneModelRequest records a visitor asking for a phone model the case
// customizer does not offer yet. The email, when given, is used to notify
// the requester once the model ships.
type PhoneModelRequest struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Brand     string    `json:"brand" gorm:"not null"`
	Model     string    `json:"model" gorm:"not null"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type PhoneModelRequestCreate struct {
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
	Email string `json:"email"`
}
