package models

import (
	"time"
)

// The frontend addresses products by "_id" (a leftover of an earlier Mongo
// backend it was written against), so the id field keeps that JSON name.
type Product struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"type:numeric(10,2)"`
	Category    string    `json:"category"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductCreate is the payload accepted on product create and update
type ProductCreate struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}
