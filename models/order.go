package models

import "time"

const OrderStatusPending = "pending"

// Order is a placed order. Items are a snapshot of the menu at order time.
type Order struct {
	Seq             uint64          `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string          `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerAddress string          `gorm:"type:text;not null" json:"customer_address"`
	Items           []OrderLineItem `gorm:"type:text;serializer:json;not null" json:"items"`
	Subtotal        float64         `gorm:"not null" json:"subtotal"`
	Tax             float64         `gorm:"not null" json:"tax"`
	Total           float64         `gorm:"not null" json:"total"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}
