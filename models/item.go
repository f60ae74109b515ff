package models

import "time"

// Item is an inventory line kept under an organization.
type Item struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"-"`
	Name      string    `bson:"name" json:"name"`
	SKU       string    `bson:"sku,omitempty" json:"sku,omitempty"`
	Unit      string    `bson:"unit,omitempty" json:"unit,omitempty"`
	Price     float64   `bson:"price,omitempty" json:"price,omitempty"`
	Quantity  float64   `bson:"quantity,omitempty" json:"quantity,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
