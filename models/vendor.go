package models

import "time"

// Vendor is a counterparty account kept under an organization. Creating one
// also seeds an empty ledger document for the pair.
type Vendor struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"-"`
	GST       string    `bson:"gst" json:"gst"`
	PAN       string    `bson:"pan" json:"pan"`
	Phone     string    `bson:"phone" json:"phone"`
	OwnerName string    `bson:"owner_name" json:"owner_name"`
	ShopName  string    `bson:"shop_name" json:"shop_name"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
