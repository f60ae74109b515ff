package models

import "time"

// IdentifierKind distinguishes the identity material an organization
// registered with.
type IdentifierKind string

const (
	IdentifierGST   IdentifierKind = "gst"
	IdentifierPAN   IdentifierKind = "pan"
	IdentifierPhone IdentifierKind = "phone"
)

// Organization is the root aggregate. The document _id is the canonical
// organization identifier (raw GST, "PAN:<pan>" or "phone:<phone>"), which is
// what makes lookup-or-create idempotent.
type Organization struct {
	ID         string         `bson:"_id" json:"id"`
	Kind       IdentifierKind `bson:"kind" json:"kind"`
	GSTNumber  string         `bson:"gst_number,omitempty" json:"gst_number,omitempty"`
	PAN        string         `bson:"pan,omitempty" json:"pan,omitempty"`
	LegalName  string         `bson:"legal_name" json:"legal_name"`
	OwnerName  string         `bson:"owner_name,omitempty" json:"owner_name,omitempty"`
	ShopName   string         `bson:"shop_name,omitempty" json:"shop_name,omitempty"`
	Phone      string         `bson:"phone" json:"phone"`
	Email      string         `bson:"email,omitempty" json:"email,omitempty"`
	Address    string         `bson:"address,omitempty" json:"address,omitempty"`
	State      string         `bson:"state,omitempty" json:"state,omitempty"`
	WebhookURL string         `bson:"webhook_url,omitempty" json:"webhook_url,omitempty"`
	FCMToken   string         `bson:"fcm_token,omitempty" json:"fcm_token,omitempty"`
	Registered bool           `bson:"registered" json:"registered"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updated_at"`
}

// OrganizationProfileUpdate carries the mutable contact and delivery-channel
// fields. Zero values are left untouched.
type OrganizationProfileUpdate struct {
	LegalName  string `bson:"legal_name,omitempty" json:"legal_name,omitempty"`
	Email      string `bson:"email,omitempty" json:"email,omitempty"`
	Address    string `bson:"address,omitempty" json:"address,omitempty"`
	WebhookURL string `bson:"webhook_url,omitempty" json:"webhook_url,omitempty"`
	FCMToken   string `bson:"fcm_token,omitempty" json:"fcm_token,omitempty"`
}
