package models

import "time"

// Invoice-request lifecycle. Only StatusPending is ever written today;
// settlement and cancellation have no transition endpoints.
const (
	StatusPending   = "pending"
	StatusSettled   = "settled"
	StatusCancelled = "cancelled"
)

// InvoiceRequest records a request to transfer value from one organization to
// another. Each request is stored twice, once under each party, so both can
// query their own copy independently.
type InvoiceRequest struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"-"` // org whose collection this copy lives in
	FromOrg     string    `bson:"from_org" json:"from_org"`
	ToOrg       string    `bson:"to_org" json:"to_org"`
	Amount      float64   `bson:"amount" json:"amount"`
	Description string    `bson:"description" json:"description"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
