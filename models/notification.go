package models

import "time"

// Delivery channels and failure reasons for the notification dispatcher.
const (
	DeliveredViaWebhook = "webhook"
	DeliveredViaPush    = "push"

	ReasonNotRegistered = "not-registered"
	ReasonNoChannel     = "no-channel-configured"
)

// Event is a notification payload addressed to a counterparty. Delivery is
// best-effort and advisory; it is never part of the consistency contract.
type Event struct {
	Counterparty string            `json:"counterparty"`
	Type         string            `json:"event"`
	Timestamp    time.Time         `json:"timestamp"`
	Data         map[string]string `json:"data"`
}

// Delivery is the tri-state outcome of one dispatch attempt.
type Delivery struct {
	OK     bool   `json:"ok"`
	Via    string `json:"via,omitempty"`
	Reason string `json:"reason,omitempty"`
}
