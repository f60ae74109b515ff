package notification

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/messaging"

	orgRepo "tradenet/database/repository/org"
	"tradenet/models"
)

// NotificationService attempts delivery of one event to a counterparty.
// Webhook is tried first, push second; the result is advisory only.
type NotificationService interface {
	Deliver(ctx context.Context, event models.Event) models.Delivery
}

// PushSender is the slice of the FCM client the service needs.
// *messaging.Client satisfies it.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Orgs          orgRepo.OrgRepository
	Push          PushSender
	HTTPClient    *http.Client
	SigningSecret []byte
}
