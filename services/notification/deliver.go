package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"tradenet/models"
	"tradenet/utils"
)

// SignatureHeader carries the HMAC signature token on webhook deliveries.
const SignatureHeader = "X-Tradenet-Signature"

// Deliver attempts the webhook channel first and falls back to push. Every
// failure is absorbed into the returned Delivery; nothing propagates to the
// caller. At-most-once, no retry.
func (s *DefaultNotificationService) Deliver(ctx context.Context, event models.Event) models.Delivery {
	logger := utils.GetLogger()

	org, err := s.Orgs.GetByID(event.Counterparty)
	if err != nil {
		logger.Warn("notify: counterparty lookup failed",
			zap.String("org", event.Counterparty), zap.Error(err))
		return models.Delivery{OK: false, Reason: err.Error()}
	}
	if org == nil {
		return models.Delivery{OK: false, Reason: models.ReasonNotRegistered}
	}

	var lastReason string

	if org.WebhookURL != "" {
		if err := s.deliverWebhook(ctx, org.WebhookURL, event); err != nil {
			lastReason = fmt.Sprintf("webhook: %v", err)
			logger.Warn("notify: webhook delivery failed",
				zap.String("org", org.ID), zap.Error(err))
		} else {
			return models.Delivery{OK: true, Via: models.DeliveredViaWebhook}
		}
	}

	if org.FCMToken != "" {
		if err := s.deliverPush(ctx, org.FCMToken, event); err != nil {
			lastReason = fmt.Sprintf("push: %v", err)
			logger.Warn("notify: push delivery failed",
				zap.String("org", org.ID), zap.Error(err))
		} else {
			return models.Delivery{OK: true, Via: models.DeliveredViaPush}
		}
	}

	if lastReason == "" {
		lastReason = models.ReasonNoChannel
	}
	return models.Delivery{OK: false, Reason: lastReason}
}

// deliverWebhook POSTs the event as JSON with a signature header.
func (s *DefaultNotificationService) deliverWebhook(ctx context.Context, url string, event models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if len(s.SigningSecret) > 0 {
		sig, err := utils.SignWebhookPayload(s.SigningSecret, body)
		if err != nil {
			return fmt.Errorf("failed to sign payload: %w", err)
		}
		req.Header.Set(SignatureHeader, sig)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// deliverPush sends an FCM message to the organization's registered token.
func (s *DefaultNotificationService) deliverPush(ctx context.Context, token string, event models.Event) error {
	body := event.Data["description"]
	if body == "" {
		body = "Amount: " + event.Data["amount"]
	}
	if len(body) > 120 {
		body = body[:120]
	}

	payload, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "New " + event.Type,
			Body:  body,
		},
		Data: map[string]string{
			"event":   event.Type,
			"payload": string(payload),
		},
	}

	if _, err := s.Push.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
