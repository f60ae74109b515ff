package identity

import (
	"context"

	"tradenet/utils"
)

// MessageGateway delivers one-time passcodes to a phone number.
type MessageGateway interface {
	SendOTP(ctx context.Context, phone, message string) error
}

// LogMessageGateway logs outgoing messages instead of delivering them.
// Swap in a Twilio/MSG91 implementation for production.
type LogMessageGateway struct{}

func (LogMessageGateway) SendOTP(ctx context.Context, phone, message string) error {
	utils.GetLogger().Sugar().Infof("Sending OTP message to %s: %s", phone, message)
	return nil
}
