package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"tradenet/models"
)

// AuthProvider is the slice of the identity provider's API the service needs.
// *auth.Client satisfies it.
type AuthProvider interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
}

// LoginResult is the outcome of a login attempt: either an OTP was sent or a
// custom token was issued.
type LoginResult struct {
	OTPSent bool
	Token   string
}

// RegistrationRequest is the explicit-registration payload.
type RegistrationRequest struct {
	Phone     string `json:"phone" binding:"required"`
	PAN       string `json:"pan" binding:"required"`
	OwnerName string `json:"owner_name" binding:"required"`
	ShopName  string `json:"shop_name" binding:"required"`
	GST       string `json:"gst,omitempty"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
}

// IdentityService resolves identity material to organizations and drives the
// OTP login and registration flows.
type IdentityService interface {
	// Login without an OTP sends one; with an OTP it verifies, ensures the
	// organization exists (idempotent) and issues a custom token.
	Login(ctx context.Context, identifier, otp string) (*LoginResult, error)
	// Register validates the payload, creates the organization and issues a
	// custom token.
	Register(ctx context.Context, req RegistrationRequest) (string, error)
	// UpdateProfile applies contact and delivery-channel changes.
	UpdateProfile(ctx context.Context, orgID string, update models.OrganizationProfileUpdate) error
}
