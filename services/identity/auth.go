package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	orgRepo "tradenet/database/repository/org"
	"tradenet/models"
	"tradenet/utils"
)

// DefaultIdentityService is the production implementation.
type DefaultIdentityService struct {
	Repo      orgRepo.OrgRepository
	Auth      AuthProvider
	Directory GSTDirectory
	OTP       *OTPStore
	Gateway   MessageGateway
}

// Login drives the two-step OTP flow. The first call (no OTP) resolves the
// identifier and sends a passcode; the second verifies it, makes sure the
// organization and its auth user exist, and returns a custom token. The
// organization profile is persisted before the token is issued, so a token
// never refers to an unregistered profile.
func (s *DefaultIdentityService) Login(ctx context.Context, identifier, otp string) (*LoginResult, error) {
	kind, canonicalID, err := ResolveIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	profile, phone, err := s.resolveContact(ctx, kind, canonicalID, identifier)
	if err != nil {
		return nil, err
	}

	if otp == "" {
		code, err := s.OTP.Initiate(ctx, canonicalID)
		if err != nil {
			return nil, fmt.Errorf("failed to initiate OTP for %s: %w", canonicalID, err)
		}
		message := fmt.Sprintf("Your tradenet OTP is: %s. It expires soon.", code)
		if err := s.Gateway.SendOTP(ctx, phone, message); err != nil {
			return nil, fmt.Errorf("failed to send OTP: %w", err)
		}
		return &LoginResult{OTPSent: true}, nil
	}

	if err := s.OTP.Verify(ctx, canonicalID, otp); err != nil {
		return nil, err
	}

	org := &models.Organization{
		ID:        canonicalID,
		Kind:      kind,
		LegalName: profile.LegalName,
		Phone:     phone,
		Email:     profile.Email,
		State:     profile.State,
	}
	if kind == models.IdentifierGST {
		org.GSTNumber = canonicalID
	}

	token, err := s.finishAuth(ctx, org)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token}, nil
}

// resolveContact finds the profile and OTP delivery phone for an identifier.
func (s *DefaultIdentityService) resolveContact(ctx context.Context, kind models.IdentifierKind, canonicalID, raw string) (*DirectoryProfile, string, error) {
	switch kind {
	case models.IdentifierGST:
		profile, err := s.Directory.Lookup(ctx, canonicalID)
		if err != nil {
			return nil, "", fmt.Errorf("GST directory lookup failed: %w", err)
		}
		if profile == nil {
			return nil, "", ErrIdentityNotFound
		}
		return profile, profile.Phone, nil

	case models.IdentifierPhone:
		phone := NormalizePhone(raw)
		profile := &DirectoryProfile{Phone: phone}
		if existing, err := s.Repo.GetByID(canonicalID); err != nil {
			return nil, "", err
		} else if existing != nil {
			profile.LegalName = existing.LegalName
			profile.Email = existing.Email
		}
		return profile, phone, nil

	default: // PAN holders must have registered a phone first.
		existing, err := s.Repo.GetByID(canonicalID)
		if err != nil {
			return nil, "", err
		}
		if existing == nil || existing.Phone == "" {
			return nil, "", ErrIdentityNotFound
		}
		profile := &DirectoryProfile{
			LegalName: existing.LegalName,
			Email:     existing.Email,
			Phone:     existing.Phone,
		}
		return profile, existing.Phone, nil
	}
}

// Register validates the payload, persists the organization and issues a
// custom token. The canonical identifier is the GST when present, otherwise
// the PAN.
func (s *DefaultIdentityService) Register(ctx context.Context, req RegistrationRequest) (string, error) {
	org, err := buildRegistration(req)
	if err != nil {
		return "", err
	}
	return s.finishAuth(ctx, org)
}

// buildRegistration normalizes and validates the registration payload.
func buildRegistration(req RegistrationRequest) (*models.Organization, error) {
	var details []string

	gst := NormalizeTaxID(req.GST)
	pan := NormalizeTaxID(req.PAN)
	phone := NormalizePhone(req.Phone)

	if pan == "" {
		details = append(details, "pan is required")
	} else if !IsValidPAN(pan) {
		details = append(details, "pan has invalid format")
	}
	if phone == "" {
		details = append(details, "phone is required")
	} else if !IsValidPhone(phone) {
		details = append(details, "phone has invalid format")
	}
	if gst != "" && !IsValidGST(gst) {
		details = append(details, "gst has invalid format")
	}
	if req.OwnerName == "" {
		details = append(details, "owner_name is required")
	}
	if req.ShopName == "" {
		details = append(details, "shop_name is required")
	}
	if len(details) > 0 {
		return nil, ValidationError{Msg: "invalid registration payload", Details: details}
	}

	org := &models.Organization{
		Kind:      models.IdentifierPAN,
		ID:        CanonicalPAN(pan),
		PAN:       pan,
		Phone:     phone,
		OwnerName: req.OwnerName,
		ShopName:  req.ShopName,
		LegalName: req.ShopName,
		Email:     req.Email,
		Address:   req.Address,
	}
	if gst != "" {
		org.Kind = models.IdentifierGST
		org.ID = gst
		org.GSTNumber = gst
	}
	return org, nil
}

// finishAuth persists the organization (idempotent) and the matching auth
// user, then issues a custom token. Persistence strictly precedes token
// issuance.
func (s *DefaultIdentityService) finishAuth(ctx context.Context, org *models.Organization) (string, error) {
	stored, err := s.Repo.EnsureRegistered(org)
	if err != nil {
		return "", fmt.Errorf("failed to persist organization %s: %w", org.ID, err)
	}

	if _, err := s.Auth.GetUser(ctx, stored.ID); err != nil {
		create := (&auth.UserToCreate{}).UID(stored.ID).DisplayName(stored.LegalName)
		if stored.Email != "" {
			create = create.Email(stored.Email)
		}
		if _, err := s.Auth.CreateUser(ctx, create); err != nil {
			return "", fmt.Errorf("failed to create auth user %s: %w", stored.ID, err)
		}
	}

	token, err := s.Auth.CustomToken(ctx, stored.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue custom token for %s: %w", stored.ID, err)
	}

	utils.GetLogger().Info("organization authenticated",
		zap.String("org", stored.ID), zap.String("kind", string(stored.Kind)))
	return token, nil
}

// UpdateProfile applies contact and delivery-channel changes.
func (s *DefaultIdentityService) UpdateProfile(ctx context.Context, orgID string, update models.OrganizationProfileUpdate) error {
	return s.Repo.UpdateProfile(orgID, update)
}
