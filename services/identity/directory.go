package identity

import "context"

// DirectoryProfile is what the external GST directory returns for a
// registered tax identifier.
type DirectoryProfile struct {
	LegalName string
	Email     string
	Phone     string
	State     string
}

// GSTDirectory resolves a GST number to its registered profile.
type GSTDirectory interface {
	Lookup(ctx context.Context, gstNumber string) (*DirectoryProfile, error)
}

// StaticGSTDirectory is a stand-in for the GSTN API used outside production.
type StaticGSTDirectory struct{}

func (StaticGSTDirectory) Lookup(ctx context.Context, gstNumber string) (*DirectoryProfile, error) {
	// TODO: integrate the real GSTN verification API.
	return &DirectoryProfile{
		LegalName: "Demo Org Pvt Ltd",
		Email:     "accounts@demo.com",
		Phone:     "+919876543210",
		State:     "Maharashtra",
	}, nil
}
