package orgRepo

import "tradenet/models"

// OrgRepository defines methods for organization data access.
type OrgRepository interface {
	// GetByID retrieves an organization by its canonical identifier.
	// Returns (nil, nil) when the organization is not registered.
	GetByID(id string) (*models.Organization, error)
	// EnsureRegistered inserts the organization if absent. The canonical
	// identifier is the primary key, so repeated calls never create a
	// duplicate. Returns the stored document.
	EnsureRegistered(org *models.Organization) (*models.Organization, error)
	// UpdateProfile applies the non-zero profile fields.
	UpdateProfile(id string, update models.OrganizationProfileUpdate) error
	// Exists reports whether an organization document is present.
	Exists(id string) (bool, error)
}
