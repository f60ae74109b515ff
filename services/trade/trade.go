package trade

import (
	"context"
	"strings"

	"tradenet/models"
	"tradenet/services/identity"
)

// Dispatcher is the notification side the trade service hands events to.
// Enqueue must not block and must never fail the caller.
type Dispatcher interface {
	Enqueue(event models.Event)
}

// CreateRequestInput is the invoice-request creation payload. FromAccount is
// accepted for older clients but the authenticated organization is always the
// sender.
type CreateRequestInput struct {
	FromAccount string  `json:"from_account,omitempty"`
	ToAccount   string  `json:"to_account" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty"`
}

// TradeService exposes invoice-request creation and the read projections over
// ledgers and the trade network.
type TradeService interface {
	// CreateInvoiceRequest validates the input, posts all ledger and graph
	// effects atomically, and notifies the counterparty after commit.
	CreateInvoiceRequest(ctx context.Context, fromOrg string, in CreateRequestInput) (*models.InvoiceRequest, error)
	// ListRequests returns the organization's invoice requests, newest first.
	ListRequests(ctx context.Context, orgID string, limit, offset int64) ([]models.InvoiceRequest, error)
	// ListIncoming returns requests addressed to the organization.
	ListIncoming(ctx context.Context, orgID string, limit, offset int64) ([]models.InvoiceRequest, error)
	// GetLedger returns the organization's ledger-of-counterparty.
	GetLedger(ctx context.Context, orgID, accountID string) (*models.Ledger, error)
	// ListEdges returns the organization's trade-network edges.
	ListEdges(ctx context.Context, orgID string) ([]models.NetworkEdge, error)
}

// canonicalDestination validates destination identity material and returns
// the canonical organization identifier. Already-canonical PAN:/phone:
// identifiers are accepted as-is after validating the suffix.
func canonicalDestination(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(trimmed, "PAN:"); ok {
		pan := identity.NormalizeTaxID(rest)
		if !identity.IsValidPAN(pan) {
			return "", ValidationError{Msg: "to_account has an invalid PAN identifier"}
		}
		return identity.CanonicalPAN(pan), nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "phone:"); ok {
		phone := identity.NormalizePhone(rest)
		if !identity.IsValidPhone(phone) {
			return "", ValidationError{Msg: "to_account has an invalid phone identifier"}
		}
		return identity.CanonicalPhone(phone), nil
	}
	_, canonical, err := identity.ResolveIdentifier(trimmed)
	if err != nil {
		return "", ValidationError{Msg: "to_account is not a valid organization identifier"}
	}
	return canonical, nil
}
