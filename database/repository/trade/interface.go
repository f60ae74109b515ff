package tradeRepo

import "tradenet/models"

// Posting is the full set of effects produced by one invoice request. The
// repository applies every populated effect in a single transaction: the
// caller never observes a partially posted request.
type Posting struct {
	Request models.InvoiceRequest
	Debit   models.LedgerEntry
	Credit  models.LedgerEntry
	Edge    models.NetworkEdge
	// DestRegistered gates the credit entry and the edge update. An
	// unregistered destination still receives its mirrored request record.
	DestRegistered bool
}

// TradeRepository defines data access for invoice requests, ledgers and the
// trade-network graph.
type TradeRepository interface {
	// CreatePosting atomically applies all effects of one invoice request:
	// the sender's request record, the mirrored destination record, the
	// debit entry, and (for registered destinations) the credit entry and
	// the network-edge update. All commit together or none do.
	CreatePosting(p Posting) error

	// GetLedger returns the (owner, counterparty) entry list, entries in
	// posting order. Missing ledgers come back empty, not as an error.
	GetLedger(ownerID, counterparty string) (*models.Ledger, error)

	// ListRequests returns the owner's invoice-request copies, newest first.
	ListRequests(ownerID string, limit, offset int64) ([]models.InvoiceRequest, error)

	// ListIncoming returns the owner's copies where it is the destination,
	// newest first.
	ListIncoming(ownerID string, limit, offset int64) ([]models.InvoiceRequest, error)

	// ListEdges returns every network edge touching the organization,
	// most recently active first.
	ListEdges(orgID string) ([]models.NetworkEdge, error)

	// SeedLedger creates an empty (owner, counterparty) ledger document if
	// none exists.
	SeedLedger(ownerID, counterparty string) error
}
