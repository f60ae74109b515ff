package trade

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	orgRepo "tradenet/database/repository/org"
	tradeRepo "tradenet/database/repository/trade"
	"tradenet/models"
	"tradenet/utils"
)

// EventInvoiceRequestCreated is the event type dispatched to counterparties.
const EventInvoiceRequestCreated = "invoice_request_created"

// DefaultTradeService is the production implementation.
type DefaultTradeService struct {
	Repo     tradeRepo.TradeRepository
	OrgRepo  orgRepo.OrgRepository
	Notifier Dispatcher
}

// CreateInvoiceRequest validates eagerly, applies the paired posting in one
// transaction through the repository, and only then hands the notification to
// the dispatcher. A dispatch problem never rolls back or fails the request.
func (s *DefaultTradeService) CreateInvoiceRequest(ctx context.Context, fromOrg string, in CreateRequestInput) (*models.InvoiceRequest, error) {
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, ValidationError{Msg: "amount must be a finite positive number"}
	}
	toOrg, err := canonicalDestination(in.ToAccount)
	if err != nil {
		return nil, err
	}
	if toOrg == fromOrg {
		return nil, ValidationError{Msg: "to_account must differ from the requesting organization"}
	}

	destRegistered, err := s.OrgRepo.Exists(toOrg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination %s: %w", toOrg, err)
	}

	now := time.Now()
	request := models.InvoiceRequest{
		ID:          uuid.NewString(),
		FromOrg:     fromOrg,
		ToOrg:       toOrg,
		Amount:      in.Amount,
		Description: in.Description,
		Status:      models.StatusPending,
		CreatedAt:   now,
	}

	entry := models.LedgerEntry{
		ID:          "inv_" + request.ID,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        now,
		Reference:   request.ID,
		From:        fromOrg,
		To:          toOrg,
	}
	debit := entry
	debit.Direction = models.EntryDebit
	debit.Counterparty = toOrg
	credit := entry
	credit.Direction = models.EntryCredit
	credit.Counterparty = fromOrg

	edgeID := models.EdgeKey(fromOrg, toOrg)
	a, b := fromOrg, toOrg
	if b < a {
		a, b = b, a
	}

	posting := tradeRepo.Posting{
		Request:        request,
		Debit:          debit,
		Credit:         credit,
		Edge:           models.NetworkEdge{ID: edgeID, A: a, B: b, LastTxn: now},
		DestRegistered: destRegistered,
	}
	if err := s.Repo.CreatePosting(posting); err != nil {
		return nil, err
	}

	if destRegistered {
		s.Notifier.Enqueue(models.Event{
			Counterparty: toOrg,
			Type:         EventInvoiceRequestCreated,
			Timestamp:    now,
			Data: map[string]string{
				"invoice_id":  request.ID,
				"from":        fromOrg,
				"to":          toOrg,
				"amount":      strconv.FormatFloat(in.Amount, 'f', -1, 64),
				"description": in.Description,
			},
		})
	} else {
		utils.GetLogger().Info("destination not registered, credit posting and notification skipped",
			zap.String("request", request.ID), zap.String("to", toOrg))
	}

	return &request, nil
}

// ListRequests returns the organization's invoice requests, newest first.
func (s *DefaultTradeService) ListRequests(ctx context.Context, orgID string, limit, offset int64) ([]models.InvoiceRequest, error) {
	return s.Repo.ListRequests(orgID, limit, offset)
}

// ListIncoming returns requests addressed to the organization.
func (s *DefaultTradeService) ListIncoming(ctx context.Context, orgID string, limit, offset int64) ([]models.InvoiceRequest, error) {
	return s.Repo.ListIncoming(orgID, limit, offset)
}

// GetLedger returns the organization's ledger-of-counterparty.
func (s *DefaultTradeService) GetLedger(ctx context.Context, orgID, accountID string) (*models.Ledger, error) {
	return s.Repo.GetLedger(orgID, accountID)
}

// ListEdges returns the organization's trade-network edges.
func (s *DefaultTradeService) ListEdges(ctx context.Context, orgID string) ([]models.NetworkEdge, error) {
	return s.Repo.ListEdges(orgID)
}
