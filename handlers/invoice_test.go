package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradenet/models"
	"tradenet/services/trade"
)

// stubTradeService returns canned results for handler tests.
type stubTradeService struct {
	created   *models.InvoiceRequest
	createErr error
	lastFrom  string
	lastInput trade.CreateRequestInput
}

func (s *stubTradeService) CreateInvoiceRequest(ctx context.Context, fromOrg string, in trade.CreateRequestInput) (*models.InvoiceRequest, error) {
	s.lastFrom = fromOrg
	s.lastInput = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubTradeService) ListRequests(ctx context.Context, orgID string, limit, offset int64) ([]models.InvoiceRequest, error) {
	return []models.InvoiceRequest{}, nil
}

func (s *stubTradeService) ListIncoming(ctx context.Context, orgID string, limit, offset int64) ([]models.InvoiceRequest, error) {
	return []models.InvoiceRequest{}, nil
}

func (s *stubTradeService) GetLedger(ctx context.Context, orgID, accountID string) (*models.Ledger, error) {
	return &models.Ledger{OwnerID: orgID, Counterparty: accountID, Entries: []models.LedgerEntry{}}, nil
}

func (s *stubTradeService) ListEdges(ctx context.Context, orgID string) ([]models.NetworkEdge, error) {
	return []models.NetworkEdge{}, nil
}

func setOrg(orgID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("orgID", orgID)
		c.Next()
	}
}

func newTradeTestRouter(svc trade.TradeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTradeHandler(svc)
	r := gin.New()
	r.Any("/api/invoice_requests", setOrg("27AAAAA0000A1Z5"), h.InvoiceRequestsHandler)
	r.Any("/api/ledger", setOrg("27AAAAA0000A1Z5"), h.LedgerHandler)
	r.Any("/api/network", setOrg("27AAAAA0000A1Z5"), h.NetworkHandler)
	return r
}

func TestInvoiceRequestsCreate(t *testing.T) {
	svc := &stubTradeService{created: &models.InvoiceRequest{ID: "req-1", Status: models.StatusPending}}
	r := newTradeTestRouter(svc)

	body := `{"to_account":"07ABCDE1234F2Z9","amount":1500,"description":"cement"}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoice_requests?action=create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "req-1")
	assert.Equal(t, "27AAAAA0000A1Z5", svc.lastFrom)
	assert.Equal(t, "07ABCDE1234F2Z9", svc.lastInput.ToAccount)
	assert.Equal(t, float64(1500), svc.lastInput.Amount)
}

func TestInvoiceRequestsCreateValidationError(t *testing.T) {
	svc := &stubTradeService{createErr: trade.ValidationError{Msg: "amount must be a finite positive number"}}
	r := newTradeTestRouter(svc)

	body := `{"to_account":"07ABCDE1234F2Z9","amount":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoice_requests?action=create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "finite positive")
}

func TestInvoiceRequestsCreateRejectsBadPayload(t *testing.T) {
	svc := &stubTradeService{}
	r := newTradeTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/invoice_requests?action=create", strings.NewReader(`{"amount":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActionDispatchUnknownCombinations(t *testing.T) {
	r := newTradeTestRouter(&stubTradeService{})

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/invoice_requests"},
		{http.MethodGet, "/api/invoice_requests?action=create"},
		{http.MethodPost, "/api/invoice_requests?action=list"},
		{http.MethodDelete, "/api/invoice_requests?action=create"},
		{http.MethodGet, "/api/ledger"},
		{http.MethodPost, "/api/ledger?action=get"},
		{http.MethodGet, "/api/network?action=unknown"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tc.method, tc.target)
		assert.Contains(t, w.Body.String(), "Method not allowed or missing action")
	}
}

func TestLedgerRequiresAccountID(t *testing.T) {
	r := newTradeTestRouter(&stubTradeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/ledger?action=get", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "account_id required")
}

func TestLedgerGet(t *testing.T) {
	r := newTradeTestRouter(&stubTradeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/ledger?action=get&account_id=07ABCDE1234F2Z9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "07ABCDE1234F2Z9")
}

func TestNetworkListEdges(t *testing.T) {
	r := newTradeTestRouter(&stubTradeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/network?action=list_edges", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
