package identity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradenet/models"
)

// mockOrgRepo is an in-memory OrgRepository.
type mockOrgRepo struct {
	orgs        map[string]*models.Organization
	ensureCalls int
}

func newMockOrgRepo() *mockOrgRepo {
	return &mockOrgRepo{orgs: map[string]*models.Organization{}}
}

func (m *mockOrgRepo) GetByID(id string) (*models.Organization, error) {
	return m.orgs[id], nil
}

func (m *mockOrgRepo) EnsureRegistered(org *models.Organization) (*models.Organization, error) {
	m.ensureCalls++
	if existing, ok := m.orgs[org.ID]; ok {
		return existing, nil
	}
	stored := *org
	stored.Registered = true
	stored.CreatedAt = time.Now()
	m.orgs[org.ID] = &stored
	return &stored, nil
}

func (m *mockOrgRepo) UpdateProfile(id string, update models.OrganizationProfileUpdate) error {
	org, ok := m.orgs[id]
	if !ok {
		return errors.New("organization not found")
	}
	if update.WebhookURL != "" {
		org.WebhookURL = update.WebhookURL
	}
	if update.FCMToken != "" {
		org.FCMToken = update.FCMToken
	}
	return nil
}

func (m *mockOrgRepo) Exists(id string) (bool, error) {
	_, ok := m.orgs[id]
	return ok, nil
}

// fakeAuth is an AuthProvider that mints predictable tokens.
type fakeAuth struct {
	users        map[string]bool
	createdUsers []string
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{users: map[string]bool{}}
}

func (f *fakeAuth) GetUser(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if !f.users[uid] {
		return nil, errors.New("user not found")
	}
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: uid}}, nil
}

func (f *fakeAuth) CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	// The builder does not expose the UID; the service always sets it to the
	// canonical identifier it just persisted.
	f.createdUsers = append(f.createdUsers, "created")
	return &auth.UserRecord{}, nil
}

func (f *fakeAuth) CustomToken(ctx context.Context, uid string) (string, error) {
	return "token-" + uid, nil
}

// captureGateway records the last OTP message instead of sending it.
type captureGateway struct {
	phone   string
	message string
}

func (g *captureGateway) SendOTP(ctx context.Context, phone, message string) error {
	g.phone = phone
	g.message = message
	return nil
}

func newTestIdentityService(t *testing.T) (*DefaultIdentityService, *mockOrgRepo, *fakeAuth, *captureGateway, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := newMockOrgRepo()
	authP := newFakeAuth()
	gateway := &captureGateway{}
	svc := &DefaultIdentityService{
		Repo:      repo,
		Auth:      authP,
		Directory: StaticGSTDirectory{},
		OTP:       NewOTPStore(client, 5*time.Minute),
		Gateway:   gateway,
	}
	return svc, repo, authP, gateway, mr
}

// extractOTP pulls the 6-character code out of the captured gateway message.
func extractOTP(t *testing.T, message string) string {
	t.Helper()
	const marker = "OTP is: "
	start := strings.Index(message, marker)
	require.GreaterOrEqual(t, start, 0, "message %q has no OTP marker", message)
	start += len(marker)
	return message[start : start+6]
}

func TestLoginGSTFullFlow(t *testing.T) {
	svc, repo, _, gateway, _ := newTestIdentityService(t)
	ctx := context.Background()

	// Step one: no OTP means one gets sent to the directory phone.
	result, err := svc.Login(ctx, "27AAAAA0000A1Z5", "")
	require.NoError(t, err)
	assert.True(t, result.OTPSent)
	assert.Empty(t, result.Token)
	assert.Equal(t, "+919876543210", gateway.phone)

	// Step two: verifying the code registers the org and issues a token.
	code := extractOTP(t, gateway.message)
	result, err = svc.Login(ctx, "27AAAAA0000A1Z5", code)
	require.NoError(t, err)
	assert.False(t, result.OTPSent)
	assert.Equal(t, "token-27AAAAA0000A1Z5", result.Token)

	org, err := repo.GetByID("27AAAAA0000A1Z5")
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, models.IdentifierGST, org.Kind)
	assert.Equal(t, "27AAAAA0000A1Z5", org.GSTNumber)
	assert.Equal(t, "Demo Org Pvt Ltd", org.LegalName)
}

func TestLoginIsIdempotentAcrossRepeats(t *testing.T) {
	svc, repo, _, gateway, _ := newTestIdentityService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, "27AAAAA0000A1Z5", "")
		require.NoError(t, err)
		code := extractOTP(t, gateway.message)
		result, err := svc.Login(ctx, "27AAAAA0000A1Z5", code)
		require.NoError(t, err)
		assert.Equal(t, "token-27AAAAA0000A1Z5", result.Token)
	}

	// Repeated logins never create a duplicate organization.
	assert.Len(t, repo.orgs, 1)
	assert.Equal(t, 2, repo.ensureCalls)
}

func TestLoginWrongOTP(t *testing.T) {
	svc, _, _, _, _ := newTestIdentityService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "27AAAAA0000A1Z5", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "27AAAAA0000A1Z5", "WRONG1")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestLoginPANRequiresPriorRegistration(t *testing.T) {
	svc, _, _, _, _ := newTestIdentityService(t)

	_, err := svc.Login(context.Background(), "AAAAA0000A", "")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestLoginPANAfterRegistration(t *testing.T) {
	svc, _, _, gateway, _ := newTestIdentityService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegistrationRequest{
		Phone:     "+919876543210",
		PAN:       "AAAAA0000A",
		OwnerName: "Asha",
		ShopName:  "Asha Traders",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "AAAAA0000A", "")
	require.NoError(t, err)
	assert.True(t, result.OTPSent)
	assert.Equal(t, "+919876543210", gateway.phone)
}

func TestLoginRejectsInvalidIdentifier(t *testing.T) {
	svc, _, _, _, _ := newTestIdentityService(t)

	_, err := svc.Login(context.Background(), "garbage", "")
	require.Error(t, err)
	var verr ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRegisterWithGSTUsesGSTAsCanonicalID(t *testing.T) {
	svc, repo, authP, _, _ := newTestIdentityService(t)

	token, err := svc.Register(context.Background(), RegistrationRequest{
		Phone:     "+919876543210",
		PAN:       "AAAAA0000A",
		GST:       "27AAAAA0000A1Z5",
		OwnerName: "Asha",
		ShopName:  "Asha Traders",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-27AAAAA0000A1Z5", token)

	org := repo.orgs["27AAAAA0000A1Z5"]
	require.NotNil(t, org)
	assert.Equal(t, models.IdentifierGST, org.Kind)
	assert.Equal(t, "AAAAA0000A", org.PAN)
	assert.Len(t, authP.createdUsers, 1)
}

func TestRegisterWithoutGSTUsesPANPrefix(t *testing.T) {
	svc, repo, _, _, _ := newTestIdentityService(t)

	token, err := svc.Register(context.Background(), RegistrationRequest{
		Phone:     "+919876543210",
		PAN:       "AAAAA0000A",
		OwnerName: "Asha",
		ShopName:  "Asha Traders",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-PAN:AAAAA0000A", token)
	assert.NotNil(t, repo.orgs["PAN:AAAAA0000A"])
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _, _ := newTestIdentityService(t)

	_, err := svc.Register(context.Background(), RegistrationRequest{
		Phone: "123",
		PAN:   "nope",
		GST:   "also-nope",
	})
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "pan has invalid format")
	assert.Contains(t, verr.Details, "phone has invalid format")
	assert.Contains(t, verr.Details, "gst has invalid format")
	assert.Contains(t, verr.Details, "owner_name is required")
	assert.Contains(t, verr.Details, "shop_name is required")
}
