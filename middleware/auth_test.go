package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier accepts a single token and counts verifications.
type fakeVerifier struct {
	token string
	uid   string
	calls int
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	f.calls++
	if idToken != f.token {
		return nil, errors.New("invalid token")
	}
	return &auth.Token{UID: f.uid}, nil
}

func newAuthTestRouter(t *testing.T, verifier TokenVerifier, cache *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier, cache), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"org": OrgID(c)})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	verifier := &fakeVerifier{token: "good", uid: "27AAAAA0000A1Z5"}
	r := newAuthTestRouter(t, verifier, nil)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer ").Code)
	assert.Zero(t, verifier.calls)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	verifier := &fakeVerifier{token: "good", uid: "27AAAAA0000A1Z5"}
	r := newAuthTestRouter(t, verifier, nil)

	w := doRequest(r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	verifier := &fakeVerifier{token: "good", uid: "27AAAAA0000A1Z5"}
	r := newAuthTestRouter(t, verifier, nil)

	w := doRequest(r, "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "27AAAAA0000A1Z5")
}

func TestAuthMiddlewareCachesVerifiedTokens(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	verifier := &fakeVerifier{token: "good", uid: "27AAAAA0000A1Z5"}
	r := newAuthTestRouter(t, verifier, cache)

	for i := 0; i < 3; i++ {
		w := doRequest(r, "Bearer good")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "27AAAAA0000A1Z5")
	}

	// Only the first request hits the identity provider.
	assert.Equal(t, 1, verifier.calls)
}
