package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOTPStore(t *testing.T) (*OTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewOTPStore(client, 5*time.Minute), mr
}

func TestOTPInitiateAndVerify(t *testing.T) {
	store, _ := newTestOTPStore(t)
	ctx := context.Background()

	code, err := store.Initiate(ctx, "27AAAAA0000A1Z5")
	require.NoError(t, err)
	require.Len(t, code, 6)

	require.NoError(t, store.Verify(ctx, "27AAAAA0000A1Z5", code))

	// The code is consumed on success and cannot be replayed.
	err = store.Verify(ctx, "27AAAAA0000A1Z5", code)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestOTPVerifyWrongCode(t *testing.T) {
	store, _ := newTestOTPStore(t)
	ctx := context.Background()

	code, err := store.Initiate(ctx, "PAN:AAAAA0000A")
	require.NoError(t, err)

	err = store.Verify(ctx, "PAN:AAAAA0000A", "WRONG1")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	// A wrong attempt does not consume the stored code.
	require.NoError(t, store.Verify(ctx, "PAN:AAAAA0000A", code))
}

func TestOTPVerifyExpired(t *testing.T) {
	store, mr := newTestOTPStore(t)
	ctx := context.Background()

	code, err := store.Initiate(ctx, "phone:+919876543210")
	require.NoError(t, err)

	mr.FastForward(6 * time.Minute)

	err = store.Verify(ctx, "phone:+919876543210", code)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestOTPVerifyNeverInitiated(t *testing.T) {
	store, _ := newTestOTPStore(t)

	err := store.Verify(context.Background(), "27AAAAA0000A1Z5", "123456")
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestOTPStoredHashedAtRest(t *testing.T) {
	store, mr := newTestOTPStore(t)

	code, err := store.Initiate(context.Background(), "27AAAAA0000A1Z5")
	require.NoError(t, err)

	stored, err := mr.Get("otp:27AAAAA0000A1Z5")
	require.NoError(t, err)
	assert.NotEqual(t, code, stored)
	assert.Contains(t, stored, "$2a$")
}
