package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyWebhookPayload(t *testing.T) {
	secret := []byte("secret")
	body := []byte(`{"event":"invoice_request_created","amount":"1500"}`)

	sig, err := SignWebhookPayload(secret, body)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	assert.NoError(t, VerifyWebhookSignature(secret, body, sig))
}

func TestVerifyWebhookSignatureRejectsTamperedBody(t *testing.T) {
	secret := []byte("secret")
	sig, err := SignWebhookPayload(secret, []byte(`{"amount":"1500"}`))
	require.NoError(t, err)

	assert.Error(t, VerifyWebhookSignature(secret, []byte(`{"amount":"9999"}`), sig))
}

func TestVerifyWebhookSignatureRejectsWrongSecret(t *testing.T) {
	body := []byte(`{"amount":"1500"}`)
	sig, err := SignWebhookPayload([]byte("secret"), body)
	require.NoError(t, err)

	assert.Error(t, VerifyWebhookSignature([]byte("other"), body, sig))
}

func TestSignWebhookPayloadRequiresSecret(t *testing.T) {
	_, err := SignWebhookPayload(nil, []byte("body"))
	assert.Error(t, err)
}

func TestHashTokenStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
