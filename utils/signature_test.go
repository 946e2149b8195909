package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBody(body []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	secret := "test-secret"

	assert.True(t, VerifyWebhookSignature(body, signBody(body, secret), secret))
	assert.False(t, VerifyWebhookSignature(body, signBody(body, "other-secret"), secret))
	assert.False(t, VerifyWebhookSignature(body, "deadbeef", secret))
}

func TestVerifyWebhookSignatureMissingInputs(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)

	assert.False(t, VerifyWebhookSignature(body, "", "test-secret"))
	assert.False(t, VerifyWebhookSignature(body, signBody(body, "test-secret"), ""))
}

// The signature covers the body exactly as transmitted. A body with
// non-canonical whitespace must verify as-is and must NOT verify after
// a parse/re-marshal round trip, which normalizes the formatting.
func TestVerifyWebhookSignatureRawBytes(t *testing.T) {
	raw := []byte("{\n  \"event\" :  \"payment.captured\",\t\"extra\": 1\n}")
	secret := "test-secret"
	signature := signBody(raw, secret)

	assert.True(t, VerifyWebhookSignature(raw, signature, secret))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	reencoded, err := json.Marshal(parsed)
	require.NoError(t, err)
	require.NotEqual(t, raw, reencoded)

	assert.False(t, VerifyWebhookSignature(reencoded, signature, secret))
}
