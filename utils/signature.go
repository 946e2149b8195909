package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyWebhookSignature checks a Razorpay webhook signature against the
// shared secret. The HMAC must be computed over the body bytes exactly
// as they arrived on the wire; parsing and re-encoding the JSON first
// would change the formatting and break verification.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))

	// hmac.Equal keeps the comparison constant-time
	return hmac.Equal([]byte(expected), []byte(signature))
}
