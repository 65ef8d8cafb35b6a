package newsletter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Unsubscribe tokens bind an unsubscribe link to one address: the token is
// a base64url payload plus an 8-byte truncated HMAC-SHA256 signature over
// the email, so the external unsubscribe handler can verify the pair
// without a database lookup and a reader cannot forge a token for someone
// else's address.

// UnsubscribeToken derives the token for an email address.
func UnsubscribeToken(email, secret string) string {
	payload := []byte(email)
	payloadEnc := base64.RawURLEncoding.EncodeToString(payload)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	sig := h.Sum(nil)[:8]
	sigEnc := base64.RawURLEncoding.EncodeToString(sig)

	return payloadEnc + "." + sigEnc
}

// VerifyUnsubscribeToken reports whether the token is valid for the email.
func VerifyUnsubscribeToken(email, token, secret string) bool {
	return hmac.Equal([]byte(UnsubscribeToken(email, secret)), []byte(token))
}
