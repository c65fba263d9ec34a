// Package signature verifies that inbound webhook deliveries were produced
// by the e-signature provider, using an HMAC-SHA256 digest over the raw
// request body keyed with the shared webhook secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"loansign/internal/common/errors"
)

// Header names set by the e-signature provider on webhook deliveries.
const (
	// EventHeader carries the event type, or HandshakeEvent for endpoint checks
	EventHeader = "X-Esign-Event"
	// SignatureHeader carries the hex HMAC-SHA256 of the request body
	SignatureHeader = "X-Esign-Signature"
	// HandshakeEvent is the EventHeader value of a provider verification ping
	HandshakeEvent = "Verification"

	// signaturePrefix is an optional scheme prefix on the signature header value
	signaturePrefix = "sha256="
)

// Verifier validates webhook signatures. It is stateless; Verify is a pure
// function of its inputs.
type Verifier struct{}

// NewVerifier creates a new signature verifier
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify checks that headerValue carries a valid signature over body.
// The caller is expected to reject an unconfigured secret before calling
// Verify; an empty secret here is reported as a configuration error rather
// than silently accepting the payload.
func (v *Verifier) Verify(body []byte, headerValue, secret string) error {
	if secret == "" {
		return errors.ConfigError("webhook secret is not configured")
	}

	if headerValue == "" {
		return errors.SignatureError("missing signature header")
	}

	received := strings.TrimPrefix(headerValue, signaturePrefix)
	if _, err := hex.DecodeString(received); err != nil || len(received) != sha256.Size*2 {
		return errors.SignatureError("malformed signature header")
	}

	expected := Sign(body, secret)

	// Constant-time comparison; received is case-normalized so providers
	// emitting uppercase hex still match.
	if !hmac.Equal([]byte(strings.ToLower(received)), []byte(expected)) {
		return errors.SignatureError("signature mismatch")
	}

	return nil
}

// Sign computes the lowercase hex HMAC-SHA256 of body keyed with secret.
// It is the signing half of Verify and is used by tests to produce valid
// provider deliveries.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
