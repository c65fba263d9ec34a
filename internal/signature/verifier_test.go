package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loansign/internal/common/errors"
)

func TestVerifier_Verify(t *testing.T) {
	v := NewVerifier()
	body := []byte(`{"event":{"eventType":"Completed"},"data":{"documentId":"doc-123"}}`)
	secret := "s3cr3t"

	t.Run("valid signature passes", func(t *testing.T) {
		err := v.Verify(body, Sign(body, secret), secret)
		assert.NoError(t, err)
	})

	t.Run("valid signature with sha256 prefix passes", func(t *testing.T) {
		err := v.Verify(body, "sha256="+Sign(body, secret), secret)
		assert.NoError(t, err)
	})

	t.Run("tampered body fails", func(t *testing.T) {
		tampered := []byte(`{"event":{"eventType":"Completed"},"data":{"documentId":"doc-999"}}`)
		err := v.Verify(tampered, Sign(body, secret), secret)
		assert.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSignature))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		err := v.Verify(body, Sign(body, "other-secret"), secret)
		assert.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSignature))
	})

	t.Run("missing signature header fails", func(t *testing.T) {
		err := v.Verify(body, "", secret)
		assert.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSignature))
		assert.Contains(t, err.Error(), "missing signature header")
	})

	t.Run("malformed signature header fails", func(t *testing.T) {
		err := v.Verify(body, "not-hex-at-all", secret)
		assert.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSignature))
		assert.Contains(t, err.Error(), "malformed")
	})

	t.Run("truncated signature fails as malformed", func(t *testing.T) {
		err := v.Verify(body, Sign(body, secret)[:16], secret)
		assert.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeSignature))
	})

	t.Run("uppercase hex signature passes", func(t *testing.T) {
		upper := ""
		for _, c := range Sign(body, secret) {
			if c >= 'a' && c <= 'f' {
				upper += string(c - 32)
			} else {
				upper += string(c)
			}
		}
		err := v.Verify(body, upper, secret)
		assert.NoError(t, err)
	})

	t.Run("empty secret is a config error", func(t *testing.T) {
		err := v.Verify(body, Sign(body, secret), "")
		assert.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeConfig))
	})

	t.Run("empty body round-trips", func(t *testing.T) {
		err := v.Verify(nil, Sign(nil, secret), secret)
		assert.NoError(t, err)
	})
}
