package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Run("type and message", func(t *testing.T) {
		err := SignatureError("signature mismatch")
		assert.Equal(t, "signature: signature mismatch", err.Error())
	})

	t.Run("includes cause", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := StoreUnavailableError("failed to write status entry", cause)
		assert.Contains(t, err.Error(), "store_unavailable")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("includes context", func(t *testing.T) {
		err := StoreUnavailableError("failed to write status entry", nil).
			WithContext("document_id", "doc-123")
		assert.Contains(t, err.Error(), "document_id=doc-123")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := InternalError("wrapped", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestIsType(t *testing.T) {
	assert.True(t, IsType(ConfigError("missing secret"), ErrTypeConfig))
	assert.False(t, IsType(ConfigError("missing secret"), ErrTypeSignature))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeConfig))
	assert.False(t, IsType(nil, ErrTypeConfig))
}

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrTypeMalformedPayload, GetType(MalformedPayloadError("bad json", nil)))
	assert.Equal(t, ErrTypeInternal, GetType(stderrors.New("plain")))
	assert.Equal(t, ErrorType(""), GetType(nil))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config error", ConfigError("missing secret"), http.StatusBadRequest},
		{"malformed payload", MalformedPayloadError("bad json", nil), http.StatusBadRequest},
		{"signature failure", SignatureError("mismatch"), http.StatusForbidden},
		{"not found", NotFoundError("document"), http.StatusNotFound},
		{"store unavailable", StoreUnavailableError("down", nil), http.StatusBadGateway},
		{"provider failure", ProviderError("500", nil), http.StatusBadGateway},
		{"plain error", stderrors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
