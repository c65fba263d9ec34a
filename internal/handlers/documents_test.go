package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loansign/internal/common/errors"
	"loansign/internal/config"
	"loansign/internal/esign"
	"loansign/internal/handlers"
	"loansign/internal/statusstore"
)

// MockProvider mocks the e-signature provider boundary
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SendForSignature(ctx context.Context, req *esign.SignRequest) (*esign.DocumentCreated, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*esign.DocumentCreated), args.Error(1)
}

func (m *MockProvider) EmbeddedSignLink(ctx context.Context, documentID, signerEmail, redirectURL string) (string, error) {
	args := m.Called(ctx, documentID, signerEmail, redirectURL)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) DownloadDocument(ctx context.Context, documentID string) ([]byte, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newDocumentRouter(templateID string, provider esign.Provider) *mux.Router {
	cfg := &config.Config{
		EsignTemplateID: templateID,
		StatusTTL:       "10m",
	}
	h := handlers.New(cfg, statusstore.NewMemoryStore(), provider, nil)

	router := mux.NewRouter()
	router.HandleFunc("/sign-document", h.HandleSignDocument).Methods("POST")
	router.HandleFunc("/download/{id}", h.HandleDownload).Methods("GET")
	return router
}

const applicationJSON = `{
	"firstName": "Jane",
	"lastName": "Doe",
	"dateOfBirth": "1990/04/12",
	"socialSecurityNo": "123-45-6789",
	"phoneNo": "555-0134",
	"employerName": "Acme Corp",
	"jobTitle": "Engineer",
	"currentYearsAtWork": "6",
	"annualIncome": "120000",
	"loanAmount": "450000",
	"selectedPurpose": "Purchase",
	"propertyAddr": "1 Main St",
	"estimatedValue": "600000",
	"emailAddress": "jane@example.com"
}`

func TestHandleSignDocument(t *testing.T) {
	t.Run("sends the application for signature", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("SendForSignature", mock.Anything, mock.MatchedBy(func(req *esign.SignRequest) bool {
			return req.TemplateID == "tpl-1" &&
				req.DisableEmails &&
				len(req.Roles) == 1 &&
				req.Roles[0].SignerName == "Jane Doe" &&
				req.Roles[0].SignerEmail == "jane@example.com" &&
				len(req.Roles[0].ExistingFormFields) == 14
		})).Return(&esign.DocumentCreated{DocumentID: "doc-123"}, nil)
		provider.On("EmbeddedSignLink", mock.Anything, "doc-123", "jane@example.com", mock.Anything).
			Return("https://sign.example.com/embed/doc-123", nil)

		router := newDocumentRouter("tpl-1", provider)
		req := httptest.NewRequest("POST", "/sign-document", strings.NewReader(applicationJSON))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			DocumentID string `json:"documentId"`
			SignLink   string `json:"signLink"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "doc-123", resp.DocumentID)
		assert.Equal(t, "https://sign.example.com/embed/doc-123", resp.SignLink)

		provider.AssertExpectations(t)
	})

	t.Run("missing template id is a misconfiguration", func(t *testing.T) {
		router := newDocumentRouter("", &MockProvider{})
		req := httptest.NewRequest("POST", "/sign-document", strings.NewReader(applicationJSON))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "template id is not configured")
	})

	t.Run("invalid body is a bad request", func(t *testing.T) {
		router := newDocumentRouter("tpl-1", &MockProvider{})
		req := httptest.NewRequest("POST", "/sign-document", strings.NewReader("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("provider failure surfaces as bad gateway", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("SendForSignature", mock.Anything, mock.Anything).
			Return(nil, errors.ProviderError("provider responded 500", nil))

		router := newDocumentRouter("tpl-1", provider)
		req := httptest.NewRequest("POST", "/sign-document", strings.NewReader(applicationJSON))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestHandleDownload(t *testing.T) {
	t.Run("streams the PDF as an attachment", func(t *testing.T) {
		pdf := []byte("%PDF-1.7 fake")
		provider := &MockProvider{}
		provider.On("DownloadDocument", mock.Anything, "doc-123").Return(pdf, nil)

		router := newDocumentRouter("tpl-1", provider)
		req := httptest.NewRequest("GET", "/download/doc-123", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, pdf, rr.Body.Bytes())

		provider.AssertExpectations(t)
	})

	t.Run("provider failure surfaces as bad gateway", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("DownloadDocument", mock.Anything, "doc-404").
			Return(nil, errors.ProviderError("provider responded 404", nil))

		router := newDocumentRouter("tpl-1", provider)
		req := httptest.NewRequest("GET", "/download/doc-404", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
