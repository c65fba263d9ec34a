// Package esign is the boundary to the external e-signature provider.
// The rest of the service only depends on the narrow Provider interface;
// the provider's richer API surface stays behind it.
package esign

import "context"

// FormField pre-fills an existing field on the template document
type FormField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Role describes a signer on the document
type Role struct {
	SignerName         string      `json:"signerName"`
	SignerEmail        string      `json:"signerEmail"`
	RoleIndex          int         `json:"roleIndex"`
	SignerType         string      `json:"signerType"`
	ExistingFormFields []FormField `json:"existingFormFields,omitempty"`
}

// SignRequest creates a document from a template and sends it for signature
type SignRequest struct {
	Title         string `json:"title"`
	TemplateID    string `json:"templateId"`
	DisableEmails bool   `json:"disableEmails"`
	Roles         []Role `json:"roles"`
}

// DocumentCreated is the provider's response to a send-for-signature call
type DocumentCreated struct {
	DocumentID string `json:"documentId"`
}

// Provider is the capability set the service needs from the e-signature
// provider: create a signature request, mint an embedded signing link, and
// download the completed document. All calls are opaque remote operations.
type Provider interface {
	SendForSignature(ctx context.Context, req *SignRequest) (*DocumentCreated, error)
	EmbeddedSignLink(ctx context.Context, documentID, signerEmail, redirectURL string) (string, error)
	DownloadDocument(ctx context.Context, documentID string) ([]byte, error)
}
