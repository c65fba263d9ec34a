package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"loansign/internal/common/errors"
	"loansign/internal/common/logging"
	"loansign/internal/esign"
	"loansign/internal/models"
)

// signDocumentResponse is returned to the form client; SignLink is loaded
// into the signing iframe.
type signDocumentResponse struct {
	DocumentID string `json:"documentId"`
	SignLink   string `json:"signLink"`
}

// HandleSignDocument creates a signature request from the loan application
// template, pre-filled with the submitted form values, and returns the
// embedded signing link.
func (h *Handlers) HandleSignDocument(w http.ResponseWriter, r *http.Request) {
	var app models.LoanApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		respondError(w, errors.MalformedPayloadError("loan application is not valid JSON", err))
		return
	}

	if h.config.EsignTemplateID == "" {
		cfgErr := errors.ConfigError("template id is not configured")
		h.logger.Error("sign document rejected", cfgErr)
		respondError(w, cfgErr)
		return
	}
	app.TemplateID = h.config.EsignTemplateID

	req := &esign.SignRequest{
		Title:         "Home Loan Application Form",
		TemplateID:    app.TemplateID,
		DisableEmails: true,
		Roles: []esign.Role{
			{
				SignerName:         app.SignerName(),
				SignerEmail:        app.EmailAddress,
				RoleIndex:          1,
				SignerType:         "Signer",
				ExistingFormFields: app.FormFields(),
			},
		},
	}

	created, err := h.provider.SendForSignature(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create document from template", err)
		respondError(w, err)
		return
	}

	signLink, err := h.provider.EmbeddedSignLink(r.Context(), created.DocumentID, app.EmailAddress, redirectURL(r))
	if err != nil {
		h.logger.Error("failed to create embedded sign link", err,
			logging.String("document_id", created.DocumentID),
		)
		respondError(w, err)
		return
	}

	h.logger.Info("document sent for signature",
		logging.String("document_id", created.DocumentID),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(signDocumentResponse{
		DocumentID: created.DocumentID,
		SignLink:   signLink,
	})
}

// HandleDownload streams the completed document as a PDF attachment
func (h *Handlers) HandleDownload(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["id"]
	if documentID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	document, err := h.provider.DownloadDocument(r.Context(), documentID)
	if err != nil {
		h.logger.Error("failed to download document", err,
			logging.String("document_id", documentID),
		)
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=Copy_LoanApplicationForm.pdf")
	w.Write(document)
}

// redirectURL is where the provider sends the signer after the embedded
// signing ceremony finishes.
func redirectURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/sign-completed"
}
