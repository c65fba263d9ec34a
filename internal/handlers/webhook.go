package handlers

import (
	"io"
	"net/http"
	"net/url"

	"loansign/internal/common/errors"
	"loansign/internal/common/logging"
	"loansign/internal/event"
	"loansign/internal/signature"
	"loansign/internal/statusstore"
)

// HandleWebhook processes signing event deliveries from the e-signature
// provider. Pipeline: read the full body, short-circuit verification
// handshakes, reject when the secret is unconfigured, verify the signature,
// parse the event, and on a Completed event record the document as completed
// in the status store. The store write is the only side effect; every
// failing branch leaves the store untouched.
func (h *Handlers) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	// The signature covers the whole body, so it must be read in full
	// before any verification can happen.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read webhook body", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	// Provider endpoint checks succeed without verification or parsing.
	if r.Header.Get(signature.EventHeader) == signature.HandshakeEvent {
		w.WriteHeader(http.StatusOK)
		return
	}

	secret := h.config.WebhookSecret
	if secret == "" {
		cfgErr := errors.ConfigError("webhook secret is not configured")
		h.logger.Error("webhook rejected", cfgErr)
		respondError(w, cfgErr)
		return
	}

	if err := h.verifier.Verify(body, r.Header.Get(signature.SignatureHeader), secret); err != nil {
		h.logger.Error("webhook signature validation failed", err,
			logging.String("remote_addr", r.RemoteAddr),
		)
		respondError(w, err)
		return
	}

	ev, err := event.Parse(body)
	if err != nil {
		h.logger.Error("webhook payload is malformed", err)
		respondError(w, err)
		return
	}

	if ev.Type == event.TypeCompleted && ev.Document != nil && ev.Document.DocumentID != "" {
		documentID := ev.Document.DocumentID

		if err := h.store.Set(r.Context(), documentID, statusstore.StatusCompleted, h.config.StatusTTLDuration()); err != nil {
			// A lost write is recovered by the provider's redelivery.
			h.logger.Error("failed to record signing completion", err,
				logging.String("document_id", documentID),
			)
			respondError(w, err)
			return
		}

		h.logger.Info("signing process completed",
			logging.String("document_id", documentID),
		)
		http.Redirect(w, r, "/sign-completed?documentId="+url.QueryEscape(documentID), http.StatusFound)
		return
	}

	// Any other well-formed event is acknowledged without a state change.
	w.WriteHeader(http.StatusOK)
}

// HandleSignCompleted is the redirect target after a completed signing
// ceremony; the client-side poller drives the download from here.
func (h *Handlers) HandleSignCompleted(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Signing completed. Your document is being prepared for download.\n"))
}
