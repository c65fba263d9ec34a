// Package handlers implements the HTTP surface of the loan signing service.
package handlers

import (
	"net/http"

	"loansign/internal/common/errors"
	"loansign/internal/common/logging"
	"loansign/internal/config"
	"loansign/internal/esign"
	"loansign/internal/signature"
	"loansign/internal/statusstore"
)

// Handlers bundles the dependencies the HTTP handlers share. Everything is
// injected at construction; handlers hold no state of their own beyond the
// status store.
type Handlers struct {
	config   *config.Config
	store    statusstore.Store
	provider esign.Provider
	verifier *signature.Verifier
	logger   logging.Logger
}

// New creates the handler set
func New(cfg *config.Config, store statusstore.Store, provider esign.Provider, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Handlers{
		config:   cfg,
		store:    store,
		provider: provider,
		verifier: signature.NewVerifier(),
		logger:   logger,
	}
}

// respondError writes the HTTP status mapped from the error taxonomy with
// the error message as a plain-text body
func respondError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), errors.HTTPStatus(err))
}
