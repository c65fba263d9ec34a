package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"loansign/internal/common/logging"
	"loansign/internal/statusstore"
)

// HandleStatus is the read side of the completion cache: 200 when the
// document has been recorded as completed, 404 otherwise. Clients poll it
// until the webhook lands, then fetch the download.
//
// A store failure also answers 404: "unknown" is treated as "not completed"
// so a user is never told a document is ready when it is not.
func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["id"]
	if documentID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	status, found, err := h.store.Get(r.Context(), documentID)
	if err != nil {
		h.logger.Error("status lookup failed", err,
			logging.String("document_id", documentID),
		)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if !found || status != statusstore.StatusCompleted {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}
