package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/taskhive/taskhive/domain/model"
	"github.com/taskhive/taskhive/internal/logging"
)

// successEnvelope is the uniform wrapper for successful responses.
type successEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Content any    `json:"content"`
}

// errorEnvelope is the uniform wrapper for failed responses.
type errorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, content any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successEnvelope{Status: status, Message: message, Content: content})
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Status: status, Message: message, Error: err.Error()})
}

// respondError maps a domain error kind to an HTTP status and envelope.
// Anything outside the domain taxonomy is handed to the generic handler.
func (h *handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var de *model.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case model.ErrKindNotFound:
			writeError(w, http.StatusNotFound, entityMessage(de.Entity, "not found"), err)
			return
		case model.ErrKindConflict:
			writeError(w, http.StatusConflict, entityMessage(de.Entity, "already exists"), err)
			return
		case model.ErrKindMalformedID:
			writeError(w, http.StatusBadRequest, "Malformed identifier", err)
			return
		case model.ErrKindInvalid:
			writeError(w, http.StatusBadRequest, entityMessage(de.Entity, "invalid"), err)
			return
		}
	}
	h.internalError(w, r, err)
}

// internalError is the catch-all for unclassified failures: log with the
// request-scoped logger, answer with a uniform 500 envelope.
func (h *handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error(r.Context(), "request failed",
		"method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error", err)
}

// entityMessage renders "Project not found" style messages from an entity
// tag and a suffix.
func entityMessage(entity, suffix string) string {
	if entity == "" {
		return suffix
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " " + suffix
}

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
