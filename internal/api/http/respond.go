package http

import (
	"encoding/json"
	"net/http"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps a checkout failure onto an HTTP status. Validation kinds
// are the caller's fault (400), an unknown tool is 404, and anything
// without a request-error kind is an infrastructure problem (500).
func writeError(w http.ResponseWriter, err error) {
	kind, ok := domain.RequestErrorKindOf(err)
	if !ok {
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	status := http.StatusBadRequest
	if kind == domain.ErrKindToolNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: string(kind)})
}
