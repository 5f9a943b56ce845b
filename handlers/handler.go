package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"taskboard-project/backend/board-service/logging"
	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/services"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// respondServiceError maps the service error taxonomy onto status codes.
// Anything unrecognized is a persistence failure: it is logged server-side
// and surfaced as the operation's generic 500 message.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		respondError(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		respondError(w, http.StatusConflict, conflictErr.Message)
	default:
		logging.Logger.Errorf("Event ID: STORE_OPERATION_FAILED, Description: %s: %v", fallback, err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

// decodePatch reads the request body as a partial-update payload. An empty
// body decodes to an empty patch; malformed JSON is an error.
func decodePatch(r *http.Request) (models.Patch, error) {
	var payload models.Patch
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Patch{}, nil
		}
		return nil, err
	}
	return payload, nil
}
