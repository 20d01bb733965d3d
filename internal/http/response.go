package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"goldenhand-backend/internal/agents"
	"goldenhand-backend/internal/services"
	"goldenhand-backend/internal/store"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type NoAgentResponse struct {
	Message string `json:"message"`
	*agents.NoAgentError
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

var validate = validator.New()

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// It writes the 400 response itself and reports false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			WriteError(w, http.StatusBadRequest, "Invalid payload")
			return false
		}
		details := make(map[string]string, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			details[fieldErr.Field()] = fieldErr.Tag()
		}
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Validation failed", Details: details})
		return false
	}
	return true
}

// mapServiceError writes the response for known error kinds and reports
// whether it did.
func mapServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var serr services.ServiceError
	if errors.As(err, &serr) {
		WriteError(w, serr.Status, serr.Message)
		return true
	}
	var noAgent *agents.NoAgentError
	if errors.As(err, &noAgent) {
		WriteJSON(w, http.StatusNotFound, NoAgentResponse{Message: noAgent.Error(), NoAgentError: noAgent})
		return true
	}
	if errors.Is(err, store.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "Not found")
		return true
	}
	return false
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if value < 1 {
		return fallback
	}
	return value
}

// parseGrade accepts grades 1 to 12.
func parseGrade(raw string) (int, bool) {
	grade := parseInt(raw, 0)
	return grade, grade >= 1 && grade <= 12
}
