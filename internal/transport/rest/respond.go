package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	Fields     []fieldError        `json:"fields,omitempty"`
	Violations []quotaViolationDTO `json:"violations,omitempty"`
	ScannedAt  *time.Time          `json:"scannedAt,omitempty"`
	Retryable  bool                `json:"retryable,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type quotaViolationDTO struct {
	BrigadeID string `json:"brigadeId"`
	Allowed   int    `json:"allowed"`
	Approved  int    `json:"approved"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, errorResponse{Error: body})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognised
// is logged and reported as a bare 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr *domain.ValidationError
		terr *domain.InvalidTransitionError
		uerr *domain.AlreadyUsedError
	)

	switch {
	case errors.As(err, &verr):
		fields := make([]fieldError, len(verr.Errors))
		for i, f := range verr.Errors {
			fields[i] = fieldError{Field: f.Field, Message: f.Message}
		}
		writeError(w, http.StatusBadRequest, errorBody{Code: "validation", Message: verr.Error(), Fields: fields})
	case errors.As(err, &terr):
		violations := make([]quotaViolationDTO, len(terr.Violations))
		for i, v := range terr.Violations {
			violations[i] = quotaViolationDTO{BrigadeID: v.BrigadeID.String(), Allowed: v.Allowed, Approved: v.Approved}
		}
		writeError(w, http.StatusConflict, errorBody{Code: "invalid_transition", Message: terr.Error(), Violations: violations})
	case errors.As(err, &uerr):
		at := uerr.ScannedAt
		writeError(w, http.StatusConflict, errorBody{Code: "already_used", Message: "ticket already used", ScannedAt: &at})
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, errorBody{Code: "conflict", Message: "concurrent update, retry the request", Retryable: true})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, errorBody{Code: "already_exists", Message: "already exists"})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, errorBody{Code: "not_found", Message: "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, errorBody{Code: "unauthorized", Message: "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, errorBody{Code: "forbidden", Message: "forbidden"})
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, errorBody{Code: "internal", Message: "internal server error"})
	}
}

// decodeJSON reads a size-limited JSON body. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// pathID parses a UUID path value.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func parseOptionalID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a UUID")
	}
	return &id, nil
}
