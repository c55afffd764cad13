package middleware

import (
	"net/http"
	"time"

	"error-demo/internal/domain"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the single error body shape returned by the API.
type ErrorResponse struct {
	Date    time.Time    `json:"date"`
	Error   domain.Label `json:"error"`
	Message string       `json:"message,omitempty"`
	Status  int          `json:"status"`
}

// fallbackBody is written when the error body itself cannot be marshaled.
var fallbackBody = []byte(`{"error":"User or role not found","message":"response not writable","status":500}`)

// WriteJSON marshals v before touching the ResponseWriter, so a failed
// serialization leaves the response untouched for the error translator.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	return nil
}

// WriteErrorResponse translates err into its HTTP status and category label
// and writes the error body. Every error leaving the API goes through here.
func WriteErrorResponse(w http.ResponseWriter, err error, logger *zap.Logger) {
	status := domain.GetHTTPStatus(err)
	label := domain.GetErrorLabel(err)

	// Log internal errors
	if status == http.StatusInternalServerError {
		logger.Error("Internal server error",
			zap.Error(err),
			zap.Int("status", status),
		)
	}

	observeError(label)

	resp := ErrorResponse{
		Date:    time.Now().UTC(),
		Error:   label,
		Message: err.Error(),
		Status:  status,
	}

	data, merr := json.Marshal(resp)
	if merr != nil {
		logger.Error("failed to marshal error response", zap.Error(merr))
		data = fallbackBody
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, werr := w.Write(data); werr != nil {
		logger.Error("failed to write error response", zap.Error(werr))
	}
}
