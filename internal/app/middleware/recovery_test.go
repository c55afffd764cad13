package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recoverServe(t *testing.T, h http.HandlerFunc) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)

	Recovery(zap.NewNop())(h).ServeHTTP(rec, req)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRecoveryDivideByZero(t *testing.T) {
	rec, body := recoverServe(t, func(w http.ResponseWriter, r *http.Request) {
		zero := 0
		_ = 1 / zero
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Division by zero", body.Error)
	assert.Contains(t, body.Message, "integer divide by zero")
	assert.Equal(t, http.StatusInternalServerError, body.Status)
}

func TestRecoveryNilMapWrite(t *testing.T) {
	rec, body := recoverServe(t, func(w http.ResponseWriter, r *http.Request) {
		var counts map[string]int
		counts["x"]++
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "User or role not found", body.Error)
	assert.Contains(t, body.Message, "nil map")
}

func TestRecoveryNonErrorPanic(t *testing.T) {
	rec, body := recoverServe(t, func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "User or role not found", body.Error)
	assert.Equal(t, "boom", body.Message)
}

func TestRecoveryPassesThroughCleanRequests(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)

	Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
