package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"error-demo/internal/domain"

	"go.uber.org/zap"
)

// Recovery is a middleware that recovers from panics and feeds them through
// the error translator instead of letting the connection die.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec),
						zap.String("stack", string(debug.Stack())),
					)

					WriteErrorResponse(w, classifyPanic(rec), logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// classifyPanic assigns a recovered value to a domain error category.
// Integer division by zero is the only runtime error with a category of its
// own; every other panic lands in the catch-all.
func classifyPanic(rec any) error {
	if err, ok := rec.(runtime.Error); ok {
		if strings.Contains(err.Error(), "integer divide by zero") {
			return domain.Categorize(domain.ErrDivideByZero, err)
		}
		return domain.Categorize(domain.ErrNilReference, err)
	}
	if err, ok := rec.(error); ok {
		return domain.Categorize(domain.ErrNilReference, err)
	}
	return domain.Categorize(domain.ErrNilReference, fmt.Errorf("%v", rec))
}
