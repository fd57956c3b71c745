package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const RequestIdKey key = 1

const requestIdHeader = "X-Request-Id"

// RequestId tags every request with a uuid, reusing the inbound header
// when a proxy already set one.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)
		ctx := context.WithValue(r.Context(), RequestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestId returns the request id or "" outside the middleware.
func GetRequestId(r *http.Request) string {
	id, ok := r.Context().Value(RequestIdKey).(string)
	if !ok {
		return ""
	}
	return id
}
