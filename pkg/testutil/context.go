package testutil

import (
	"net/http"

	"personnel/pkg/requestcontext"
)

// WithSubject marks the request as authenticated for subject, the way
// RequireAuth does after validating a token.
func WithSubject(req *http.Request, subject string) *http.Request {
	return req.WithContext(requestcontext.WithSubject(req.Context(), subject))
}

// WithRequestID attaches a request ID as the RequestID middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
