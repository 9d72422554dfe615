package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "personnel/pkg/domain-errors"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Entity           string `json:"entity,omitempty"`
	ID               string `json:"id,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders a domain error. Unknown failures never expose their
// description to the client.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeUnknown
	resp := errorResponse{}
	if de, ok := dErrors.As(err); ok {
		code = de.Code
		if code != dErrors.CodeUnknown {
			resp.ErrorDescription = de.Message
			resp.Entity = de.Entity
			resp.ID = de.ID
		}
	}
	resp.Error = string(code)
	WriteJSON(w, dErrors.ToHTTPStatus(code), resp)
}
