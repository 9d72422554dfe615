package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "personnel/pkg/domain-errors"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// DecodeJSON reads r's body into a T. Malformed JSON, wrong field types and
// empty bodies are InvalidRequest.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (*T, error) {
	var v T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dErrors.New(dErrors.CodeInvalidRequest, "request body is required")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidRequest, "invalid json payload")
	}
	return &v, nil
}
