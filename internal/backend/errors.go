package backend

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/plantcare-app/plantcare/internal/common"
)

// APIError is a failed backend response. Message holds the backend's own
// text; screens show it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend error: status %d", e.Status)
}

// parseAPIError extracts the message from the error body. The auth and the
// table APIs use different envelopes, so every known field is tried.
func parseAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorField       string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			message = envelope.Message
		case envelope.Msg != "":
			message = envelope.Msg
		case envelope.ErrorDescription != "":
			message = envelope.ErrorDescription
		case envelope.ErrorField != "":
			message = envelope.ErrorField
		}
	}
	return &APIError{Status: status, Message: message}
}

// AsStoreError converts a backend failure into the shared taxonomy:
// 404 and the single-object miss (406) become ErrNotFound, 401/403 become
// ErrNoSession, anything else a StoreError carrying the backend message.
func AsStoreError(err error) error {
	if err == nil {
		return nil
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		return common.NewStoreError("", err)
	}
	switch apiErr.Status {
	case http.StatusNotFound, http.StatusNotAcceptable:
		return common.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrNoSession
	default:
		return common.NewStoreError(apiErr.Message, apiErr)
	}
}
