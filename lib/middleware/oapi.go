package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	nethttpmiddleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/onkernel/diskprobe/lib/oapi"
)

// OapiValidator rejects requests that do not match spec before they reach
// a handler. Rejections carry the API's JSON error body.
func OapiValidator(spec *openapi3.T) func(http.Handler) http.Handler {
	return nethttpmiddleware.OapiRequestValidatorWithOptions(spec, &nethttpmiddleware.Options{
		ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
			slog.Debug("request rejected by openapi validator", "status", statusCode, "error", message)
			WriteError(w, statusCode, validationMessage(statusCode))
		},
	})
}

// WriteError writes an oapi.Error body with status.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(oapi.Error{Error: message})
}

func validationMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid JSON body"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusMethodNotAllowed:
		return "Method not allowed"
	default:
		return http.StatusText(status)
	}
}
