package api

import (
	"net/http"

	"github.com/ghodss/yaml"
	"github.com/onkernel/diskprobe"
	"github.com/onkernel/diskprobe/lib/logger"
	mw "github.com/onkernel/diskprobe/lib/middleware"
)

// SpecYAML serves the OpenAPI document
func (s *ApiService) SpecYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.oai.openapi")
	w.Write(diskprobe.OpenAPIYAML)
}

// SpecJSON serves the OpenAPI document converted to JSON
func (s *ApiService) SpecJSON(w http.ResponseWriter, r *http.Request) {
	jsonData, err := yaml.YAMLToJSON(diskprobe.OpenAPIYAML)
	if err != nil {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "failed to convert YAML to JSON", "error", err)
		mw.WriteError(w, http.StatusInternalServerError, "Failed to convert YAML to JSON")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}
