package api

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/onkernel/diskprobe/cmd/api/config"
	"github.com/onkernel/diskprobe/lib/convert"
	"github.com/onkernel/diskprobe/lib/health"
	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/logger"
	mw "github.com/onkernel/diskprobe/lib/middleware"
	"github.com/onkernel/diskprobe/lib/oapi"
	"github.com/onkernel/diskprobe/lib/operations"
)

// ApiService implements the oapi.StrictServerInterface
type ApiService struct {
	Config            *config.Config
	ImageManager      images.Manager
	OperationsManager operations.Manager
	HealthReporter    *health.Reporter
	JobQueue          *convert.Queue // nil when no converter is configured
}

var _ oapi.StrictServerInterface = (*ApiService)(nil)

// New creates a new ApiService
func New(
	config *config.Config,
	imageManager images.Manager,
	operationsManager operations.Manager,
	healthReporter *health.Reporter,
	jobQueue *convert.Queue,
) *ApiService {
	return &ApiService{
		Config:            config,
		ImageManager:      imageManager,
		OperationsManager: operationsManager,
		HealthReporter:    healthReporter,
		JobQueue:          jobQueue,
	}
}

// Routes mounts the spec documents and the OpenAPI operations on r. The
// operations sit behind request validation against spec.
func (s *ApiService) Routes(r chi.Router, spec *openapi3.T) {
	r.Get("/spec.yaml", s.SpecYAML)
	r.Get("/spec.json", s.SpecJSON)

	strictHandler := oapi.NewStrictHandlerWithOptions(s, nil, oapi.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			mw.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromContext(r.Context()).ErrorContext(r.Context(), "request failed", "error", err)
			mw.WriteError(w, http.StatusInternalServerError, err.Error())
		},
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.OapiValidator(spec))
		oapi.HandlerWithOptions(strictHandler, oapi.ChiServerOptions{
			BaseRouter: r,
			ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
				mw.WriteError(w, http.StatusBadRequest, err.Error())
			},
		})
	})
}
