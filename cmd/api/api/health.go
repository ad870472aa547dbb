package api

import (
	"context"

	"github.com/onkernel/diskprobe/lib/logger"
	"github.com/onkernel/diskprobe/lib/oapi"
)

// GetHealth reports liveness and storage counts
func (s *ApiService) GetHealth(ctx context.Context, request oapi.GetHealthRequestObject) (oapi.GetHealthResponseObject, error) {
	report, err := s.HealthReporter.Report(ctx)
	if err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "failed to build health report", "error", err)
		return oapi.GetHealth500JSONResponse{Error: err.Error()}, nil
	}

	resp := oapi.GetHealth200JSONResponse{
		Status:  report.Status,
		Service: report.Service,
		Uptime:  report.Uptime,
	}
	resp.Storage.Images = report.Storage.Images
	resp.Storage.Processed = report.Storage.Processed
	return resp, nil
}
