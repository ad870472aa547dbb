package api

import (
	"context"
	"errors"
	"strings"

	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/logger"
	"github.com/onkernel/diskprobe/lib/oapi"
	"github.com/onkernel/diskprobe/lib/operations"
	"github.com/samber/lo"
)

// ProcessImage runs a named operation against a stored image
func (s *ApiService) ProcessImage(ctx context.Context, request oapi.ProcessImageRequestObject) (oapi.ProcessImageResponseObject, error) {
	log := logger.FromContext(ctx)

	req := operations.Request{
		Operation: lo.FromPtr(request.Body.Operation),
		Filename:  lo.FromPtr(request.Body.Filename),
	}
	if strings.TrimSpace(req.Operation) == "" || strings.TrimSpace(req.Filename) == "" {
		return oapi.ProcessImage400JSONResponse{Error: "Operation and filename required"}, nil
	}

	result, err := s.OperationsManager.Dispatch(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, operations.ErrMissingField):
			return oapi.ProcessImage400JSONResponse{Error: "Operation and filename required"}, nil
		case errors.Is(err, images.ErrNotFound):
			return oapi.ProcessImage404JSONResponse{Error: "File not found"}, nil
		case errors.Is(err, images.ErrInvalidReference):
			return oapi.ProcessImage400JSONResponse{Error: "Invalid filename"}, nil
		case errors.Is(err, operations.ErrUnsupportedOperation):
			return oapi.ProcessImage400JSONResponse{Error: "Unknown operation"}, nil
		default:
			log.ErrorContext(ctx, "failed to process image", "error", err, "operation", req.Operation, "filename", req.Filename)
			return oapi.ProcessImage500JSONResponse{Error: err.Error()}, nil
		}
	}

	return oapi.ProcessImage200JSONResponse(resultToOAPI(*result)), nil
}

func resultToOAPI(res operations.Result) oapi.OperationResult {
	return oapi.OperationResult{
		Success:      res.Success,
		Message:      res.Message,
		Valid:        res.Valid,
		Reason:       lo.EmptyableToPtr(res.Reason),
		OriginalSize: res.OriginalSize,
		Output:       lo.EmptyableToPtr(res.Output),
		JobId:        lo.EmptyableToPtr(res.JobID),
	}
}
