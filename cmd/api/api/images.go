package api

import (
	"context"
	"errors"
	"strings"

	"github.com/onkernel/diskprobe/lib/convert"
	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/logger"
	"github.com/onkernel/diskprobe/lib/oapi"
	"github.com/samber/lo"
)

// AnalyzeImage returns metadata and digests for a stored image
func (s *ApiService) AnalyzeImage(ctx context.Context, request oapi.AnalyzeImageRequestObject) (oapi.AnalyzeImageResponseObject, error) {
	log := logger.FromContext(ctx)

	filename := lo.FromPtr(request.Body.Filename)
	if strings.TrimSpace(filename) == "" {
		return oapi.AnalyzeImage400JSONResponse{Error: "Filename required"}, nil
	}

	meta, err := s.ImageManager.Analyze(ctx, filename)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrNotFound):
			return oapi.AnalyzeImage404JSONResponse{Error: "File not found"}, nil
		case errors.Is(err, images.ErrInvalidReference):
			return oapi.AnalyzeImage400JSONResponse{Error: "Invalid filename"}, nil
		default:
			log.ErrorContext(ctx, "failed to analyze image", "error", err, "filename", filename)
			return oapi.AnalyzeImage500JSONResponse{Error: err.Error()}, nil
		}
	}

	return oapi.AnalyzeImage200JSONResponse(imageToOAPI(*meta)), nil
}

// CompressImage reports the compression target for a stored image
func (s *ApiService) CompressImage(ctx context.Context, request oapi.CompressImageRequestObject) (oapi.CompressImageResponseObject, error) {
	log := logger.FromContext(ctx)

	filename := lo.FromPtr(request.Body.Filename)
	if strings.TrimSpace(filename) == "" {
		return oapi.CompressImage400JSONResponse{Error: "Filename required"}, nil
	}

	result, err := s.OperationsManager.Compress(ctx, filename)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrNotFound):
			return oapi.CompressImage404JSONResponse{Error: "File not found"}, nil
		case errors.Is(err, images.ErrInvalidReference):
			return oapi.CompressImage400JSONResponse{Error: "Invalid filename"}, nil
		case errors.Is(err, convert.ErrQueueClosed):
			return oapi.CompressImage503JSONResponse{Error: "Conversion queue is shut down"}, nil
		default:
			log.ErrorContext(ctx, "failed to compress image", "error", err, "filename", filename)
			return oapi.CompressImage500JSONResponse{Error: err.Error()}, nil
		}
	}

	if result.JobID != "" {
		log.InfoContext(ctx, "compression job accepted", "filename", filename, "job_id", result.JobID)
	}
	return oapi.CompressImage200JSONResponse(resultToOAPI(*result)), nil
}

func imageToOAPI(meta images.ImageMetadata) oapi.ImageMetadata {
	return oapi.ImageMetadata{
		Filename: meta.Filename,
		Size:     meta.Size,
		SizeMb:   meta.SizeMB,
		Created:  meta.Created,
		Modified: meta.Modified,
		Sha256:   meta.SHA256,
		Blake3:   lo.EmptyableToPtr(meta.BLAKE3),
		Type:     oapi.ImageMetadataType(meta.Type),
	}
}
