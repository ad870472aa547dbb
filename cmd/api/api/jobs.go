package api

import (
	"context"
	"errors"

	"github.com/onkernel/diskprobe/lib/convert"
	"github.com/onkernel/diskprobe/lib/logger"
	"github.com/onkernel/diskprobe/lib/oapi"
)

// GetJob returns the status of a conversion job
func (s *ApiService) GetJob(ctx context.Context, request oapi.GetJobRequestObject) (oapi.GetJobResponseObject, error) {
	if s.JobQueue == nil {
		return oapi.GetJob404JSONResponse{Error: "Job not found"}, nil
	}

	job, err := s.JobQueue.Get(request.Id)
	if err != nil {
		if errors.Is(err, convert.ErrJobNotFound) {
			return oapi.GetJob404JSONResponse{Error: "Job not found"}, nil
		}
		return nil, err
	}
	return oapi.GetJob200JSONResponse(jobToOAPI(*job)), nil
}

// CancelJob cancels a pending or running conversion job
func (s *ApiService) CancelJob(ctx context.Context, request oapi.CancelJobRequestObject) (oapi.CancelJobResponseObject, error) {
	if s.JobQueue == nil {
		return oapi.CancelJob404JSONResponse{Error: "Job not found"}, nil
	}

	job, err := s.JobQueue.Cancel(request.Id)
	if err != nil {
		switch {
		case errors.Is(err, convert.ErrJobNotFound):
			return oapi.CancelJob404JSONResponse{Error: "Job not found"}, nil
		case errors.Is(err, convert.ErrJobFinished):
			return oapi.CancelJob409JSONResponse{Error: "Job already finished"}, nil
		default:
			return nil, err
		}
	}

	logger.FromContext(ctx).InfoContext(ctx, "conversion job cancel requested", "job_id", request.Id)
	return oapi.CancelJob202JSONResponse(jobToOAPI(*job)), nil
}

func jobToOAPI(job convert.Job) oapi.Job {
	return oapi.Job{
		Id:            job.ID,
		Source:        job.Source,
		Output:        job.Output,
		Format:        oapi.JobFormat(job.Format),
		Status:        oapi.JobStatus(job.Status),
		QueuePosition: job.QueuePosition,
		Error:         job.Error,
		CreatedAt:     job.CreatedAt,
		StartedAt:     job.StartedAt,
		FinishedAt:    job.FinishedAt,
	}
}
