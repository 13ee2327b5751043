package listingfilter

import (
	"context"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
)

// Ledger is the part of the application store the filter reads.
type Ledger interface {
	ActiveJobIDs(ctx context.Context, userID string, jobIDs []string) (map[string]struct{}, error)
}

// Filter drops the jobs the applicant already holds an active application for.
// The order of the remaining jobs is kept.
func Filter(ctx context.Context, ledger Ledger, applicantID string, jobs []dbmodels.Job) ([]dbmodels.Job, error) {
	result := make([]dbmodels.Job, 0, len(jobs))
	if len(jobs) == 0 {
		return result, nil
	}
	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}
	applied, err := ledger.ActiveJobIDs(ctx, applicantID, jobIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter job listing")
	}
	for _, job := range jobs {
		if _, ok := applied[job.ID]; ok {
			continue
		}
		result = append(result, job)
	}
	return result, nil
}
