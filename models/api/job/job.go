package jobapimodels

import (
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type JobData struct {
	Title         string         `json:"title"`
	MaxApplicants int            `json:"maxApplicants"`
	MaxPositions  int            `json:"maxPositions"`
	Deadline      time.Time      `json:"deadline"`
	SkillSets     []string       `json:"skillsets"`
	JobType       models.JobType `json:"jobType"`
	Duration      int            `json:"duration"` // months, 0 means no fixed term
	Salary        int            `json:"salary"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("title is required")
	}
	if j.MaxApplicants <= 0 {
		return errors.New("maxApplicants must be positive")
	}
	if j.MaxPositions <= 0 {
		return errors.New("maxPositions must be positive")
	}
	if j.MaxPositions > j.MaxApplicants {
		return errors.New("maxPositions must not exceed maxApplicants")
	}
	if j.Deadline.IsZero() {
		return errors.New("deadline is required")
	}
	if err := j.JobType.Validate(); err != nil {
		return err
	}
	if j.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	if j.Salary < 0 {
		return errors.New("salary must not be negative")
	}
	return nil
}

func (j JobData) ToDbModel(recruiterID string) dbmodels.Job {
	return dbmodels.Job{
		RecruiterID:   recruiterID,
		Title:         strings.TrimSpace(j.Title),
		MaxApplicants: j.MaxApplicants,
		MaxPositions:  j.MaxPositions,
		Deadline:      j.Deadline,
		Skills:        j.SkillSets,
		JobType:       j.JobType,
		Duration:      j.Duration,
		Salary:        j.Salary,
		Status:        models.JobStatusOpen,
	}
}

// JobUpdate carries the job fields an owner may change. Absent fields stay as they are.
type JobUpdate struct {
	MaxApplicants *int       `json:"maxApplicants"`
	MaxPositions  *int       `json:"maxPositions"`
	Deadline      *time.Time `json:"deadline"`
}

func (j JobUpdate) Validate() error {
	if j.MaxApplicants != nil && *j.MaxApplicants <= 0 {
		return errors.New("maxApplicants must be positive")
	}
	if j.MaxPositions != nil && *j.MaxPositions <= 0 {
		return errors.New("maxPositions must be positive")
	}
	return nil
}

// ToUpdMap builds the column update. Moving the deadline into the future reopens the job.
func (j JobUpdate) ToUpdMap(now time.Time) map[string]interface{} {
	updMap := map[string]interface{}{}
	if j.MaxApplicants != nil {
		updMap["max_applicants"] = *j.MaxApplicants
	}
	if j.MaxPositions != nil {
		updMap["max_positions"] = *j.MaxPositions
	}
	if j.Deadline != nil {
		updMap["deadline"] = *j.Deadline
		if j.Deadline.After(now) {
			updMap["status"] = models.JobStatusOpen
		}
	}
	return updMap
}

type JobView struct {
	ID            string           `json:"id"`
	RecruiterID   string           `json:"recruiterId"`
	Title         string           `json:"title"`
	MaxApplicants int              `json:"maxApplicants"`
	MaxPositions  int              `json:"maxPositions"`
	DateOfPosting time.Time        `json:"dateOfPosting"`
	Deadline      time.Time        `json:"deadline"`
	SkillSets     []string         `json:"skillsets"`
	JobType       models.JobType   `json:"jobType"`
	Duration      int              `json:"duration"`
	Salary        int              `json:"salary"`
	Status        models.JobStatus `json:"status"`
}

func JobConvert(rec dbmodels.Job) JobView {
	skills := []string(rec.Skills)
	if skills == nil {
		skills = []string{}
	}
	return JobView{
		ID:            rec.ID,
		RecruiterID:   rec.RecruiterID,
		Title:         rec.Title,
		MaxApplicants: rec.MaxApplicants,
		MaxPositions:  rec.MaxPositions,
		DateOfPosting: rec.CreatedAt,
		Deadline:      rec.Deadline,
		SkillSets:     skills,
		JobType:       rec.JobType,
		Duration:      rec.Duration,
		Salary:        rec.Salary,
		Status:        rec.Status,
	}
}
