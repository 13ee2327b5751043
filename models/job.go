package models

import "github.com/pkg/errors"

type JobType string

const (
	JobTypeFullTime     JobType = "Full Time"
	JobTypePartTime     JobType = "Part Time"
	JobTypeWorkFromHome JobType = "Work From Home"
)

func (t JobType) Validate() error {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeWorkFromHome:
		return nil
	}
	return errors.New("unknown job type")
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)
