package searchquery

import (
	"job-portal-backend/lib/utils/helpers"
	"job-portal-backend/models"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// sortColumns maps the public sort keys to job columns.
var sortColumns = map[string]string{
	"salary":        "jobs.salary",
	"duration":      "jobs.duration",
	"deadline":      "jobs.deadline",
	"dateOfPosting": "jobs.created_at",
}

type Sort struct {
	Column string
	Desc   bool
}

// Query describes a job search. Every filled field narrows the result,
// an empty field imposes no constraint.
type Query struct {
	Title         string
	Skills        []string
	JobType       models.JobType
	DurationBelow *int
	SalaryMin     *int
	SalaryMax     *int
	Sort          *Sort
	MyJobs        bool
	RecruiterID   string // owner for MyJobs, filled from the caller
}

// Build turns request parameters into a Query. Unknown parameters and
// malformed values are ignored.
func Build(params map[string]string) Query {
	q := Query{}
	q.Title = strings.TrimSpace(params["q"])
	q.Skills = helpers.SplitList(params["skills"])
	if jobType := models.JobType(strings.TrimSpace(params["jobType"])); jobType.Validate() == nil {
		q.JobType = jobType
	}
	q.DurationBelow = parsePositiveInt(params["duration"])
	q.SalaryMin = parsePositiveInt(params["salaryMin"])
	q.SalaryMax = parsePositiveInt(params["salaryMax"])
	if column, ok := sortColumns[strings.TrimSpace(params["sort"])]; ok {
		q.Sort = &Sort{
			Column: column,
			Desc:   strings.EqualFold(strings.TrimSpace(params["order"]), "desc"),
		}
	}
	q.MyJobs = parseBool(params["myjobs"])
	return q
}

// Apply renders the query onto a jobs statement.
func (q Query) Apply(tx *gorm.DB) *gorm.DB {
	if q.MyJobs && q.RecruiterID != "" {
		tx = tx.Where("jobs.recruiter_id = ?", q.RecruiterID)
	} else {
		tx = tx.Where("jobs.status = ?", models.JobStatusOpen)
	}
	if q.Title != "" {
		tx = tx.Where("LOWER(jobs.title) like ?", "%"+strings.ToLower(q.Title)+"%")
	}
	if len(q.Skills) != 0 {
		tx = tx.Where("jobs.skills @> ?", pq.StringArray(q.Skills))
	}
	if q.JobType != "" {
		tx = tx.Where("jobs.job_type = ?", q.JobType)
	}
	if q.DurationBelow != nil {
		tx = tx.Where("jobs.duration < ?", *q.DurationBelow)
	}
	if q.SalaryMin != nil {
		tx = tx.Where("jobs.salary >= ?", *q.SalaryMin)
	}
	if q.SalaryMax != nil {
		tx = tx.Where("jobs.salary <= ?", *q.SalaryMax)
	}
	if q.Sort != nil {
		if q.Sort.Desc {
			tx = tx.Order(q.Sort.Column + " desc")
		} else {
			tx = tx.Order(q.Sort.Column + " asc")
		}
	}
	return tx
}

func parsePositiveInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
