package dbmodels

import (
	"job-portal-backend/models"
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	RecruiterID   string `gorm:"type:varchar(36);index"`
	Recruiter     *User  `gorm:"foreignKey:RecruiterID"`
	Title         string `gorm:"type:varchar(255)"`
	MaxApplicants int
	MaxPositions  int
	Deadline      time.Time
	Skills        pq.StringArray `gorm:"type:text[]"`
	JobType       models.JobType `gorm:"type:varchar(50)"`
	Duration      int            // months, 0 means no fixed term
	Salary        int
	Status        models.JobStatus `gorm:"type:varchar(20);index"`
}
