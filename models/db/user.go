package dbmodels

import (
	"job-portal-backend/models"

	"github.com/lib/pq"
)

type User struct {
	BaseModel
	Email         string          `gorm:"type:varchar(255);uniqueIndex"`
	Password      string          `gorm:"type:varchar(255)"`
	Type          models.UserType `gorm:"type:varchar(20)"`
	Name          string          `gorm:"type:varchar(255)"`
	ContactNumber string          `gorm:"type:varchar(50)"`
	Bio           string
	Education     string
	Skills        pq.StringArray `gorm:"type:text[]"`
	Resume        string
	Profile       string
}
