package searchquery

import (
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	sqlDB, _, err := sqlmock.New()
	require.Nil(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.Nil(t, err)
	return db
}

func render(t *testing.T, q Query) *gorm.Statement {
	var list []dbmodels.Job
	return q.Apply(dryRunDB(t).Model(&dbmodels.Job{})).Find(&list).Statement
}

func TestBuild(t *testing.T) {
	t.Run(`empty params check`, func(t *testing.T) {
		q := Build(map[string]string{})
		require.Equal(t, Query{}, q)
	})

	t.Run(`recognized params check`, func(t *testing.T) {
		q := Build(map[string]string{
			"q":         " Backend ",
			"skills":    "go, sql,,go",
			"jobType":   "Part Time",
			"duration":  "6",
			"salaryMin": "1000",
			"salaryMax": "5000",
			"sort":      "salary",
			"order":     "DESC",
			"myjobs":    "1",
		})
		require.Equal(t, "Backend", q.Title)
		require.Equal(t, []string{"go", "sql"}, q.Skills)
		require.Equal(t, models.JobTypePartTime, q.JobType)
		require.Equal(t, 6, *q.DurationBelow)
		require.Equal(t, 1000, *q.SalaryMin)
		require.Equal(t, 5000, *q.SalaryMax)
		require.Equal(t, &Sort{Column: "jobs.salary", Desc: true}, q.Sort)
		require.True(t, q.MyJobs)
	})

	t.Run(`unknown and malformed params are ignored`, func(t *testing.T) {
		q := Build(map[string]string{
			"page":      "2",
			"jobType":   "Internship",
			"duration":  "abc",
			"salaryMin": "-5",
			"salaryMax": "0",
			"sort":      "rating",
			"myjobs":    "maybe",
		})
		require.Equal(t, Query{}, q)
	})

	t.Run(`sort order defaults to asc`, func(t *testing.T) {
		q := Build(map[string]string{"sort": "dateOfPosting"})
		require.Equal(t, &Sort{Column: "jobs.created_at", Desc: false}, q.Sort)
	})
}

func TestApply(t *testing.T) {
	t.Run(`no filters lists open jobs in store order`, func(t *testing.T) {
		stmt := render(t, Query{})
		sql := stmt.SQL.String()
		require.Contains(t, sql, "jobs.status = $1")
		require.NotContains(t, sql, "ORDER BY")
		require.Equal(t, []interface{}{models.JobStatusOpen}, stmt.Vars)
	})

	t.Run(`all filters are conjunctive`, func(t *testing.T) {
		q := Build(map[string]string{
			"q":         "Dev",
			"skills":    "go,sql",
			"jobType":   "Full Time",
			"duration":  "3",
			"salaryMin": "100",
			"salaryMax": "900",
			"sort":      "deadline",
		})
		stmt := render(t, q)
		sql := stmt.SQL.String()
		require.Contains(t, sql, "LOWER(jobs.title) like $2")
		require.Contains(t, sql, "jobs.skills @> $3")
		require.Contains(t, sql, "jobs.job_type = $4")
		require.Contains(t, sql, "jobs.duration < $5")
		require.Contains(t, sql, "jobs.salary >= $6")
		require.Contains(t, sql, "jobs.salary <= $7")
		require.Contains(t, sql, "ORDER BY jobs.deadline asc")
		require.Contains(t, stmt.Vars, "%dev%")
		require.Contains(t, stmt.Vars, pq.StringArray{"go", "sql"})
	})

	t.Run(`my jobs drops the open status filter`, func(t *testing.T) {
		q := Build(map[string]string{"myjobs": "true"})
		q.RecruiterID = "recruiter-1"
		stmt := render(t, q)
		sql := stmt.SQL.String()
		require.Contains(t, sql, "jobs.recruiter_id = $1")
		require.NotContains(t, sql, "jobs.status")
	})

	t.Run(`my jobs without recruiter behaves as a public search`, func(t *testing.T) {
		q := Build(map[string]string{"myjobs": "true"})
		stmt := render(t, q)
		require.Contains(t, stmt.SQL.String(), "jobs.status = $1")
	})
}
