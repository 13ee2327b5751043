package xlsexport

import (
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportApplicationList(t *testing.T) {
	NewHandler()
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	list := []dbmodels.Application{
		{
			BaseModel:     dbmodels.BaseModel{ID: "a1", CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
			User:          &dbmodels.User{Name: "Jane Doe", Email: "jane@mail.io"},
			Status:        models.ApplicationStatusAccepted,
			Sop:           "I like Go",
			DateOfJoining: &joined,
		},
		{
			BaseModel: dbmodels.BaseModel{ID: "a2", CreatedAt: time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)},
			Status:    models.ApplicationStatusApplied,
		},
	}

	buf, err := Instance.ExportApplicationList("Backend: Go/SQL", list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	sheet := "Backend  Go SQL"
	require.Equal(t, []string{sheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Applicant", "Email", "Status", "Applied on", "Date of joining", "Statement of purpose"}, rows[0])
	require.Equal(t, applicationHeaders(), rows[0])
	require.Equal(t, []string{"Jane Doe", "jane@mail.io", "Accepted", "2024-01-15", "2024-03-01", "I like Go"}, rows[1])
	require.Equal(t, []string{"", "", "Applied", "2024-01-16"}, rows[2])
}

func TestSheetName(t *testing.T) {
	require.Equal(t, "Applications", sheetName(""))
	require.Len(t, []rune(sheetName("A very long job title that does not fit")), 31)
}

func TestExportStyles(t *testing.T) {
	NewHandler()
	buf, err := Instance.ExportApplicationList("Backend", []dbmodels.Application{{Sop: "long text"}})
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	width, err := f.GetColWidth("Backend", "F")
	require.Nil(t, err)
	require.EqualValues(t, 60, width)

	headerStyleID, err := f.GetCellStyle("Backend", "A1")
	require.Nil(t, err)
	headerStyle, err := f.GetStyle(headerStyleID)
	require.Nil(t, err)
	require.True(t, headerStyle.Font.Bold)

	dataStyleID, err := f.GetCellStyle("Backend", "F2")
	require.Nil(t, err)
	dataStyle, err := f.GetStyle(dataStyleID)
	require.Nil(t, err)
	require.False(t, dataStyle.Font.Bold)
	require.True(t, dataStyle.Alignment.WrapText)
}
