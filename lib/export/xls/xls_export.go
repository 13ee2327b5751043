package xlsexport

import (
	"bytes"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dateLayout = "2006-01-02"

type column struct {
	header string
	width  float64
	value  func(rec dbmodels.Application) interface{}
}

var applicationColumns = []column{
	{header: "Applicant", width: 25, value: func(rec dbmodels.Application) interface{} {
		if rec.User == nil {
			return ""
		}
		return rec.User.Name
	}},
	{header: "Email", width: 30, value: func(rec dbmodels.Application) interface{} {
		if rec.User == nil {
			return ""
		}
		return rec.User.Email
	}},
	{header: "Status", width: 14, value: func(rec dbmodels.Application) interface{} {
		return rec.Status.ToHuman()
	}},
	{header: "Applied on", width: 14, value: func(rec dbmodels.Application) interface{} {
		return rec.CreatedAt.Format(dateLayout)
	}},
	{header: "Date of joining", width: 16, value: func(rec dbmodels.Application) interface{} {
		if rec.DateOfJoining == nil {
			return ""
		}
		return rec.DateOfJoining.Format(dateLayout)
	}},
	{header: "Statement of purpose", width: 60, value: func(rec dbmodels.Application) interface{} {
		return rec.Sop
	}},
}

func applicationHeaders() []string {
	headers := make([]string, 0, len(applicationColumns))
	for _, col := range applicationColumns {
		headers = append(headers, col.header)
	}
	return headers
}

// ExportApplicationList writes one sheet named after the job: a header row and one row per application.
func (i impl) ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := sheetName(jobTitle)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	widths := make([]float64, 0, len(applicationColumns))
	header := make([]interface{}, 0, len(applicationColumns))
	for _, col := range applicationColumns {
		widths = append(widths, col.width)
		header = append(header, col.header)
	}
	if err := setColumnWidths(f, sheet, widths); err != nil {
		return nil, errors.Wrap(err, "failed to size xlsx columns")
	}
	headerStyle, err := newRowStyle(f, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create xlsx style")
	}
	if err = writeRow(f, sheet, 1, header, headerStyle); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	dataStyle, err := newRowStyle(f, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create xlsx style")
	}
	for idx, rec := range list {
		values := make([]interface{}, 0, len(applicationColumns))
		for _, col := range applicationColumns {
			values = append(values, col.value(rec))
		}
		if err = writeRow(f, sheet, idx+2, values, dataStyle); err != nil {
			return nil, errors.Wrapf(err, "failed to write application %v", rec.ID)
		}
	}
	return f.WriteToBuffer()
}

// sheetName fits the title into the 31 character limit of a sheet name.
func sheetName(jobTitle string) string {
	name := []rune(jobTitle)
	for idx, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			name[idx] = ' '
		}
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if len(name) == 0 {
		return "Applications"
	}
	return string(name)
}
