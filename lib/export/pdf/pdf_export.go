package pdfexport

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type OfferData struct {
	ApplicantName string
	RecruiterName string
	JobTitle      string
	JobType       string
	Salary        int
	Duration      int // months, 0 means no fixed term
	DateOfJoining time.Time
	IssuedAt      time.Time
}

func (d OfferData) Term() string {
	if d.Duration == 0 {
		return "permanent"
	}
	return fmt.Sprintf("%d months", d.Duration)
}

const offerTemplate = `<b>Offer of employment</b><br><br>
Dear {{.ApplicantName}},<br><br>
We are pleased to offer you the position of <b>{{.JobTitle}}</b> ({{.JobType}}, {{.Term}}).<br>
Your monthly salary will be {{.Salary}}.<br>
Your date of joining is {{.DateOfJoining.Format "January 2, 2006"}}.<br><br>
Sincerely,<br>
{{.RecruiterName}}`

// GenerateOffer renders the offer letter with the core fonts, so no font files are needed.
func GenerateOffer(data OfferData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOffer panic recover: %v", r)
		}
	}()
	tpl, err := template.New("offer_body").Parse(offerTemplate)
	if err != nil {
		return nil, err
	}
	body := new(bytes.Buffer)
	if err = tpl.Execute(body, data); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Offer letter", true)
	pdf.SetCreationDate(data.IssuedAt)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, tr("Issued "+data.IssuedAt.Format("2006-01-02")), "", 1, "R", false, 0, "")
	pdf.SetY(40)
	pdf.SetFont("Helvetica", "", 12)
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt*1.5, tr(body.String()))
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
