// Package receipt turns one application record into a print-ready
// verification document. Rendering is a pure function of the record and
// the generation time, so the same inputs always produce the same bytes.
package receipt

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/mpcportal/admissions/internal/server/models"
)

//go:embed template.html
var templateFS embed.FS

var receiptTemplate = template.Must(template.ParseFS(templateFS, "template.html"))

// Field is one labelled value in a receipt section.
type Field struct {
	Label string
	Value string
}

// SchoolRow is one line of the institutional history table.
type SchoolRow struct {
	Grade string
	Name  string
	Place string
}

// Receipt is the view model the template renders. All values are already
// formatted; empty record fields show as "N/A".
type Receipt struct {
	RegistrationNumber string
	Status             string
	Identity           []Field
	SocioEconomic      []Field
	Academic           []Field
	Schools            []SchoolRow
	PhotoURL           string
	SignatureURL       string
	GeneratedAt        string
	DigitalHash        string
}

// Filename suggests the download name derived from the registration number.
func (r *Receipt) Filename() string {
	return fmt.Sprintf("EAPCET_Receipt_%s.html", r.RegistrationNumber)
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

func digitalHash(id string) string {
	h := strings.ToUpper(id)
	if len(h) > 16 {
		h = h[:16]
	}
	return h
}

var gradeLabels = map[int]string{6: "6th", 7: "7th", 8: "8th", 9: "9th", 10: "10th"}

// Build assembles the view model for one record at the given time.
func Build(app *models.Application, now time.Time) *Receipt {
	r := &Receipt{
		RegistrationNumber: app.RegistrationNumber,
		Status:             string(app.Status),
		Identity: []Field{
			{"Candidate Name", orNA(app.StudentName)},
			{"Date of Birth", orNA(app.DOB)},
			{"Father's Name", orNA(app.FatherName)},
			{"Mother's Name", orNA(app.MotherName)},
			{"Aadhaar Number", orNA(app.Aadhaar)},
			{"APAAR Digital ID", orNA(app.Apaar)},
			{"Primary Mobile", orNA(app.MobileNumber)},
			{"Alternate Contact", orNA(app.AlternateMobileNumber)},
		},
		SocioEconomic: []Field{
			{"Social Category", orNA(app.Category)},
			{"Sub-Caste Details", orNA(app.SubCaste)},
			{"Ration Card #", orNA(app.RationCard)},
			{"Income Certificate", orNA(app.IncomeCertificate)},
			{"Caste/EWS Cert", orNA(app.CasteEWSCertificate)},
		},
		Academic: []Field{
			{"10th Hall Ticket", orNA(app.TenthHallTicket)},
			{"Practical Ticket", orNA(app.PracticalHallTicket)},
		},
		PhotoURL:     app.PhotoURL,
		SignatureURL: app.SignatureURL,
		GeneratedAt:  now.Format("02 Jan 2006, 15:04:05 MST"),
		DigitalHash:  digitalHash(app.ID),
	}
	if app.JEEMainsNo != "" {
		r.Academic = append(r.Academic, Field{"JEE Mains Number", app.JEEMainsNo})
	}
	for _, s := range app.Schools() {
		r.Schools = append(r.Schools, SchoolRow{
			Grade: gradeLabels[s.Grade],
			Name:  orNA(s.Name),
			Place: orNA(s.Place),
		})
	}
	return r
}

// Render writes the document for this view model.
func (r *Receipt) Render(w io.Writer) error {
	if err := receiptTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("rendering receipt: %w", err)
	}
	return nil
}

// RenderHTML writes the receipt document for one record.
func RenderHTML(w io.Writer, app *models.Application, now time.Time) error {
	return Build(app, now).Render(w)
}
