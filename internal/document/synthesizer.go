// Package document renders a completed condition report into a
// self-contained HTML document. Rendering is a pure function of the
// snapshot and the caller's clock: identical inputs produce identical
// bytes.
package document

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"edl-backend/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var severityLabels = map[domain.DamageSeverity]string{
	domain.SeverityMinor:    "Minor",
	domain.SeverityModerate: "Moderate",
	domain.SeveritySevere:   "Severe",
}

// cleanlinessLabels is indexed by the 1-5 cleanliness level. Index 0 is
// unused; a null or out-of-range level renders as "Not evaluated".
var cleanlinessLabels = [6]string{"", "Very dirty", "Dirty", "Acceptable", "Clean", "Spotless"}

const dateLayout = "02 Jan 2006 15:04"

type Synthesizer struct {
	tmpl    *template.Template
	printer *message.Printer
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		tmpl:    template.Must(template.New("report").Parse(reportTemplate)),
		printer: message.NewPrinter(language.English),
	}
}

// Render produces the report document. generatedAt comes from the
// caller's clock; it is the only input besides the snapshot.
func (s *Synthesizer) Render(snap *domain.Snapshot, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, s.buildView(snap, generatedAt)); err != nil {
		return nil, fmt.Errorf("failed to render report document: %w", err)
	}
	return buf.Bytes(), nil
}

// DirectionLabel returns the lowercase label used in subjects, filenames
// and email bodies.
func DirectionLabel(d domain.Direction) string {
	if d == domain.DirectionReturn {
		return "return"
	}
	return "departure"
}

// SeverityLabel maps a damage severity to its display label. Unknown
// severities should not occur, but render as a placeholder rather than
// failing.
func SeverityLabel(s domain.DamageSeverity) string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// CleanlinessLabel maps a 1-5 cleanliness level to its ordinal label.
func CleanlinessLabel(level *int32) string {
	if level == nil || *level < 1 || *level > 5 {
		return "Not evaluated"
	}
	return cleanlinessLabels[*level]
}

type reportView struct {
	Title        string
	AgencyName   string
	AgencyLine   string
	ReportDate   string
	ClientName   string
	ClientEmail  string
	ClientPhone  string
	Registration string
	VehicleLine  string
	DepartureAt  string
	ReturnAt     string
	AgentName    string
	Reference    string
	Mileage      string
	FuelLevel    int32
	Cleanliness  string
	Comments     string
	Damages      []damageView
	Photos       []photoView
	ClientSigURL string
	AgentSigURL  string
	GeneratedAt  string
}

type damageView struct {
	Location    string
	Description string
	Severity    string
	CSSClass    string
	IsNew       string
}

type photoView struct {
	URL         string
	Description string
}

func (s *Synthesizer) buildView(snap *domain.Snapshot, generatedAt time.Time) reportView {
	report := snap.Report

	view := reportView{
		Title:        "VEHICLE CONDITION REPORT - " + strings.ToUpper(DirectionLabel(report.Direction)),
		AgencyName:   snap.Agency.Name,
		AgencyLine:   agencyLine(snap.Agency),
		ReportDate:   report.CreatedOn.Format(dateLayout),
		ClientName:   snap.Client.FullName(),
		ClientEmail:  snap.Client.Email,
		ClientPhone:  snap.Client.Phone,
		Registration: snap.Vehicle.Registration,
		VehicleLine:  vehicleLine(snap.Vehicle),
		DepartureAt:  snap.Rental.DepartureDate.Format(dateLayout),
		ReturnAt:     snap.Rental.ReturnDate.Format(dateLayout),
		AgentName:    report.AgentName,
		Reference:    snap.Rental.Reference(),
		Cleanliness:  cleanlinessLine(report.CleanlinessLevel),
		Comments:     report.Comments,
		ClientSigURL: report.ClientSignatureURL,
		AgentSigURL:  report.AgentSignatureURL,
		GeneratedAt:  generatedAt.Format(dateLayout),
	}
	if view.AgentName == "" {
		view.AgentName = "Not specified"
	}
	if view.Comments == "" {
		view.Comments = "No comments"
	}
	if report.Mileage != nil {
		view.Mileage = s.printer.Sprintf("%d km", *report.Mileage)
	} else {
		view.Mileage = "Not recorded"
	}
	if report.FuelLevel != nil {
		view.FuelLevel = *report.FuelLevel
	}

	for _, d := range snap.Damages {
		isNew := "No"
		if d.IsNew {
			isNew = "Yes"
		}
		view.Damages = append(view.Damages, damageView{
			Location:    d.Location,
			Description: d.Description,
			Severity:    SeverityLabel(d.Severity),
			CSSClass:    "severity-" + string(d.Severity),
			IsNew:       isNew,
		})
	}
	for _, p := range snap.Photos {
		desc := p.Description
		if desc == "" {
			desc = "Report photo"
		}
		view.Photos = append(view.Photos, photoView{URL: p.PhotoURL, Description: desc})
	}
	return view
}

func cleanlinessLine(level *int32) string {
	n := int32(0)
	if level != nil {
		n = *level
	}
	return fmt.Sprintf("%s (%d/5)", CleanlinessLabel(level), n)
}

func vehicleLine(v domain.Vehicle) string {
	line := v.Brand + " " + v.Model
	if v.Color != "" {
		line += " - " + v.Color
	}
	return line
}

func agencyLine(a domain.Agency) string {
	line := a.Name
	if a.Address != "" {
		line += " - " + a.Address
	}
	if a.Phone != "" {
		line += " - " + a.Phone
	}
	return line
}
