package service

import (
	"context"
	"fmt"
	"time"

	"edl-backend/internal/document"
	"edl-backend/internal/domain"
)

// DocumentDispatcher delivers a synthesized report document to the
// client's recorded email address. It is an optional capability: the
// completion workflow treats its absence as a first-class
// generated-not-sent mode.
type DocumentDispatcher struct {
	sender EmailSender
	clock  func() time.Time
}

func NewDocumentDispatcher(sender EmailSender) *DocumentDispatcher {
	return &DocumentDispatcher{sender: sender, clock: time.Now}
}

// Dispatch sends the short email body with the full document attached.
// The attachment filename encodes direction, registration and the current
// date so repeated generations stay traceable without collision.
func (d *DocumentDispatcher) Dispatch(ctx context.Context, snap *domain.Snapshot, doc []byte) (string, error) {
	label := document.DirectionLabel(snap.Report.Direction)
	subject := fmt.Sprintf("Vehicle condition report (%s) - %s", label, snap.Vehicle.Registration)
	filename := fmt.Sprintf("EDL_%s_%s_%s.html", label, snap.Vehicle.Registration, d.clock().UTC().Format("2006-01-02"))

	return d.sender.Send(ctx, snap.Client.Email, snap.Client.FullName(), subject, emailBody(snap, label), Attachment{
		Filename: filename,
		Content:  doc,
	})
}

// emailBody is the short notification distinct from the attached
// document.
func emailBody(snap *domain.Snapshot, label string) string {
	agencyLine := snap.Agency.Name
	if snap.Agency.Address != "" {
		agencyLine += " | " + snap.Agency.Address
	}
	if snap.Agency.Phone != "" {
		agencyLine += " | " + snap.Agency.Phone
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1e40af; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f8fafc; }
    .footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Vehicle condition report (%s)</h1>
    </div>
    <div class="content">
      <p>Hello %s,</p>
      <p>Please find attached the %s condition report for your rental of the vehicle <strong>%s %s</strong> (%s).</p>
      <p>This document summarizes everything recorded during the vehicle inspection.</p>
      <p>Thank you for your trust.</p>
      <p>Best regards,<br>%s</p>
    </div>
    <div class="footer">
      <p>%s</p>
    </div>
  </div>
</body>
</html>`,
		label,
		snap.Client.FullName(),
		label,
		snap.Vehicle.Brand, snap.Vehicle.Model, snap.Vehicle.Registration,
		snap.Agency.Name,
		agencyLine,
	)
}
