package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"edl-backend/internal/domain"
	"edl-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridSender returns an EmailSender backed by the SendGrid v3 API.
func NewSendGridSender(apiKey, fromEmail, fromName string) EmailSender {
	return &sendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridSender) Send(ctx context.Context, to, toName, subject, htmlBody string, attachment Attachment) (string, error) {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.fromName, s.fromEmail))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(toName, to))
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/html", htmlBody))

	if attachment.Filename != "" {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(attachment.Content))
		att.SetType("text/html")
		att.SetFilename(attachment.Filename)
		att.SetDisposition("attachment")
		message.AddAttachment(att)
	}

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	response, err := client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return "", &domain.DeliveryError{Message: err.Error()}
	}
	if response.StatusCode >= 400 {
		return "", &domain.DeliveryError{
			Message: fmt.Sprintf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body),
		}
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}
