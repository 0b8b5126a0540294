// internal/email/sendgrid.go
package email

import (
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridClient is the subset of *sendgrid.Client the service calls.
type sendgridClient interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// sendgridMessage builds a v3 message with the plaintext body first, as the
// API requires. The template name is attached as a category.
func sendgridMessage(data EmailData, htmlContent, textContent string) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(data.FromName, data.From))
	m.Subject = data.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", data.To))
	m.AddPersonalizations(p)

	m.AddContent(
		mail.NewContent("text/plain", textContent),
		mail.NewContent("text/html", htmlContent),
	)
	if data.TemplateName != "" {
		m.AddCategories(data.TemplateName)
	}
	return m
}

func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	resp, err := s.sendgridClient.Send(sendgridMessage(data, htmlContent, textContent))
	if err != nil {
		return fmt.Errorf("sending %s via sendgrid: %w", data.TemplateName, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected %s for %s: status %d: %s", data.TemplateName, data.To, resp.StatusCode, resp.Body)
	}
	return nil
}
