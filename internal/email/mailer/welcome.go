// internal/email/mailer/welcome.go
package mailer

import "github.com/dangerclosesec/sarpa/internal/email"

// WelcomeTemplateData contains data for the welcome template
type WelcomeTemplateData struct {
	Name        string
	CompanyName string
	Link        string
}

// SendWelcomeEmail greets the first user of a newly registered company.
func SendWelcomeEmail(s Sender, to string, data WelcomeTemplateData) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		Subject:      "Welcome to Sarpa CMMS",
		TemplateName: "welcome",
		TemplateData: data,
	})
}
