// internal/email/mailer/mailer.go
package mailer

import "github.com/dangerclosesec/sarpa/internal/email"

// Sender is the part of email.Service the mailers need.
type Sender interface {
	SendEmail(data email.EmailData) error
}
