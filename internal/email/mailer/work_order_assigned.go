// internal/email/mailer/work_order_assigned.go
package mailer

import (
	"strings"

	"github.com/dangerclosesec/sarpa/internal/email"
)

// WorkOrderAssignedTemplateData contains data for the work_order_assigned template
type WorkOrderAssignedTemplateData struct {
	AssigneeName string
	CompanyName  string
	Title        string
	Priority     string
	DueDate      string
	Description  string
	Link         string
}

// SendWorkOrderAssignedEmail tells a user that a work order is now theirs.
func SendWorkOrderAssignedEmail(s Sender, to string, data WorkOrderAssignedTemplateData) error {
	subject := "Work order assigned: " + data.Title
	if p := strings.ToLower(data.Priority); p == "high" {
		subject = "[High priority] " + subject
	}

	return s.SendEmail(email.EmailData{
		To:           to,
		Subject:      subject,
		TemplateName: "work_order_assigned",
		TemplateData: data,
	})
}
