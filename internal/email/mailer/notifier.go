// internal/email/mailer/notifier.go
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/google/uuid"
)

// Notifier sends the application's notifications as email.
type Notifier struct {
	sender    Sender
	companies repository.CompanyRepositoryIface
	baseURL   string
}

func NewNotifier(sender Sender, companies repository.CompanyRepositoryIface, baseURL string) *Notifier {
	return &Notifier{
		sender:    sender,
		companies: companies,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

func (n *Notifier) WorkOrderAssigned(ctx context.Context, wo *model.WorkOrder, assignee *model.User) error {
	if assignee.Email == "" {
		return nil
	}

	data := WorkOrderAssignedTemplateData{
		AssigneeName: assignee.Name,
		CompanyName:  n.companyName(ctx, wo.CompanyID),
		Title:        wo.Title,
		Priority:     string(wo.Priority),
		Description:  wo.Description,
		Link:         fmt.Sprintf("%s/work-orders/%s", n.baseURL, wo.ID),
	}
	if wo.DueDate != nil {
		data.DueDate = wo.DueDate.String()
	}

	if err := SendWorkOrderAssignedEmail(n.sender, assignee.Email, data); err != nil {
		return fmt.Errorf("sending work order email: %w", err)
	}
	return nil
}

func (n *Notifier) Welcome(ctx context.Context, user *model.User, company *model.Company) error {
	data := WelcomeTemplateData{
		Name: user.Name,
		Link: n.baseURL + "/login",
	}
	if company != nil {
		data.CompanyName = company.Name
	}

	if err := SendWelcomeEmail(n.sender, user.Email, data); err != nil {
		return fmt.Errorf("sending welcome email: %w", err)
	}
	return nil
}

func (n *Notifier) companyName(ctx context.Context, companyID uuid.UUID) string {
	if n.companies == nil {
		return ""
	}
	company, err := n.companies.FindByID(ctx, companyID)
	if err != nil {
		slog.DebugContext(ctx, "company lookup for email failed", "company_id", companyID.String(), "error", err)
		return ""
	}
	return company.Name
}
