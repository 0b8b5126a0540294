// internal/service/notifier.go
package service

import (
	"context"
	"log/slog"

	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/google/uuid"
)

// Notifier delivers user-facing notifications. Delivery is best effort and
// never fails the operation that triggered it.
type Notifier interface {
	WorkOrderAssigned(ctx context.Context, wo *model.WorkOrder, assignee *model.User) error
	Welcome(ctx context.Context, user *model.User, company *model.Company) error
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) WorkOrderAssigned(context.Context, *model.WorkOrder, *model.User) error {
	return nil
}

func (NopNotifier) Welcome(context.Context, *model.User, *model.Company) error {
	return nil
}

func notifyAssigned(ctx context.Context, n Notifier, wo *model.WorkOrder, assignee *model.User) {
	if n == nil || wo == nil || assignee == nil {
		return
	}
	if err := n.WorkOrderAssigned(ctx, wo, assignee); err != nil {
		slog.WarnContext(ctx, "work order notification failed",
			"work_order_id", wo.ID.String(),
			"assignee_id", assignee.ID.String(),
			"error", err,
		)
	}
}

// references resolves optional asset and assignee ids under one company.
// An id that exists under another company reads as not found.
type references struct {
	assets repository.AssetRepositoryIface
	users  repository.UserRepositoryIface
}

func (r references) resolve(ctx context.Context, companyID uuid.UUID, assetID, userID *uuid.UUID) (*model.Asset, *model.User, error) {
	var (
		asset *model.Asset
		user  *model.User
		err   error
	)
	if assetID != nil {
		if asset, err = r.assets.FindByCompany(ctx, companyID, *assetID); err != nil {
			return nil, nil, err
		}
	}
	if userID != nil {
		if user, err = r.users.FindByCompany(ctx, companyID, *userID); err != nil {
			return nil, nil, err
		}
	}
	return asset, user, nil
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
