package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/mocks"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTransactor returns a transactor whose transactions always commit.
func newTransactor(ctrl *gomock.Controller) *mocks.MockTransactor {
	tx := mocks.NewMockTransaction(ctrl)
	tx.EXPECT().Commit().Return(nil).AnyTimes()
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	txr := mocks.NewMockTransactor(ctrl)
	txr.EXPECT().Begin(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (context.Context, repository.Transaction, error) {
			return ctx, tx, nil
		},
	).AnyTimes()
	return txr
}

// newStrictTransactor returns a transactor whose single transaction must be
// rolled back and never committed.
func newStrictTransactor(ctrl *gomock.Controller) *mocks.MockTransactor {
	tx := mocks.NewMockTransaction(ctrl)
	tx.EXPECT().Commit().Times(0)
	tx.EXPECT().Rollback().Return(nil).MinTimes(1)

	txr := mocks.NewMockTransactor(ctrl)
	txr.EXPECT().Begin(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (context.Context, repository.Transaction, error) {
			return ctx, tx, nil
		},
	)
	return txr
}

func validationErrors(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected a validation error, got %v", err)
	return ve.Errors
}
