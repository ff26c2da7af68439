package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"phonedrop/internal/model"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, p model.NotificationPayload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
