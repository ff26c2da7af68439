package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"phonedrop/internal/model"
)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, name string, content []byte) (model.StoredFile, error) {
	args := m.Called(ctx, name, content)
	return args.Get(0).(model.StoredFile), args.Error(1)
}
