package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"phonedrop/internal/model"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Process(ctx context.Context, items []model.UploadItem) (*model.BatchResult, error) {
	args := m.Called(ctx, items)
	if res := args.Get(0); res != nil {
		return res.(*model.BatchResult), args.Error(1)
	}
	return nil, args.Error(1)
}
