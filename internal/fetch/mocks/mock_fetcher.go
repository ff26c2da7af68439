package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"phonedrop/internal/fetch"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (*fetch.Result, error) {
	args := m.Called(ctx, url)
	if res := args.Get(0); res != nil {
		return res.(*fetch.Result), args.Error(1)
	}
	return nil, args.Error(1)
}
