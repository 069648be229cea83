package mocks

import (
	"context"

	"alumnihub/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(ctx context.Context, category, body string) error {
	args := m.Called(ctx, category, body)
	return args.Error(0)
}

func (m *MockMessageService) List(ctx context.Context, category string) ([]model.Message, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageService) Stats(ctx context.Context) (*model.MessageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageStats), args.Error(1)
}
