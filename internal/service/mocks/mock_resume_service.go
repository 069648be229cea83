package mocks

import (
	"context"

	"alumnihub/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Upload(ctx context.Context, email, name string, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, email, name, data, mimeType)
	return args.String(0), args.Error(1)
}

func (m *MockResumeService) Get(ctx context.Context, email string) (*model.Resume, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockResumeService) ListOwners(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
