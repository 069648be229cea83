package mocks

import (
	"context"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) Upsert(ctx context.Context, r *model.Resume) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResumeRepository) FindByEmail(ctx context.Context, email string) (*model.Resume, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) Delete(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepository) ListOwners(ctx context.Context) ([]repository.ResumeOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ResumeOwner), args.Error(1)
}
