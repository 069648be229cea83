package mocks

import (
	"context"

	"alumnihub/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) CreateItem(ctx context.Context, item *model.DonationItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDonationRepository) ListItemsByType(ctx context.Context, t model.DonationType) ([]model.DonationItem, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DonationItem), args.Error(1)
}

func (m *MockDonationRepository) CreateTransaction(ctx context.Context, tx *model.DonationTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDonationRepository) DailyTotals(ctx context.Context, t model.DonationType, days int) ([]model.DonationDailyStat, error) {
	args := m.Called(ctx, t, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DonationDailyStat), args.Error(1)
}
