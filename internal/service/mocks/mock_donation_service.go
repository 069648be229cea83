package mocks

import (
	"context"

	"alumnihub/internal/model"
	"alumnihub/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) CreateListing(ctx context.Context, name, donationType string, qr service.UploadedImage, home *service.UploadedImage) (*model.DonationItem, error) {
	args := m.Called(ctx, name, donationType, qr, home)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DonationItem), args.Error(1)
}

func (m *MockDonationService) ListItems(ctx context.Context, t model.DonationType) ([]model.DonationItem, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DonationItem), args.Error(1)
}

func (m *MockDonationService) SubmitTransaction(ctx context.Context, in service.TransactionInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockDonationService) DailyStats(ctx context.Context, t model.DonationType) ([]model.DonationDailyStat, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DonationDailyStat), args.Error(1)
}
