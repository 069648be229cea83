package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"alumnihub/internal/model"
	repoMocks "alumnihub/internal/repository/mocks"
	"alumnihub/internal/storage"
	storeMocks "alumnihub/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pngImage(size int) UploadedImage {
	return UploadedImage{
		Filename:    "qr.png",
		ContentType: "image/png",
		Data:        bytes.Repeat([]byte("x"), size),
	}
}

func TestDonationService_CreateListing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		listingName  string
		donationType string
		qr           UploadedImage
		home         *UploadedImage
		setupMocks   func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository)
		wantErr      error
		wantErrMsg   string
	}{
		{
			name:         "happy path with QR only",
			listingName:  "Shanti Old Age Home",
			donationType: "old-age",
			qr:           pngImage(64),
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/qr/") && strings.HasSuffix(key, ".png")
				}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "image/png" && opt.Size == 64
				})).Return(storage.ObjectInfo{}, nil)
				mRepo.On("CreateItem", ctx, mock.MatchedBy(func(item *model.DonationItem) bool {
					return item.ID != "" && item.Name == "Shanti Old Age Home" &&
						item.Type == model.DonationOldAge &&
						strings.HasPrefix(item.QRKey, "donations/qr/") && item.HomeKey == ""
				})).Return(nil)
			},
		},
		{
			name:         "happy path with home photo",
			listingName:  "Hope Orphanage",
			donationType: "orphan",
			qr:           pngImage(64),
			home:         &UploadedImage{Filename: "home.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/qr/")
				}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/home/") && strings.HasSuffix(key, ".jpg")
				}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("CreateItem", ctx, mock.MatchedBy(func(item *model.DonationItem) bool {
					return item.Type == model.DonationOrphan && item.HomeKey != ""
				})).Return(nil)
			},
		},
		{
			name:         "validation - missing name",
			listingName:  "",
			donationType: "old-age",
			qr:           pngImage(64),
			setupMocks:   func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:      ErrValidation,
		},
		{
			name:         "validation - unknown type",
			listingName:  "Shanti",
			donationType: "shelter",
			qr:           pngImage(64),
			setupMocks:   func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:      ErrValidation,
		},
		{
			name:         "validation - wrong content type",
			listingName:  "Shanti",
			donationType: "old-age",
			qr:           UploadedImage{Filename: "qr.gif", ContentType: "image/gif", Data: []byte("gif")},
			setupMocks:   func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:      ErrValidation,
		},
		{
			name:         "oversized image",
			listingName:  "Shanti",
			donationType: "old-age",
			qr:           pngImage(2<<20 + 1),
			setupMocks:   func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:      ErrFileTooLarge,
		},
		{
			name:         "repository error rolls the uploads back",
			listingName:  "Shanti",
			donationType: "old-age",
			qr:           pngImage(64),
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, nil)
				mRepo.On("CreateItem", ctx, mock.Anything).Return(errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/qr/")
				})).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:         "rollback delete failure is reported",
			listingName:  "Shanti",
			donationType: "old-age",
			qr:           pngImage(64),
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, nil)
				mRepo.On("CreateItem", ctx, mock.Anything).Return(errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
		{
			name:         "home upload failure removes the QR object",
			listingName:  "Shanti",
			donationType: "old-age",
			qr:           pngImage(64),
			home:         &UploadedImage{Filename: "home.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/qr/")
				}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/home/")
				}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("storage fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/qr/")
				})).Return(nil)
			},
			wantErrMsg: "upload to storage: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDonationRepository)
			svc := NewDonationService(mStore, mRepo, 2<<20)

			tt.setupMocks(mStore, mRepo)

			item, err := svc.CreateListing(ctx, tt.listingName, tt.donationType, tt.qr, tt.home)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, item)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDonationService_ListItems(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository)
		wantErr    bool
		checkRes   func(t *testing.T, items []model.DonationItem)
	}{
		{
			name: "resolves presigned URLs for each image",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mRepo.On("ListItemsByType", ctx, model.DonationOldAge).Return([]model.DonationItem{
					{ID: "1", Name: "Shanti", QRKey: "donations/qr/a.png", HomeKey: "donations/home/b.jpg"},
					{ID: "2", Name: "Asha", QRKey: "donations/qr/c.png"},
				}, nil)
				mStore.On("PresignGet", ctx, "donations/qr/a.png", presignExpiry).Return("https://s3/qr-a", nil)
				mStore.On("PresignGet", ctx, "donations/home/b.jpg", presignExpiry).Return("https://s3/home-b", nil)
				mStore.On("PresignGet", ctx, "donations/qr/c.png", presignExpiry).Return("https://s3/qr-c", nil)
			},
			checkRes: func(t *testing.T, items []model.DonationItem) {
				assert.Equal(t, "https://s3/qr-a", items[0].QRURL)
				assert.Equal(t, "https://s3/home-b", items[0].HomeURL)
				assert.Equal(t, "https://s3/qr-c", items[1].QRURL)
				assert.Empty(t, items[1].HomeURL)
			},
		},
		{
			name: "repository error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mRepo.On("ListItemsByType", ctx, model.DonationOldAge).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
		{
			name: "presign error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mRepo.On("ListItemsByType", ctx, model.DonationOldAge).Return([]model.DonationItem{
					{ID: "1", QRKey: "donations/qr/a.png"},
				}, nil)
				mStore.On("PresignGet", ctx, "donations/qr/a.png", presignExpiry).
					Return("", errors.New("presign fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDonationRepository)
			svc := NewDonationService(mStore, mRepo, 2<<20)

			tt.setupMocks(mStore, mRepo)

			items, err := svc.ListItems(ctx, model.DonationOldAge)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, items)
				}
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDonationService_SubmitTransaction(t *testing.T) {
	ctx := context.Background()

	valid := TransactionInput{
		ItemName:   "Shanti Old Age Home",
		Amount:     500,
		DonorName:  "Ben Lee",
		DonorEmail: "ben@example.com",
		DonorPhone: "9876543210",
		Screenshot: UploadedImage{Filename: "paid.png", ContentType: "image/png", Data: []byte("png")},
	}

	tests := []struct {
		name       string
		mutate     func(in *TransactionInput)
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/tx/") && strings.HasSuffix(key, ".png")
				}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(tx *model.DonationTransaction) bool {
					return tx.ID != "" && tx.ItemName == "Shanti Old Age Home" &&
						tx.Amount == 500 && strings.HasPrefix(tx.ScreenshotKey, "donations/tx/")
				})).Return(nil)
			},
		},
		{
			name:       "validation - missing donor email",
			mutate:     func(in *TransactionInput) { in.DonorEmail = "" },
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "validation - non-positive amount",
			mutate:     func(in *TransactionInput) { in.Amount = 0 },
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "validation - missing screenshot",
			mutate:     func(in *TransactionInput) { in.Screenshot.Data = nil },
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name: "repository error rolls the screenshot back",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDonationRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, nil)
				mRepo.On("CreateTransaction", ctx, mock.Anything).Return(errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "donations/tx/")
				})).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDonationRepository)
			svc := NewDonationService(mStore, mRepo, 2<<20)

			in := valid
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			tt.setupMocks(mStore, mRepo)

			err := svc.SubmitTransaction(ctx, in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDonationService_DailyStats(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockDonationRepository)
	mRepo.On("DailyTotals", ctx, model.DonationOrphan, statsDays).Return([]model.DonationDailyStat{
		{ItemName: "Hope Orphanage", Date: "2026-08-30", TotalAmount: 1500},
		{ItemName: "Hope Orphanage", Date: "2026-08-29", TotalAmount: 700},
	}, nil)
	svc := NewDonationService(nil, mRepo, 2<<20)

	stats, err := svc.DailyStats(ctx, model.DonationOrphan)
	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 1500.0, stats[0].TotalAmount)
	mRepo.AssertExpectations(t)
}
