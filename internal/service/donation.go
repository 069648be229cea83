package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
	"alumnihub/internal/storage"
)

// presignExpiry bounds how long served image links stay valid.
const presignExpiry = 15 * time.Minute

// statsDays is the window shown on the admin dashboard (today and yesterday).
const statsDays = 2

// UploadedImage is an in-memory image received from a multipart form.
type UploadedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TransactionInput carries a donor-submitted payment form.
type TransactionInput struct {
	ItemName   string
	Amount     float64
	DonorName  string
	DonorEmail string
	DonorPhone string
	Screenshot UploadedImage
}

// DonationService manages donation listings, donor transactions and their
// daily statistics.
type DonationService interface {
	// CreateListing stores the QR code (and optional home photo) in object
	// storage and inserts the listing row, rolling the objects back if the
	// insert fails.
	CreateListing(ctx context.Context, name, donationType string, qr UploadedImage, home *UploadedImage) (*model.DonationItem, error)

	// ListItems returns the listings of a type with presigned image URLs.
	ListItems(ctx context.Context, t model.DonationType) ([]model.DonationItem, error)

	// SubmitTransaction stores the payment screenshot and records the
	// transaction for manual verification.
	SubmitTransaction(ctx context.Context, in TransactionInput) error

	// DailyStats returns per-item donation totals for the recent days.
	DailyStats(ctx context.Context, t model.DonationType) ([]model.DonationDailyStat, error)
}

type donationService struct {
	store    storage.Storage
	repo     repository.DonationRepository
	maxBytes int64
}

// NewDonationService constructs a new DonationService.
func NewDonationService(store storage.Storage, repo repository.DonationRepository, maxBytes int64) DonationService {
	return &donationService{store: store, repo: repo, maxBytes: maxBytes}
}

func (s *donationService) validateImage(img UploadedImage) error {
	if len(img.Data) == 0 {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	if int64(len(img.Data)) > s.maxBytes {
		return ErrFileTooLarge
	}
	switch img.ContentType {
	case "image/jpeg", "image/png":
		return nil
	}
	return fmt.Errorf("%w: only JPEG or PNG images are accepted", ErrValidation)
}

// putImage uploads the image under prefix with a generated name.
func (s *donationService) putImage(ctx context.Context, prefix string, img UploadedImage) (string, error) {
	key := filepath.ToSlash(filepath.Join(prefix, uuid.New().String()+filepath.Ext(img.Filename)))
	_, err := s.store.Put(ctx, key, bytes.NewReader(img.Data), storage.PutObjectOptions{
		Size:        int64(len(img.Data)),
		ContentType: img.ContentType,
		Metadata: map[string]string{
			"original-filename": img.Filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return key, nil
}

func (s *donationService) CreateListing(ctx context.Context, name, donationType string, qr UploadedImage, home *UploadedImage) (*model.DonationItem, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	dt, ok := model.ParseDonationType(donationType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown donation type %q", ErrValidation, donationType)
	}
	if err := s.validateImage(qr); err != nil {
		return nil, err
	}
	if home != nil {
		if err := s.validateImage(*home); err != nil {
			return nil, err
		}
	}

	qrKey, err := s.putImage(ctx, "donations/qr", qr)
	if err != nil {
		return nil, err
	}
	var homeKey string
	if home != nil {
		homeKey, err = s.putImage(ctx, "donations/home", *home)
		if err != nil {
			// Roll back the QR object so storage does not accumulate orphans.
			if delErr := s.store.Delete(ctx, qrKey); delErr != nil {
				return nil, fmt.Errorf("upload failed: %v; rollback delete failed: %v", err, delErr)
			}
			return nil, err
		}
	}

	item := &model.DonationItem{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      dt,
		QRKey:     qrKey,
		HomeKey:   homeKey,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		for _, key := range []string{qrKey, homeKey} {
			if key != "" {
				if delErr := s.store.Delete(ctx, key); delErr != nil {
					return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
				}
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return item, nil
}

func (s *donationService) ListItems(ctx context.Context, t model.DonationType) ([]model.DonationItem, error) {
	items, err := s.repo.ListItemsByType(ctx, t)
	if err != nil {
		return nil, err
	}
	for i := range items {
		u, err := s.store.PresignGet(ctx, items[i].QRKey, presignExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign qr image: %w", err)
		}
		items[i].QRURL = u
		if items[i].HomeKey != "" {
			u, err := s.store.PresignGet(ctx, items[i].HomeKey, presignExpiry)
			if err != nil {
				return nil, fmt.Errorf("presign home image: %w", err)
			}
			items[i].HomeURL = u
		}
	}
	return items, nil
}

func (s *donationService) SubmitTransaction(ctx context.Context, in TransactionInput) error {
	if in.ItemName == "" || in.DonorName == "" || in.DonorEmail == "" {
		return fmt.Errorf("%w: itemName, name and email are required", ErrValidation)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if err := s.validateImage(in.Screenshot); err != nil {
		return err
	}

	key, err := s.putImage(ctx, "donations/tx", in.Screenshot)
	if err != nil {
		return err
	}
	tx := &model.DonationTransaction{
		ID:            uuid.New().String(),
		ItemName:      in.ItemName,
		Amount:        in.Amount,
		DonorName:     in.DonorName,
		DonorEmail:    in.DonorEmail,
		DonorPhone:    in.DonorPhone,
		ScreenshotKey: key,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return fmt.Errorf("db save failed: %w", err)
	}
	return nil
}

func (s *donationService) DailyStats(ctx context.Context, t model.DonationType) ([]model.DonationDailyStat, error) {
	return s.repo.DailyTotals(ctx, t, statsDays)
}
