package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"alumnihub/internal/extract"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// ResumeService defines the résumé ingestion use cases.
type ResumeService interface {
	// Upload validates the payload, extracts text and upserts the résumé row
	// for the email. It returns the stored text. An extraction failure
	// degrades to the placeholder text; the store write still happens.
	Upload(ctx context.Context, email, name string, data []byte, mimeType string) (string, error)

	// Get returns the stored résumé for the email.
	Get(ctx context.Context, email string) (*model.Resume, error)

	// Delete removes the stored résumé for the email.
	Delete(ctx context.Context, email string) error

	// ListOwners returns "name - email" for every stored résumé.
	ListOwners(ctx context.Context) ([]string, error)
}

type resumeService struct {
	repo      repository.ResumeRepository
	extractor extract.TextExtractor
	maxBytes  int64
}

// NewResumeService constructs a new ResumeService. maxBytes caps the accepted
// upload size; larger payloads are rejected before anything is written.
func NewResumeService(repo repository.ResumeRepository, extractor extract.TextExtractor, maxBytes int64) ResumeService {
	return &resumeService{repo: repo, extractor: extractor, maxBytes: maxBytes}
}

func (s *resumeService) Upload(ctx context.Context, email, name string, data []byte, mimeType string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is required", ErrValidation)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrFileTooLarge
	}

	text, err := s.extractor.Extract(data, mimeType)
	if err != nil {
		// Extraction trouble must not lose the upload.
		log.Printf("resume extraction for %s failed: %v", email, err)
		text = extract.Placeholder
	}

	res := &model.Resume{Email: email, Name: name, Text: text}
	if err := s.repo.Upsert(ctx, res); err != nil {
		return "", fmt.Errorf("store resume: %w", err)
	}
	return text, nil
}

func (s *resumeService) Get(ctx context.Context, email string) (*model.Resume, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	res, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *resumeService) Delete(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	n, err := s.repo.Delete(ctx, email)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *resumeService) ListOwners(ctx context.Context) ([]string, error) {
	owners, err := s.repo.ListOwners(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(owners))
	for _, o := range owners {
		out = append(out, fmt.Sprintf("%s - %s", o.Name, o.Email))
	}
	return out, nil
}
