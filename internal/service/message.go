package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"alumnihub/internal/model"
	"alumnihub/internal/notify"
	"alumnihub/internal/repository"
)

// RetentionWindow is how long a broadcast message stays visible. Rows older
// than this are hard-deleted lazily, as a side effect of reads.
const RetentionWindow = 48 * time.Hour

// MessageService defines the broadcast and retention use cases.
type MessageService interface {
	// Send inserts a message with a server-assigned timestamp and hands one
	// notification per targeted user to the dispatcher. Notification delivery
	// is best effort and never affects the outcome.
	Send(ctx context.Context, category, body string) error

	// List purges expired rows, then returns the remaining ones. An empty
	// category means all categories.
	List(ctx context.Context, category string) ([]model.Message, error)

	// Stats purges expired rows, then aggregates counts over the visible window.
	Stats(ctx context.Context) (*model.MessageStats, error)
}

type messageService struct {
	msgs  repository.MessageRepository
	users repository.UserRepository
	queue notify.Queue
	now   func() time.Time
}

// NewMessageService constructs a new MessageService.
func NewMessageService(msgs repository.MessageRepository, users repository.UserRepository, queue notify.Queue) MessageService {
	return &messageService{
		msgs:  msgs,
		users: users,
		queue: queue,
		now:   time.Now,
	}
}

func (s *messageService) Send(ctx context.Context, category, body string) error {
	cat, err := model.ParseCategory(category)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if body == "" {
		return fmt.Errorf("%w: message body is required", ErrValidation)
	}

	m := &model.Message{
		ID:        uuid.New().String(),
		Category:  cat,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := s.msgs.Create(ctx, m); err != nil {
		return err
	}

	// Fan out notifications. Failures here are logged and swallowed: the
	// message is already stored and the sender gets a success either way.
	emails, err := s.users.ListEmailsByStatus(ctx, cat)
	if err != nil {
		log.Printf("listing %s recipients failed: %v", cat, err)
		return nil
	}
	subject := fmt.Sprintf("New announcement for %s alumni", cat)
	for _, email := range emails {
		if !s.queue.Enqueue(notify.Notification{To: email, Subject: subject, Body: body}) {
			log.Printf("notification queue full, dropped mail to %s", email)
		}
	}
	return nil
}

// purge removes rows older than the retention window and returns the cutoff.
// The delete is a single predicate statement, safe to run redundantly from
// concurrent readers.
func (s *messageService) purge(ctx context.Context) (time.Time, error) {
	cutoff := s.now().UTC().Add(-RetentionWindow)
	if _, err := s.msgs.DeleteOlderThan(ctx, cutoff); err != nil {
		return time.Time{}, err
	}
	return cutoff, nil
}

func (s *messageService) List(ctx context.Context, category string) ([]model.Message, error) {
	var filter *model.Category
	if category != "" {
		cat, err := model.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter = &cat
	}

	cutoff, err := s.purge(ctx)
	if err != nil {
		return nil, err
	}
	return s.msgs.ListSince(ctx, cutoff, filter)
}

func (s *messageService) Stats(ctx context.Context) (*model.MessageStats, error) {
	cutoff, err := s.purge(ctx)
	if err != nil {
		return nil, err
	}
	msgs, err := s.msgs.ListSince(ctx, cutoff, nil)
	if err != nil {
		return nil, err
	}

	stats := &model.MessageStats{
		TotalMessages: len(msgs),
		CategoryCount: make(map[model.Category]int, len(model.Categories())),
		Messages:      msgs,
	}
	for _, c := range model.Categories() {
		stats.CategoryCount[c] = 0
	}
	for _, m := range msgs {
		stats.CategoryCount[m.Category]++
	}
	return stats, nil
}
