package service

import (
	"context"
	"strings"

	"brashfox-backend/internal/domains/message"
	"brashfox-backend/internal/infrastructure/email"
	"brashfox-backend/internal/shared/validation"
	"brashfox-backend/pkg/logger"
)

type messageService struct {
	repo message.Repository
	sink email.NotificationSink
}

func NewMessageService(repo message.Repository, sink email.NotificationSink) message.Service {
	return &messageService{repo: repo, sink: sink}
}

// Create persists the message, then notifies the admin. The notification is
// best effort: a sink failure is logged and the create still succeeds.
func (s *messageService) Create(ctx context.Context, req message.CreateRequest) (*message.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// Validate and store the trimmed body so padding never pushes a valid
	// message past the column width.
	body := strings.TrimSpace(req.Message)
	if err := validation.ValidateMessageLength(body); err != nil {
		return nil, err
	}

	m := &message.Message{
		Name:    req.Name,
		Email:   req.Email,
		Topic:   req.Topic,
		Message: body,
	}
	if _, err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	notification := email.ContactNotification{
		Name:    m.Name,
		Email:   m.Email,
		Topic:   m.Topic,
		Message: m.Message,
	}
	if err := s.sink.NotifyContactMessage(ctx, notification); err != nil {
		logger.Warn("contact notification failed", err)
	}

	return m, nil
}

func (s *messageService) Get(ctx context.Context, id int64) (*message.Message, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *messageService) List(ctx context.Context, page, limit int) ([]message.Message, int, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, limit, offset)
}

func (s *messageService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
