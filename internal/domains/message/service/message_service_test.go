package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brashfox-backend/internal/domains/message"
	"brashfox-backend/internal/infrastructure/email"
	"brashfox-backend/internal/shared/validation"
)

type fakeMessageRepository struct {
	messages map[int64]*message.Message
	nextID   int64
}

func newFakeMessageRepository() *fakeMessageRepository {
	return &fakeMessageRepository{messages: make(map[int64]*message.Message), nextID: 1}
}

func (r *fakeMessageRepository) Create(_ context.Context, m *message.Message) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *m
	stored.ID = id
	r.messages[id] = &stored
	m.ID = id
	return id, nil
}

func (r *fakeMessageRepository) FindByID(_ context.Context, id int64) (*message.Message, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, message.ErrMessageNotFound
	}
	found := *m
	return &found, nil
}

func (r *fakeMessageRepository) List(_ context.Context, _, _ int) ([]message.Message, int, error) {
	messages := make([]message.Message, 0, len(r.messages))
	for _, m := range r.messages {
		messages = append(messages, *m)
	}
	return messages, len(messages), nil
}

func (r *fakeMessageRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.messages[id]; !ok {
		return message.ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}

type fakeSink struct {
	notifications []email.ContactNotification
	err           error
}

func (s *fakeSink) NotifyContactMessage(_ context.Context, n email.ContactNotification) error {
	if s.err != nil {
		return s.err
	}
	s.notifications = append(s.notifications, n)
	return nil
}

func validMessageRequest() message.CreateRequest {
	return message.CreateRequest{
		Name:    "Jan",
		Email:   "jan@example.com",
		Topic:   "Print order",
		Message: "I would like to order a print of your latest photo.",
	}
}

func TestCreatePersistsAndNotifies(t *testing.T) {
	repo := newFakeMessageRepository()
	sink := &fakeSink{}
	svc := NewMessageService(repo, sink)

	created, err := svc.Create(context.Background(), validMessageRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.Len(t, sink.notifications, 1)
	assert.Equal(t, "Print order", sink.notifications[0].Topic)
}

func TestCreatePersistsTrimmedBody(t *testing.T) {
	repo := newFakeMessageRepository()
	svc := NewMessageService(repo, &fakeSink{})

	req := validMessageRequest()
	req.Message = "  " + strings.Repeat("m", 5000) + "  "

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, created.Message, 5000)

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("m", 5000), stored.Message)
}

func TestCreateSucceedsWhenNotificationFails(t *testing.T) {
	repo := newFakeMessageRepository()
	sink := &fakeSink{err: errors.New("smtp connection refused")}
	svc := NewMessageService(repo, sink)

	created, err := svc.Create(context.Background(), validMessageRequest())
	require.NoError(t, err)

	// The message is stored despite the failed notification.
	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Message, stored.Message)
}

func TestCreateRejectsOutOfBoundsMessage(t *testing.T) {
	repo := newFakeMessageRepository()
	sink := &fakeSink{}
	svc := NewMessageService(repo, sink)

	short := validMessageRequest()
	short.Message = "too short"
	_, err := svc.Create(context.Background(), short)
	assert.ErrorIs(t, err, validation.ErrOutOfBounds)

	long := validMessageRequest()
	long.Message = strings.Repeat("m", 5001)
	_, err = svc.Create(context.Background(), long)
	assert.ErrorIs(t, err, validation.ErrOutOfBounds)

	// Nothing reached the repository or the sink.
	assert.Empty(t, repo.messages)
	assert.Empty(t, sink.notifications)
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	repo := newFakeMessageRepository()
	svc := NewMessageService(repo, &fakeSink{})

	bad := validMessageRequest()
	bad.Email = "not-an-email"
	_, err := svc.Create(context.Background(), bad)
	assert.Error(t, err)
	assert.Empty(t, repo.messages)
}
