package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brashfox-backend/internal/domains/about"
	"brashfox-backend/internal/shared/validation"
)

type fakeAboutRepository struct {
	stored *about.AboutMe
	nextID int64
}

func (r *fakeAboutRepository) Get(_ context.Context) (*about.AboutMe, error) {
	if r.stored == nil {
		return nil, about.ErrNotConfigured
	}
	found := *r.stored
	return &found, nil
}

func (r *fakeAboutRepository) Create(_ context.Context, a *about.AboutMe) (int64, error) {
	if r.stored != nil {
		return 0, about.ErrAlreadyConfigured
	}
	r.nextID++
	copied := *a
	copied.ID = r.nextID
	r.stored = &copied
	a.ID = r.nextID
	return r.nextID, nil
}

func (r *fakeAboutRepository) Replace(_ context.Context, a *about.AboutMe) error {
	if r.stored == nil || r.stored.ID != a.ID {
		return about.ErrNotConfigured
	}
	copied := *a
	r.stored = &copied
	return nil
}

type fakeObjectStorage struct {
	objects map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (s *fakeObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.objects[key] = data
	return s.URL(key), nil
}

func (s *fakeObjectStorage) Download(_ context.Context, key string) ([]byte, error) {
	return s.objects[key], nil
}

func (s *fakeObjectStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *fakeObjectStorage) DeleteByPrefix(_ context.Context, prefix string) error {
	for key := range s.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.objects, key)
		}
	}
	return nil
}

func (s *fakeObjectStorage) URL(key string) string {
	return "http://storage.local/" + key
}

func validAboutRequest() about.Request {
	return about.Request{
		Title: "Photographer & Writer",
		Name:  "Jan Kowalski",
		Bio:   "I take pictures.",
		Email: "jan@example.com",
	}
}

func TestCreateThenSecondCreateConflicts(t *testing.T) {
	repo := &fakeAboutRepository{}
	svc := NewAboutService(repo, newFakeObjectStorage())

	created, err := svc.Create(context.Background(), validAboutRequest(), nil)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(context.Background(), validAboutRequest(), nil)
	assert.ErrorIs(t, err, about.ErrAlreadyConfigured)
}

func TestGetBeforeConfigurationIsNotFound(t *testing.T) {
	repo := &fakeAboutRepository{}
	svc := NewAboutService(repo, newFakeObjectStorage())

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, about.ErrNotConfigured)
}

func TestReplaceCreatesWhenAbsent(t *testing.T) {
	repo := &fakeAboutRepository{}
	svc := NewAboutService(repo, newFakeObjectStorage())

	replaced, err := svc.Replace(context.Background(), validAboutRequest(), nil)
	require.NoError(t, err)
	assert.NotZero(t, replaced.ID)
}

func TestReplaceKeepsRowIdentity(t *testing.T) {
	repo := &fakeAboutRepository{}
	svc := NewAboutService(repo, newFakeObjectStorage())

	created, err := svc.Create(context.Background(), validAboutRequest(), nil)
	require.NoError(t, err)

	req := validAboutRequest()
	req.Name = "A New Name"
	replaced, err := svc.Replace(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, "A New Name", replaced.Name)
}

func TestAvatarValidation(t *testing.T) {
	repo := &fakeAboutRepository{}
	store := newFakeObjectStorage()
	svc := NewAboutService(repo, store)

	tooBig := &about.Avatar{
		Filename: "me.png",
		Size:     validation.MaxAvatarSize + 1,
		Data:     []byte("x"),
	}
	_, err := svc.Create(context.Background(), validAboutRequest(), tooBig)
	assert.ErrorIs(t, err, validation.ErrFileTooLarge)
	assert.Empty(t, store.objects)

	badType := &about.Avatar{Filename: "me.pdf", Size: 100, Data: []byte("x")}
	_, err = svc.Create(context.Background(), validAboutRequest(), badType)
	assert.ErrorIs(t, err, validation.ErrInvalidFile)
}

func TestAvatarStoredAndURLFilled(t *testing.T) {
	repo := &fakeAboutRepository{}
	store := newFakeObjectStorage()
	svc := NewAboutService(repo, store)

	avatar := &about.Avatar{Filename: "me.png", Size: 100, Data: []byte("png-bytes")}
	created, err := svc.Create(context.Background(), validAboutRequest(), avatar)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ProfileImageURL)
	assert.Len(t, store.objects, 1)
}
