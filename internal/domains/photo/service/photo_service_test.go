package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brashfox-backend/internal/domains/photo"
	"brashfox-backend/internal/infrastructure/storage"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/validation"
)

type fakePhotoRepository struct {
	photos map[int64]*photo.Photo
	nextID int64
}

func newFakePhotoRepository() *fakePhotoRepository {
	return &fakePhotoRepository{photos: make(map[int64]*photo.Photo), nextID: 1}
}

func (r *fakePhotoRepository) Create(_ context.Context, p *photo.Photo, _ []int64) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *p
	stored.ID = id
	r.photos[id] = &stored
	p.ID = id
	return id, nil
}

func (r *fakePhotoRepository) FindByID(_ context.Context, id int64) (*photo.Photo, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, photo.ErrPhotoNotFound
	}
	found := *p
	return &found, nil
}

func (r *fakePhotoRepository) List(_ context.Context, filter photo.ListFilter, _, _ int) ([]photo.Photo, int, error) {
	photos := make([]photo.Photo, 0, len(r.photos))
	for _, p := range r.photos {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		photos = append(photos, *p)
	}
	return photos, len(photos), nil
}

func (r *fakePhotoRepository) Update(_ context.Context, p *photo.Photo, _ *[]int64) error {
	if _, ok := r.photos[p.ID]; !ok {
		return photo.ErrPhotoNotFound
	}
	stored := *p
	r.photos[p.ID] = &stored
	return nil
}

func (r *fakePhotoRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.photos[id]; !ok {
		return photo.ErrPhotoNotFound
	}
	delete(r.photos, id)
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
		if strings.HasPrefix(key, prefix) {
			delete(s.objects, key)
		}
	}
	return nil
}

func (s *fakeObjectStorage) URL(key string) string {
	return "http://storage.local/" + key
}

var uploader = &permission.Identity{UserID: 4, Username: "dora"}

func validPhotoRequest() photo.CreateRequest {
	return photo.CreateRequest{
		Name:       "Sunset over the bay",
		Event:      "Summer trip",
		CategoryID: 1,
	}
}

func jpegUpload() photo.Upload {
	return photo.Upload{Filename: "sunset.jpg", Size: 2048, Data: []byte("jpeg-bytes")}
}

func TestCreateStoresOriginalAndThumbnail(t *testing.T) {
	repo := newFakePhotoRepository()
	store := newFakeObjectStorage()
	svc := NewPhotoService(repo, store, storage.NewImageProcessor())

	created, err := svc.Create(context.Background(), uploader, validPhotoRequest(), jpegUpload())
	require.NoError(t, err)

	assert.Equal(t, "dora", created.Author)
	assert.Len(t, store.objects, 2)
	assert.Contains(t, created.ImageURL, "original.jpg")
	assert.Contains(t, created.ThumbnailURL, "thumb.jpg")
}

func TestCreateRejectsInvalidUploads(t *testing.T) {
	repo := newFakePhotoRepository()
	store := newFakeObjectStorage()
	svc := NewPhotoService(repo, store, storage.NewImageProcessor())

	badExt := photo.Upload{Filename: "document.pdf", Size: 100, Data: []byte("x")}
	_, err := svc.Create(context.Background(), uploader, validPhotoRequest(), badExt)
	assert.ErrorIs(t, err, validation.ErrInvalidFile)

	tooBig := photo.Upload{Filename: "huge.jpg", Size: validation.MaxImageSize + 1, Data: []byte("x")}
	_, err = svc.Create(context.Background(), uploader, validPhotoRequest(), tooBig)
	assert.ErrorIs(t, err, validation.ErrFileTooLarge)

	// Nothing was uploaded or persisted.
	assert.Empty(t, store.objects)
	assert.Empty(t, repo.photos)
}

func TestDeleteRemovesStoredObjects(t *testing.T) {
	repo := newFakePhotoRepository()
	store := newFakeObjectStorage()
	svc := NewPhotoService(repo, store, storage.NewImageProcessor())

	created, err := svc.Create(context.Background(), uploader, validPhotoRequest(), jpegUpload())
	require.NoError(t, err)
	require.Len(t, store.objects, 2)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), loaded))
	assert.Empty(t, store.objects)
	assert.Empty(t, repo.photos)
}

func TestUpdateReplacesImageAndCleansUpOld(t *testing.T) {
	repo := newFakePhotoRepository()
	store := newFakeObjectStorage()
	svc := NewPhotoService(repo, store, storage.NewImageProcessor())

	created, err := svc.Create(context.Background(), uploader, validPhotoRequest(), jpegUpload())
	require.NoError(t, err)

	existing, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	oldKey := existing.ImageKey

	replacement := photo.Upload{Filename: "replacement.png", Size: 512, Data: []byte("png-bytes")}
	updated, err := svc.Update(context.Background(), existing, photo.UpdateRequest{}, &replacement)
	require.NoError(t, err)

	assert.NotEqual(t, oldKey, updated.ImageKey)
	assert.NotContains(t, store.objects, oldKey)
	assert.Len(t, store.objects, 2)
}

func TestUpdateMetadataOnlyKeepsImage(t *testing.T) {
	repo := newFakePhotoRepository()
	store := newFakeObjectStorage()
	svc := NewPhotoService(repo, store, storage.NewImageProcessor())

	created, err := svc.Create(context.Background(), uploader, validPhotoRequest(), jpegUpload())
	require.NoError(t, err)

	existing, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	newName := "Renamed"
	updated, err := svc.Update(context.Background(), existing, photo.UpdateRequest{Name: &newName}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, created.ImageKey, updated.ImageKey)
	assert.Len(t, store.objects, 2)
}
