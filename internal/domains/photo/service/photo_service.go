package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"brashfox-backend/internal/domains/photo"
	"brashfox-backend/internal/infrastructure/storage"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/validation"
	"brashfox-backend/pkg/logger"
)

type photoService struct {
	repo      photo.Repository
	storage   storage.ObjectStorage
	processor *storage.ImageProcessor
}

func NewPhotoService(repo photo.Repository, store storage.ObjectStorage, processor *storage.ImageProcessor) photo.Service {
	return &photoService{repo: repo, storage: store, processor: processor}
}

// Create validates the upload, stores the original plus a thumbnail, and
// persists the row. If the row insert fails the uploaded objects are
// removed again, best effort.
func (s *photoService) Create(ctx context.Context, author *permission.Identity, req photo.CreateRequest, upload photo.Upload) (*photo.Photo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validation.ValidateImageFile(upload.Filename, upload.Size); err != nil {
		return nil, err
	}

	imageKey, thumbKey, err := s.storeImage(ctx, upload)
	if err != nil {
		return nil, err
	}

	p := &photo.Photo{
		Name:         req.Name,
		Author:       author.Username,
		Event:        req.Event,
		CategoryID:   req.CategoryID,
		ImageKey:     imageKey,
		ThumbnailKey: thumbKey,
	}
	if _, err := s.repo.Create(ctx, p, req.TagIDs); err != nil {
		s.removeObjects(ctx, imageKey)
		return nil, err
	}

	return s.Get(ctx, p.ID)
}

func (s *photoService) Get(ctx context.Context, id int64) (*photo.Photo, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.fillURLs(p)
	return p.ToDetailDTO(), nil
}

func (s *photoService) List(ctx context.Context, filter photo.ListFilter, page, limit int) ([]photo.ListDTO, int, error) {
	offset := (page - 1) * limit
	photos, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]photo.ListDTO, 0, len(photos))
	for i := range photos {
		s.fillURLs(&photos[i])
		dtos = append(dtos, photos[i].ToListDTO())
	}
	return dtos, total, nil
}

// Update edits metadata and optionally replaces the image. A replacement is
// validated like a fresh upload; the old objects are removed once the row
// points at the new ones.
func (s *photoService) Update(ctx context.Context, existing *photo.Photo, req photo.UpdateRequest, upload *photo.Upload) (*photo.Photo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Event != nil {
		existing.Event = *req.Event
	}
	if req.CategoryID != nil {
		existing.CategoryID = *req.CategoryID
	}

	oldImageKey := ""
	if upload != nil {
		if err := validation.ValidateImageFile(upload.Filename, upload.Size); err != nil {
			return nil, err
		}
		imageKey, thumbKey, err := s.storeImage(ctx, *upload)
		if err != nil {
			return nil, err
		}
		oldImageKey = existing.ImageKey
		existing.ImageKey = imageKey
		existing.ThumbnailKey = thumbKey
	}

	if err := s.repo.Update(ctx, existing, req.TagIDs); err != nil {
		if upload != nil {
			s.removeObjects(ctx, existing.ImageKey)
		}
		return nil, err
	}

	if oldImageKey != "" {
		s.removeObjects(ctx, oldImageKey)
	}
	return s.Get(ctx, existing.ID)
}

// Delete removes the row, then the stored objects best effort.
func (s *photoService) Delete(ctx context.Context, existing *photo.Photo) error {
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.removeObjects(ctx, existing.ImageKey)
	return nil
}

// storeImage uploads the original and its thumbnail under a fresh
// photos/<uuid>/ prefix.
func (s *photoService) storeImage(ctx context.Context, upload photo.Upload) (imageKey, thumbKey string, err error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(upload.Filename), "."))
	prefix := "photos/" + uuid.New().String()
	imageKey = fmt.Sprintf("%s/original.%s", prefix, ext)
	thumbKey = prefix + "/thumb.jpg"

	if _, err = s.storage.Upload(ctx, imageKey, upload.Data, contentTypeFor(ext)); err != nil {
		return "", "", fmt.Errorf("store image: %w", err)
	}

	thumb, err := s.processor.Thumbnail(upload.Data)
	if err != nil {
		s.removeObjects(ctx, imageKey)
		return "", "", fmt.Errorf("generate thumbnail: %w", err)
	}
	if _, err = s.storage.Upload(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		s.removeObjects(ctx, imageKey)
		return "", "", fmt.Errorf("store thumbnail: %w", err)
	}
	return imageKey, thumbKey, nil
}

func (s *photoService) removeObjects(ctx context.Context, imageKey string) {
	prefix := path.Dir(imageKey) + "/"
	if err := s.storage.DeleteByPrefix(ctx, prefix); err != nil {
		logger.Warn("failed to delete photo objects "+prefix, err)
	}
}

func (s *photoService) fillURLs(p *photo.Photo) {
	p.ImageURL = s.storage.URL(p.ImageKey)
	p.ThumbnailURL = s.storage.URL(p.ThumbnailKey)
}

func contentTypeFor(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
