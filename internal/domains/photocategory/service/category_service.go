package service

import (
	"context"
	"path"

	"brashfox-backend/internal/domains/photocategory"
	"brashfox-backend/internal/infrastructure/storage"
	"brashfox-backend/pkg/logger"
)

type categoryService struct {
	repo    photocategory.Repository
	storage storage.ObjectStorage
}

func NewCategoryService(repo photocategory.Repository, store storage.ObjectStorage) photocategory.Service {
	return &categoryService{repo: repo, storage: store}
}

func (s *categoryService) Create(ctx context.Context, req photocategory.Request) (*photocategory.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &photocategory.Category{Category: req.Category}
	if _, err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*photocategory.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]photocategory.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id int64, req photocategory.Request) (*photocategory.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Category = req.Category
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the category and its photos, then cleans up the stored
// image objects. Object cleanup is best effort: a storage failure is logged
// and never surfaced, the rows are already gone.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	keys, err := s.repo.PhotoImageKeys(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, key := range keys {
		prefix := path.Dir(key) + "/"
		if err := s.storage.DeleteByPrefix(ctx, prefix); err != nil {
			logger.Warn("failed to delete photo objects for removed category "+prefix, err)
		}
	}
	return nil
}
