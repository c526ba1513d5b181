package service

import (
	"context"

	"brashfox-backend/internal/domains/blog"
)

type categoryService struct {
	repo blog.CategoryRepository
}

func NewCategoryService(repo blog.CategoryRepository) blog.CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, name string) (*blog.Category, error) {
	c := &blog.Category{Category: name}
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*blog.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]blog.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id int64, name string) (*blog.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Category = name
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
