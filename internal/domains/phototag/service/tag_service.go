package service

import (
	"context"

	"brashfox-backend/internal/domains/phototag"
)

type tagService struct {
	repo phototag.Repository
}

func NewTagService(repo phototag.Repository) phototag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) Create(ctx context.Context, req phototag.Request) (*phototag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := &phototag.Tag{Tag: req.Tag}
	if _, err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tagService) Get(ctx context.Context, id int64) (*phototag.Tag, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]phototag.Tag, error) {
	return s.repo.List(ctx)
}

func (s *tagService) Update(ctx context.Context, id int64, req phototag.Request) (*phototag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Tag = req.Tag
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
