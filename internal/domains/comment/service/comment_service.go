package service

import (
	"context"
	"strings"

	"brashfox-backend/internal/domains/comment"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/validation"
)

type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, author *permission.Identity, req comment.CreateRequest) (*comment.PostComment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// The trimmed body is what gets validated and stored; surrounding
	// whitespace never counts against the column width.
	body := strings.TrimSpace(req.Comment)
	if err := validation.ValidateCommentLength(body); err != nil {
		return nil, err
	}

	c := &comment.PostComment{
		PostID:  req.PostID,
		Author:  author.Username,
		Comment: body,
	}
	if _, err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Get(ctx context.Context, id int64) (*comment.PostComment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *commentService) List(ctx context.Context, postID *int64, page, limit int) ([]comment.PostComment, int, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, postID, limit, offset)
}

func (s *commentService) ListForPost(ctx context.Context, slug string) ([]comment.PostComment, error) {
	return s.repo.ListForPostSlug(ctx, slug)
}

func (s *commentService) Update(ctx context.Context, existing *comment.PostComment, req comment.UpdateRequest) (*comment.PostComment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body := strings.TrimSpace(req.Comment)
	if err := validation.ValidateCommentLength(body); err != nil {
		return nil, err
	}

	existing.Comment = body
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
