package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brashfox-backend/internal/domains/blog"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/utils"
	"brashfox-backend/internal/shared/validation"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

// CreatePost persists a post for the authenticated author. A missing slug is
// derived from the title; collisions get a -1, -2, ... suffix. The repository
// transaction plus the unique constraint settle concurrent duplicate slugs;
// one retry re-resolves before the conflict is surfaced.
func (s *blogService) CreatePost(ctx context.Context, author *permission.Identity, req blog.CreateRequest) (*blog.DetailDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// Bounds apply to the trimmed text and the trimmed text is what gets
	// stored, so padding can never push a valid value past a column width.
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Post)
	if err := validation.ValidatePostTitle(title); err != nil {
		return nil, err
	}
	if err := validation.ValidatePostBody(body); err != nil {
		return nil, err
	}

	base := req.Slug
	if base == "" {
		base = utils.Slugify(title)
	}
	if base == "" {
		return nil, fmt.Errorf("%w: title yields an empty slug", validation.ErrInvalidFormat)
	}

	for attempt := 0; attempt < 2; attempt++ {
		slug, err := s.resolveSlug(ctx, base)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		post := &blog.BlogPost{
			AuthorID:       author.UserID,
			AuthorUsername: author.Username,
			Title:          title,
			Post:           body,
			Slug:           slug,
			Created:        now,
			Edited:         now,
		}

		id, err := s.repo.Create(ctx, post, req.CategoryIDs)
		if err != nil {
			if errors.Is(err, blog.ErrSlugAlreadyExists) && attempt == 0 {
				continue
			}
			return nil, err
		}
		post.ID = id

		created, err := s.repo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		dto := created.ToDetailDTO()
		return &dto, nil
	}

	return nil, blog.ErrSlugAlreadyExists
}

func (s *blogService) resolveSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *blogService) GetPost(ctx context.Context, slug string) (*blog.BlogPost, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *blogService) ListPosts(ctx context.Context, page, limit int) ([]blog.ListDTO, int, error) {
	posts, total, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]blog.ListDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, posts[i].ToListDTO())
	}
	return dtos, total, nil
}

// UpdatePost applies the changed fields. A slug in the payload is ignored:
// the slug never changes once set.
func (s *blogService) UpdatePost(ctx context.Context, post *blog.BlogPost, req blog.UpdateRequest) (*blog.DetailDTO, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := validation.ValidatePostTitle(title); err != nil {
			return nil, err
		}
		post.Title = title
	}
	if req.Post != nil {
		body := strings.TrimSpace(*req.Post)
		if err := validation.ValidatePostBody(body); err != nil {
			return nil, err
		}
		post.Post = body
	}

	if err := s.repo.Update(ctx, post, req.CategoryIDs); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindBySlug(ctx, post.Slug)
	if err != nil {
		return nil, err
	}
	dto := updated.ToDetailDTO()
	return &dto, nil
}

func (s *blogService) DeletePost(ctx context.Context, post *blog.BlogPost) error {
	return s.repo.Delete(ctx, post.ID)
}
