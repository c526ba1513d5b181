package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"brashfox-backend/internal/domains/about"
	"brashfox-backend/internal/infrastructure/storage"
	"brashfox-backend/internal/shared/validation"
	"brashfox-backend/pkg/logger"
)

type aboutService struct {
	repo    about.Repository
	storage storage.ObjectStorage
}

func NewAboutService(repo about.Repository, store storage.ObjectStorage) about.Service {
	return &aboutService{repo: repo, storage: store}
}

func (s *aboutService) Get(ctx context.Context) (*about.AboutMe, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.fillURL(a)
	return a, nil
}

// Create sets up the profile for the first time. A second create fails with
// a conflict; use Replace instead.
func (s *aboutService) Create(ctx context.Context, req about.Request, avatar *about.Avatar) (*about.AboutMe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := fromRequest(req)
	if avatar != nil {
		key, err := s.storeAvatar(ctx, *avatar)
		if err != nil {
			return nil, err
		}
		a.ProfileImageKey = key
	}

	if _, err := s.repo.Create(ctx, a); err != nil {
		if a.ProfileImageKey != "" && !errors.Is(err, about.ErrAlreadyConfigured) {
			s.removeAvatar(ctx, a.ProfileImageKey)
		}
		return nil, err
	}

	s.fillURL(a)
	return a, nil
}

// Replace is get-or-replace: it overwrites the existing row, or creates the
// first one when none exists yet.
func (s *aboutService) Replace(ctx context.Context, req about.Request, avatar *about.Avatar) (*about.AboutMe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, about.ErrNotConfigured) {
			return s.Create(ctx, req, avatar)
		}
		return nil, err
	}

	a := fromRequest(req)
	a.ID = existing.ID
	a.ProfileImageKey = existing.ProfileImageKey
	if avatar != nil {
		key, err := s.storeAvatar(ctx, *avatar)
		if err != nil {
			return nil, err
		}
		a.ProfileImageKey = key
	}

	if err := s.repo.Replace(ctx, a); err != nil {
		return nil, err
	}

	if avatar != nil && existing.ProfileImageKey != "" && existing.ProfileImageKey != a.ProfileImageKey {
		s.removeAvatar(ctx, existing.ProfileImageKey)
	}

	s.fillURL(a)
	return a, nil
}

func fromRequest(req about.Request) *about.AboutMe {
	return &about.AboutMe{
		Title:           req.Title,
		Name:            req.Name,
		Bio:             req.Bio,
		Specializations: req.Specializations,
		Email:           req.Email,
		Phone:           req.Phone,
		SocialLinks:     req.SocialLinks,
	}
}

func (s *aboutService) storeAvatar(ctx context.Context, avatar about.Avatar) (string, error) {
	if err := validation.ValidateAvatarFile(avatar.Filename, avatar.Size); err != nil {
		return "", err
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(avatar.Filename), "."))
	key := fmt.Sprintf("about/%s.%s", uuid.New().String(), ext)

	contentType := "image/" + ext
	if ext == "jpg" {
		contentType = "image/jpeg"
	}
	if _, err := s.storage.Upload(ctx, key, avatar.Data, contentType); err != nil {
		return "", fmt.Errorf("store profile image: %w", err)
	}
	return key, nil
}

func (s *aboutService) removeAvatar(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete profile image "+key, err)
	}
}

func (s *aboutService) fillURL(a *about.AboutMe) {
	if a.ProfileImageKey != "" {
		a.ProfileImageURL = s.storage.URL(a.ProfileImageKey)
	}
}
