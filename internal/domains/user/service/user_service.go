package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"brashfox-backend/internal/domains/user"
)

const bcryptCost = 12

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Fast-path duplicate checks. The unique constraints in the repository
	// remain authoritative under concurrent registration.
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameAlreadyExists
	}

	if req.Email != "" {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email exists: %w", err)
		}
		if exists {
			return nil, user.ErrEmailAlreadyExists
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateJoined:   now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id

	dto := newUser.ToDTO()
	return &dto, nil
}

func (s *userService) Authenticate(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.DTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) GetProfile(ctx context.Context, id int64) (*user.ProfileDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetStatistics(ctx, u)
	if err != nil {
		return nil, err
	}

	return &user.ProfileDTO{DTO: u.ToDTO(), Statistics: *stats}, nil
}

func (s *userService) List(ctx context.Context, page, limit int) ([]user.DTO, int, error) {
	users, total, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]user.DTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}
	return dtos, total, nil
}

// Update changes profile fields. The username is immutable; a supplied
// password is re-hashed.
func (s *userService) Update(ctx context.Context, id int64, req user.UpdateRequest) (*user.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(passwordHash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
