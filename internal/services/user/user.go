// Package services содержит бизнес-логику регистрации и чтения пользователей.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/password"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет пользователя и заполняет его ID.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id string) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Validator проверяет входные структуры.
type Validator interface {
	Struct(s any) error
}

// UserService реализует бизнес-логику работы с пользователями.
type UserService struct {
	repo     UserRepository
	cache    Cache
	validate Validator
	hash     func(string) (string, error)
	ttl      time.Duration
	log      *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cache Cache, validate Validator, ttl time.Duration, log *slog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		cache:    cache,
		validate: validate,
		hash:     password.GetHash,
		ttl:      ttl,
		log:      log,
	}
}

func cacheKey(id string) string {
	return "user:" + id
}

// Register проверяет данные, хэширует пароль и сохраняет пользователя.
// Имя обрезается по краям, email приводится к нижнему регистру.
func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.PublicUser, error) {
	const op = "services.user.Register"

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.String("id", user.ID))

	public := user.Public()
	if err := s.cache.Set(ctx, cacheKey(user.ID), public, s.ttl); err != nil {
		s.log.Warn("failed to cache user", slog.String("id", user.ID), sl.Err(err))
	}
	return &public, nil
}

// Get возвращает пользователя без пароля, используя кеш или репозиторий.
func (s *UserService) Get(ctx context.Context, id string) (*models.PublicUser, error) {
	const op = "services.user.Get"

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, apperror.ErrMalformedID, id)
	}

	var cached models.PublicUser
	found, err := s.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read user from cache", slog.String("id", id), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	public := user.Public()
	if err := s.cache.Set(ctx, cacheKey(id), public, s.ttl); err != nil {
		s.log.Warn("failed to cache user", slog.String("id", id), sl.Err(err))
	}
	return &public, nil
}

// List возвращает всех пользователей без паролей.
func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	const op = "services.user.List"

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result, nil
}
