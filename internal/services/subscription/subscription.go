// Package services содержит бизнес-логику создания, чтения и отмены подписок,
// включая вывод даты продления и кеширование.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription сохраняет подписку и заполняет её ID.
	CreateSubscription(ctx context.Context, sub *models.Subscription) error
	// GetSubscription возвращает подписку по ID.
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	// ListSubscriptionsByUser возвращает подписки пользователя.
	ListSubscriptionsByUser(ctx context.Context, userID string) ([]*models.Subscription, error)
	// UpdateSubscriptionStatus меняет статус подписки.
	UpdateSubscriptionStatus(ctx context.Context, id string, status models.Status) (*models.Subscription, error)
	// GetUser возвращает владельца подписок по ID.
	GetUser(ctx context.Context, id string) (*models.User, error)
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

// Publisher публикует события подписок в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// ErrCancelExpired возвращается при попытке отменить истёкшую подписку.
var ErrCancelExpired = apperror.New(http.StatusConflict, "Expired subscription cannot be cancelled")

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo      SubscriptionRepository
	cache     Cache
	validate  Validator
	publisher Publisher
	ttl       time.Duration
	log       *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, cache Cache, validate Validator,
	publisher Publisher, ttl time.Duration, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:      repo,
		cache:     cache,
		validate:  validate,
		publisher: publisher,
		ttl:       ttl,
		log:       log,
	}
}

func cacheKey(id string) string {
	return "subscription:" + id
}

// Create проверяет запрос, выводит дату продления и сохраняет подписку.
func (s *SubscriptionService) Create(ctx context.Context, req models.CreateSubscriptionRequest) (*models.Subscription, error) {
	const op = "services.subscription.Create"

	req.Name = strings.TrimSpace(req.Name)
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	if req.Currency == "" {
		req.Currency = string(models.CurrencyUSD)
	}
	if req.Status == "" {
		req.Status = string(models.StatusActive)
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub := req.ToSubscription()
	if err := sub.ApplyLifecycle(); err != nil {
		if errors.Is(err, models.ErrUnknownFrequency) {
			return nil, fmt.Errorf("%s: %w", op, frequencyError(sub.Frequency))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.CreateSubscription(ctx, &sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new subscription", slog.String("id", sub.ID), slog.String("status", string(sub.Status)))

	if err := s.cache.Set(ctx, cacheKey(sub.ID), sub, s.ttl); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("id", sub.ID), sl.Err(err))
	}
	s.publish(ctx, rabbitmq.RoutingKeyCreated, &sub)

	return &sub, nil
}

// Get возвращает подписку по ID, используя кеш или репозиторий.
func (s *SubscriptionService) Get(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "services.subscription.Get"

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, apperror.ErrMalformedID, id)
	}

	var cached models.Subscription
	found, err := s.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read subscription from cache", slog.String("id", id), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	sub, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, cacheKey(id), sub, s.ttl); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("id", id), sl.Err(err))
	}
	return sub, nil
}

// ListByUser возвращает подписки существующего пользователя.
func (s *SubscriptionService) ListByUser(ctx context.Context, userID string) ([]*models.Subscription, error) {
	const op = "services.subscription.ListByUser"

	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, apperror.ErrMalformedID, userID)
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs, err := s.repo.ListSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// Cancel переводит активную подписку в cancelled.
// Повторная отмена ничего не меняет, истёкшую подписку отменить нельзя.
func (s *SubscriptionService) Cancel(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "services.subscription.Cancel"

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, apperror.ErrMalformedID, id)
	}

	current, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	switch current.Status {
	case models.StatusExpired:
		return nil, fmt.Errorf("%s: %w", op, ErrCancelExpired)
	case models.StatusCancelled:
		return current, nil
	}

	sub, err := s.repo.UpdateSubscriptionStatus(ctx, id, models.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("cancelled subscription", slog.String("id", id))

	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to remove subscription from cache", slog.String("id", id), sl.Err(err))
	}
	s.publish(ctx, rabbitmq.RoutingKeyCancelled, sub)

	return sub, nil
}

func (s *SubscriptionService) publish(ctx context.Context, routingKey string, sub *models.Subscription) {
	if err := s.publisher.Publish(ctx, routingKey, sub.Event()); err != nil {
		s.log.Warn("failed to publish subscription event",
			slog.String("routing_key", routingKey), slog.String("id", sub.ID), sl.Err(err))
	}
}

func frequencyError(f models.Frequency) apperror.ValidationErrors {
	msg := "Unknown frequency"
	if f == "" {
		msg = "Frequency is required to derive the renewal date"
	}
	return apperror.ValidationErrors{{Field: "frequency", Message: msg}}
}
