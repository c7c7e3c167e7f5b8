package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

const subscriptionColumns = `id, name, price, currency, frequency, category, payment_method,
			      status, start_date, renewal_date, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row scanner) (*models.Subscription, error) {
	var (
		sub       models.Subscription
		frequency sql.NullString
		renewal   sql.NullTime
	)
	if err := row.Scan(&sub.ID, &sub.Name, &sub.Price, &sub.Currency, &frequency, &sub.Category,
		&sub.PaymentMethod, &sub.Status, &sub.StartDate, &renewal, &sub.UserID,
		&sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return nil, err
	}
	if frequency.Valid {
		sub.Frequency = models.Frequency(frequency.String)
	}
	if renewal.Valid {
		sub.RenewalDate = &renewal.Time
	}
	return &sub, nil
}

// CreateSubscription вставляет подписку и заполняет ID и отметки времени.
func (s *Storage) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var frequency sql.NullString
	if sub.Frequency != "" {
		frequency = sql.NullString{String: string(sub.Frequency), Valid: true}
	}

	query := `INSERT INTO subscriptions (name, price, currency, frequency, category,
			      payment_method, status, start_date, renewal_date, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, price, created_at, updated_at`
	if err := s.DB.QueryRowContext(ctx, query,
		sub.Name, sub.Price, sub.Currency, frequency, sub.Category, sub.PaymentMethod,
		sub.Status, sub.StartDate, sub.RenewalDate, sub.UserID,
	).Scan(&sub.ID, &sub.Price, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, translate(err))
	}
	return nil
}

// GetSubscription возвращает подписку по её ID.
func (s *Storage) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions WHERE id = $1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return sub, nil
}

// ListSubscriptionsByUser возвращает все подписки пользователя.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userID string) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE user_id = $1
			  ORDER BY start_date`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscriptionStatus меняет статус подписки и возвращает обновлённую запись.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id string, status models.Status) (*models.Subscription, error) {
	const op = "storage.UpdateSubscriptionStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET status = $1, updated_at = NOW()
			  WHERE id = $2
			  RETURNING ` + subscriptionColumns
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return sub, nil
}
