package models

import (
	"errors"
	"time"
)

// Currency задаёт валюту оплаты подписки.
type Currency string

// Допустимые валюты.
const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyVND Currency = "VND"
)

// Frequency задаёт периодичность списаний.
type Frequency string

// Допустимые периодичности.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Category задаёт тематическую категорию подписки.
type Category string

// Допустимые категории.
const (
	CategorySports        Category = "sports"
	CategoryNews          Category = "news"
	CategoryEntertainment Category = "entertainment"
	CategoryLifestyle     Category = "lifestyle"
	CategoryTechnology    Category = "technology"
	CategoryFinance       Category = "finance"
	CategoryPolitics      Category = "politics"
	CategoryOther         Category = "other"
)

// Status описывает состояние подписки.
type Status string

// Состояния подписки. Из expired перехода нет.
const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// ErrUnknownFrequency возвращается для периодичности вне перечисления.
var ErrUnknownFrequency = errors.New("unknown frequency")

// Subscription представляет подписку пользователя в бизнес-логике и хранилище.
// RenewalDate может быть nil только до применения ApplyLifecycle.
type Subscription struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	Currency      Currency   `json:"currency"`
	Frequency     Frequency  `json:"frequency,omitempty"`
	Category      Category   `json:"category"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        Status     `json:"status"`
	StartDate     time.Time  `json:"startDate"`
	RenewalDate   *time.Time `json:"renewalDate"`
	UserID        string     `json:"user"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CreateSubscriptionRequest используется для приёма данных подписки из JSON-запроса.
// Price и StartDate передаются указателями, чтобы отличать отсутствие значения от нулевого.
// Currency и Status заполняются значениями по умолчанию до валидации.
type CreateSubscriptionRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=100"`
	Price         *float64   `json:"price" validate:"required,gte=0"`
	Currency      string     `json:"currency" validate:"required,oneof=USD EUR GBP VND"`
	Frequency     string     `json:"frequency" validate:"omitempty,oneof=daily weekly monthly yearly"`
	Category      string     `json:"category" validate:"required,oneof=sports news entertainment lifestyle technology finance politics other"`
	PaymentMethod string     `json:"paymentMethod" validate:"required"`
	Status        string     `json:"status" validate:"required,oneof=active cancelled expired"`
	StartDate     *time.Time `json:"startDate" validate:"required,notfuture"`
	RenewalDate   *time.Time `json:"renewalDate" validate:"omitempty,gtfield=StartDate"`
	UserID        string     `json:"user" validate:"required,uuid"`
}

// ToSubscription переносит проверенные данные запроса в доменную модель.
func (r CreateSubscriptionRequest) ToSubscription() Subscription {
	sub := Subscription{
		Name:          r.Name,
		Currency:      Currency(r.Currency),
		Frequency:     Frequency(r.Frequency),
		Category:      Category(r.Category),
		PaymentMethod: r.PaymentMethod,
		Status:        Status(r.Status),
		UserID:        r.UserID,
	}
	if r.Price != nil {
		sub.Price = *r.Price
	}
	if r.StartDate != nil {
		sub.StartDate = *r.StartDate
	}
	if r.RenewalDate != nil {
		renewal := *r.RenewalDate
		sub.RenewalDate = &renewal
	}
	return sub
}

// SubscriptionEvent публикуется в брокер при изменении подписки.
type SubscriptionEvent struct {
	SubscriptionID string    `json:"subscription_id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Status         Status    `json:"status"`
	RenewalDate    time.Time `json:"renewal_date"`
}
