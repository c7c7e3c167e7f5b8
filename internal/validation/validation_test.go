package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func validSubscription() models.CreateSubscriptionRequest {
	price := 12.5
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.CreateSubscriptionRequest{
		Name:          "Netflix",
		Price:         &price,
		Currency:      "USD",
		Frequency:     "monthly",
		Category:      "entertainment",
		PaymentMethod: "card",
		Status:        "active",
		StartDate:     &start,
		UserID:        "0b0f9d5e-5a52-4f5e-9d6c-2a9b8f3e1c11",
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs apperror.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	res := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		res[fe.Field] = fe.Message
	}
	return res
}

func TestValidator_User(t *testing.T) {
	v := New(fixedClock)

	tests := []struct {
		name       string
		req        models.RegisterUserRequest
		wantFields map[string]string
	}{
		{
			name: "valid user",
			req:  models.RegisterUserRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name: "all fields missing",
			req:  models.RegisterUserRequest{},
			wantFields: map[string]string{
				"name":     "User name is required",
				"email":    "User email is required",
				"password": "User password is required",
			},
		},
		{
			name: "bounds and format",
			req:  models.RegisterUserRequest{Name: "A", Email: "not-an-email", Password: "12345"},
			wantFields: map[string]string{
				"name":     "User name must be at least 2 characters",
				"email":    "Please fill a valid email address",
				"password": "Password must be at least 6 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fields(t, err))
		})
	}
}

func TestValidator_Subscription(t *testing.T) {
	v := New(fixedClock)

	t.Run("valid subscription", func(t *testing.T) {
		require.NoError(t, v.Struct(validSubscription()))
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		req := validSubscription()
		zero := 0.0
		req.Price = &zero
		require.NoError(t, v.Struct(req))
	})

	t.Run("missing price and negative price", func(t *testing.T) {
		req := validSubscription()
		req.Price = nil
		assert.Equal(t, "Subscription price is required", fields(t, v.Struct(req))["price"])

		negative := -1.0
		req.Price = &negative
		assert.Equal(t, "Price must be greater than 0", fields(t, v.Struct(req))["price"])
	})

	t.Run("start date in the future", func(t *testing.T) {
		req := validSubscription()
		future := fixedNow.Add(time.Minute)
		req.StartDate = &future
		assert.Equal(t, "Start date must be in the past", fields(t, v.Struct(req))["startDate"])
	})

	t.Run("start date equal to now", func(t *testing.T) {
		req := validSubscription()
		now := fixedNow
		req.StartDate = &now
		require.NoError(t, v.Struct(req))
	})

	t.Run("renewal equal to start is rejected", func(t *testing.T) {
		req := validSubscription()
		renewal := *req.StartDate
		req.RenewalDate = &renewal
		assert.Equal(t, "Renewal date must be after the start day", fields(t, v.Struct(req))["renewalDate"])
	})

	t.Run("renewal after start", func(t *testing.T) {
		req := validSubscription()
		renewal := req.StartDate.AddDate(0, 0, 1)
		req.RenewalDate = &renewal
		require.NoError(t, v.Struct(req))
	})

	t.Run("enumerations", func(t *testing.T) {
		req := validSubscription()
		req.Currency = "RUB"
		req.Frequency = "hourly"
		req.Category = "games"
		req.Status = "paused"

		got := fields(t, v.Struct(req))
		assert.Equal(t, "Currency must be one of USD, EUR, GBP, VND", got["currency"])
		assert.Equal(t, "Frequency must be one of daily, weekly, monthly, yearly", got["frequency"])
		assert.Equal(t, "Category is not supported", got["category"])
		assert.Equal(t, "Status must be one of active, cancelled, expired", got["status"])
	})

	t.Run("frequency may be omitted", func(t *testing.T) {
		req := validSubscription()
		req.Frequency = ""
		require.NoError(t, v.Struct(req))
	})

	t.Run("user must be uuid", func(t *testing.T) {
		req := validSubscription()
		req.UserID = "42"
		assert.Equal(t, "Subscription user must be a valid identifier", fields(t, v.Struct(req))["user"])
	})
}

func TestValidator_DefaultClock(t *testing.T) {
	v := New(nil)
	req := validSubscription()
	future := time.Now().Add(time.Hour)
	req.StartDate = &future

	assert.Contains(t, fields(t, v.Struct(req)), "startDate")
}

func TestValidationErrorsJoined(t *testing.T) {
	v := New(fixedClock)

	err := v.Struct(models.RegisterUserRequest{Name: "Alice", Email: "alice@example.com"})

	require.Error(t, err)
	assert.Equal(t, "User password is required", err.Error())
}
