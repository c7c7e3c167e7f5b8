package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetDays(t *testing.T) {
	tests := []struct {
		frequency Frequency
		want      int
		wantErr   bool
	}{
		{frequency: FrequencyDaily, want: 1},
		{frequency: FrequencyWeekly, want: 7},
		{frequency: FrequencyMonthly, want: 30},
		{frequency: FrequencyYearly, want: 365},
		{frequency: "fortnightly", wantErr: true},
		{frequency: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			got, err := OffsetDays(tt.frequency)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFrequency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyLifecycle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("derives monthly renewal", func(t *testing.T) {
		sub := Subscription{StartDate: start, Frequency: FrequencyMonthly, Status: StatusActive}

		require.NoError(t, sub.ApplyLifecycle())
		require.NotNil(t, sub.RenewalDate)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *sub.RenewalDate)
		assert.Equal(t, StatusActive, sub.Status)
	})

	t.Run("derives every frequency", func(t *testing.T) {
		for f, days := range map[Frequency]int{
			FrequencyDaily:   1,
			FrequencyWeekly:  7,
			FrequencyMonthly: 30,
			FrequencyYearly:  365,
		} {
			sub := Subscription{StartDate: start, Frequency: f, Status: StatusActive}
			require.NoError(t, sub.ApplyLifecycle())
			assert.Equal(t, start.AddDate(0, 0, days), *sub.RenewalDate, string(f))
		}
	})

	t.Run("keeps supplied renewal", func(t *testing.T) {
		renewal := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		sub := Subscription{StartDate: start, RenewalDate: &renewal, Status: StatusActive}

		require.NoError(t, sub.ApplyLifecycle())
		assert.Equal(t, renewal, *sub.RenewalDate)
		assert.Equal(t, StatusActive, sub.Status)
	})

	t.Run("forces expired when renewal precedes start", func(t *testing.T) {
		renewal := start.AddDate(0, 0, -1)
		sub := Subscription{StartDate: start, RenewalDate: &renewal, Status: StatusActive}

		require.NoError(t, sub.ApplyLifecycle())
		assert.Equal(t, StatusExpired, sub.Status)
	})

	t.Run("unknown frequency without renewal", func(t *testing.T) {
		sub := Subscription{StartDate: start, Frequency: "hourly"}

		err := sub.ApplyLifecycle()
		require.ErrorIs(t, err, ErrUnknownFrequency)
		assert.Nil(t, sub.RenewalDate)
	})
}

func TestToSubscription(t *testing.T) {
	price := 9.99
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	req := CreateSubscriptionRequest{
		Name:          "Netflix",
		Price:         &price,
		Currency:      "EUR",
		Frequency:     "monthly",
		Category:      "entertainment",
		PaymentMethod: "card",
		Status:        "active",
		StartDate:     &start,
		UserID:        "0b0f9d5e-5a52-4f5e-9d6c-2a9b8f3e1c11",
	}

	sub := req.ToSubscription()

	assert.Equal(t, "Netflix", sub.Name)
	assert.Equal(t, 9.99, sub.Price)
	assert.Equal(t, CurrencyEUR, sub.Currency)
	assert.Equal(t, FrequencyMonthly, sub.Frequency)
	assert.Equal(t, start, sub.StartDate)
	assert.Nil(t, sub.RenewalDate)
}

func TestUserPublic(t *testing.T) {
	u := User{ID: "id", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}

	p := u.Public()

	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "alice@example.com", p.Email)
}
