package list

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/normalizer"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListByUser(ctx context.Context, userID string) ([]*models.Subscription, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.([]*models.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	const userID = "0b6f7c1e-2d3a-4f5b-8c9d-0e1f2a3b4c5d"

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список подписок",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, userID).Return([]*models.Subscription{
					{ID: "1", Name: "Netflix", UserID: userID},
					{ID: "2", Name: "Spotify", UserID: userID},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Spotify"`,
		},
		{
			name: "пустой список",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, userID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":[]}`,
		},
		{
			name: "пользователь не найден",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, userID).Return(nil, apperror.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"Resource not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(log, mockService, normalizer.New(log, prometheus.NewRegistry()))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID+"/subscriptions", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
