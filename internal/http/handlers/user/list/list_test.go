package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/normalizer"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]models.PublicUser, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.PublicUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список пользователей",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]models.PublicUser{
					{ID: "1", Name: "John", Email: "john@example.com"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"john@example.com"`,
		},
		{
			name: "пустое хранилище",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":[]}`,
		},
		{
			name: "хранилище недоступно",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("storage.ListUsers: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(log, mockService, normalizer.New(log, prometheus.NewRegistry()))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "password")
			mockService.AssertExpectations(t)
		})
	}
}
