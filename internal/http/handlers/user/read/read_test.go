package read

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/normalizer"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, id string) (*models.PublicUser, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.PublicUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h http.Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestReadHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	const id = "0b6f7c1e-2d3a-4f5b-8c9d-0e1f2a3b4c5d"

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "пользователь найден",
			id:   id,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, id).Return(&models.PublicUser{ID: id, Name: "John", Email: "john@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"John"`,
		},
		{
			name: "некорректный id",
			id:   "not-an-id",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "not-an-id").Return(nil,
					fmt.Errorf("services.user.Get: %w", apperror.ErrMalformedID))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"Resource not found"}`,
		},
		{
			name: "пользователь не существует",
			id:   id,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, id).Return(nil,
					fmt.Errorf("services.user.Get: %w", apperror.ErrNotFound))
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
			w := serve(handler, tt.id)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReadHandler_RepeatedReadsMatch(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	const id = "0b6f7c1e-2d3a-4f5b-8c9d-0e1f2a3b4c5d"

	mockService := new(MockService)
	mockService.On("Get", mock.Anything, id).
		Return(&models.PublicUser{ID: id, Name: "John", Email: "john@example.com"}, nil).Twice()

	handler := New(log, mockService, normalizer.New(log, prometheus.NewRegistry()))

	first := serve(handler, id)
	second := serve(handler, id)

	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.NotContains(t, first.Body.String(), "password")
	mockService.AssertExpectations(t)
}
