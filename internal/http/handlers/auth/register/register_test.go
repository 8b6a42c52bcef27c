package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/auth-backend/internal/models"
	services "github.com/magabrotheeeer/auth-backend/internal/services/auth"
)

// Мок сервиса с методом Register
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	registeredUser := &models.User{
		UID:   "uid-123",
		Name:  "A",
		Email: "a@x.com",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockToken      string
		mockErr        error
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Name:     "A",
				Email:    "a@x.com",
				Password: "p1",
			},
			mockUser:       registeredUser,
			mockToken:      "tok",
			mockErr:        nil,
			wantStatusCode: http.StatusCreated,
			wantData: map[string]any{
				"user": map[string]any{
					"name":  "A",
					"email": "a@x.com",
				},
				"token": "tok",
			},
			wantError:  "",
			wantStatus: "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantData:       nil,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name: "validation error - missing password",
			requestBody: Request{
				Name:  "A",
				Email: "a@x.com",
			},
			wantStatusCode: http.StatusBadRequest,
			wantData:       nil,
			wantError:      "field Password is a required field",
			wantStatus:     "Error",
		},
		{
			name: "validation error - missing name and email",
			requestBody: Request{
				Password: "p1",
			},
			wantStatusCode: http.StatusBadRequest,
			wantData:       nil,
			wantError:      "field Name is a required field, field Email is a required field",
			wantStatus:     "Error",
		},
		{
			name: "duplicate email",
			requestBody: Request{
				Name:     "A",
				Email:    "a@x.com",
				Password: "p1",
			},
			mockErr:        services.ErrUserExists,
			wantStatusCode: http.StatusBadRequest,
			wantData:       nil,
			wantError:      "User already exists.",
			wantStatus:     "Error",
		},
		{
			name: "storage error",
			requestBody: Request{
				Name:     "A",
				Email:    "a@x.com",
				Password: "p1",
			},
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantData:       nil,
			wantError:      "failed to register user",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockUser != nil || tt.mockErr != nil {
				authMock.On("Register", mock.Anything,
					tt.requestBody.(Request).Name,
					tt.requestBody.(Request).Email,
					tt.requestBody.(Request).Password,
				).Return(tt.mockUser, tt.mockToken, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			}
			if tt.wantData != nil {
				assert.Equal(t, tt.wantData, got["data"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
