package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eventix/internal/http-server/handlers/user/login/mocks"
	"eventix/internal/lib/jwt"
	"eventix/internal/lib/logger/handlers/slogdiscard"
	"eventix/internal/models"
	"eventix/internal/storage"
)

const testSecret = "test-secret"

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("Abcdef12"), bcrypt.MinCost)
	require.NoError(t, err)

	testUser := &models.User{
		ID:           1,
		Email:        "a@x.com",
		PasswordHash: string(hash),
		Role:         models.RoleEndUser,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"email": "a@x.com",
				"password": "Abcdef12"
			}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", "a@x.com").Return(testUser, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotEmpty(t, resp.Token)

				claims, err := jwt.Parse(resp.Token, testSecret)
				require.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, "a@x.com", claims.Email)
				assert.Equal(t, models.RoleEndUser, claims.Role)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"failed to decode request"}`,
		},
		{
			name: "Missing password",
			requestBody: `{
				"email": "a@x.com"
			}`,
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Password")
			},
		},
		{
			name: "Unknown email",
			requestBody: `{
				"email": "missing@x.com",
				"password": "Abcdef12"
			}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", "missing@x.com").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","message":"invalid credentials"}`,
		},
		{
			name: "Wrong password",
			requestBody: `{
				"email": "a@x.com",
				"password": "WrongPass1"
			}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", "a@x.com").Return(testUser, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","message":"invalid credentials"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"email": "a@x.com",
				"password": "Abcdef12"
			}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", "a@x.com").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"failed to log in"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUserProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider, testSecret, time.Hour)

			req, err := http.NewRequest("POST", "/api/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
