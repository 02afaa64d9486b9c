package register

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventix/internal/http-server/handlers/user/register/mocks"
	"eventix/internal/lib/logger/handlers/slogdiscard"
	"eventix/internal/storage"
)

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserSaver)
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
			mockSetup: func(m *mocks.UserSaver) {
				m.On("SaveUser", mock.MatchedBy(func(u storage.NewUser) bool {
					return u.Email == "a@x.com" && u.PasswordHash != "" && u.PasswordHash != "Abcdef12"
				})).Return(42, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp RegisterResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 42, resp.UserID)
			},
		},
		{
			name: "Success with profile fields",
			requestBody: `{
				"email": "b@x.com",
				"password": "Abcdef12",
				"first_name": "Ada",
				"last_name": "Lovelace",
				"phone_number": "+905551234567",
				"date_of_birth": "1990-01-02"
			}`,
			mockSetup: func(m *mocks.UserSaver) {
				m.On("SaveUser", mock.MatchedBy(func(u storage.NewUser) bool {
					return u.Email == "b@x.com" &&
						u.FirstName == "Ada" &&
						u.PhoneNumber == "+905551234567" &&
						u.DateOfBirth == "1990-01-02"
				})).Return(7, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"failed to decode request"}`,
		},
		{
			name: "Missing email",
			requestBody: `{
				"password": "Abcdef12"
			}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name: "Invalid email",
			requestBody: `{
				"email": "not-an-email",
				"password": "Abcdef12"
			}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name: "Password too short",
			requestBody: `{
				"email": "a@x.com",
				"password": "Ab1"
			}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Password")
			},
		},
		{
			name: "Password without digit",
			requestBody: `{
				"email": "a@x.com",
				"password": "Abcdefgh"
			}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"password must be at least 8 characters with upper case, lower case and a digit"}`,
		},
		{
			name: "Password without upper case",
			requestBody: `{
				"email": "a@x.com",
				"password": "abcdef12"
			}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"password must be at least 8 characters with upper case, lower case and a digit"}`,
		},
		{
			name: "Invalid phone number",
			requestBody: `{
				"email": "a@x.com",
				"password": "Abcdef12",
				"phone_number": "05551234567"
			}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"invalid phone number format"}`,
		},
		{
			name: "Duplicate email",
			requestBody: `{
				"email": "a@x.com",
				"password": "Abcdef12"
			}`,
			mockSetup: func(m *mocks.UserSaver) {
				m.On("SaveUser", mock.AnythingOfType("storage.NewUser")).
					Return(0, storage.ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","message":"email already registered"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"email": "a@x.com",
				"password": "Abcdef12"
			}`,
			mockSetup: func(m *mocks.UserSaver) {
				m.On("SaveUser", mock.AnythingOfType("storage.NewUser")).
					Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"failed to register user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewUserSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest("POST", "/api/register", bytes.NewBufferString(tc.requestBody))
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

func TestPasswordAcceptable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password string
		ok       bool
	}{
		{"Abcdef12", true},
		{"abcdef12", false},
		{"ABCDEF12", false},
		{"Abcdefgh", false},
		{"Ab1", false},
		{"", false},
		{"LongEnough9", true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.ok, passwordAcceptable(tc.password), "password %q", tc.password)
	}
}
