package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventix/internal/http-server/handlers/event/createEvent/mocks"
	"eventix/internal/http-server/middleware/auth"
	"eventix/internal/lib/jwt"
	"eventix/internal/lib/logger/handlers/slogdiscard"
	"eventix/internal/models"
	"eventix/internal/storage"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)
	organizerClaims := &jwt.Claims{
		UserID: 5,
		Email:  "org@x.com",
		Role:   models.RoleBusiness,
	}

	testCases := []struct {
		name           string
		requestBody    string
		claims         *jwt.Claims
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"name": "Jazz Night",
				"description": "An evening of jazz",
				"event_date": "2026-12-25T18:00:00Z",
				"location": "Blue Hall",
				"category": "concert",
				"ticket_types": [
					{"name": "Standard", "price": 100, "capacity": 200},
					{"name": "VIP", "price": 250.50, "capacity": 20}
				]
			}`,
			claims: organizerClaims,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", 5, mock.MatchedBy(func(ev storage.NewEvent) bool {
					return ev.Name == "Jazz Night" &&
						ev.EventDate.Equal(testTime) &&
						len(ev.TicketTypes) == 2 &&
						ev.TicketTypes[0].Price.String() == "100" &&
						ev.TicketTypes[1].Capacity == 20
				})).Return(123, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 123, resp.EventID)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			claims:         organizerClaims,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"failed to decode request"}`,
		},
		{
			name: "Missing name",
			requestBody: `{
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": [{"name": "Standard", "price": 100, "capacity": 200}]
			}`,
			claims:         organizerClaims,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "No ticket types",
			requestBody: `{
				"name": "Jazz Night",
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": []
			}`,
			claims:         organizerClaims,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "TicketTypes")
			},
		},
		{
			name: "Ticket type without name",
			requestBody: `{
				"name": "Jazz Night",
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": [{"price": 100, "capacity": 200}]
			}`,
			claims:         organizerClaims,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "Negative price",
			requestBody: `{
				"name": "Jazz Night",
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": [{"name": "Standard", "price": -5, "capacity": 200}]
			}`,
			claims:         organizerClaims,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"ticket type price must not be negative"}`,
		},
		{
			name: "Zero capacity",
			requestBody: `{
				"name": "Jazz Night",
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": [{"name": "Standard", "price": 100, "capacity": 0}]
			}`,
			claims:         organizerClaims,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Capacity")
			},
		},
		{
			name: "No claims in context",
			requestBody: `{
				"name": "Jazz Night",
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": [{"name": "Standard", "price": 100, "capacity": 200}]
			}`,
			claims:         nil,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","message":"authorization required"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"name": "Jazz Night",
				"event_date": "2026-12-25T18:00:00Z",
				"ticket_types": [{"name": "Standard", "price": 100, "capacity": 200}]
			}`,
			claims: organizerClaims,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", 5, mock.AnythingOfType("storage.NewEvent")).
					Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.claims != nil {
				req = req.WithContext(auth.WithClaims(req.Context(), tc.claims))
			}

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
