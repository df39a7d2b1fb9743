package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/metricmind/habit-health-api/internal/models"
)

func TestListHabitsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		target          string
		activeOnly      bool
		mockSetup       func(m *MockHabitLister, activeOnly bool)
		expectedCode    int
		expectedMessage string
		expectedSuccess bool
	}{
		{
			name:       "all habits",
			target:     "/api/v1/habits",
			activeOnly: false,
			mockSetup: func(m *MockHabitLister, activeOnly bool) {
				m.EXPECT().
					List(gomock.Any(), int64(1), activeOnly).
					Return([]models.HabitDB{{ID: 1, UserID: 1, Title: "Run"}}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Habits retrieved successfully",
			expectedSuccess: true,
		},
		{
			name:       "active filter",
			target:     "/api/v1/habits?active=true",
			activeOnly: true,
			mockSetup: func(m *MockHabitLister, activeOnly bool) {
				m.EXPECT().
					List(gomock.Any(), int64(1), activeOnly).
					Return([]models.HabitDB{}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Habits retrieved successfully",
			expectedSuccess: true,
		},
		{
			name:       "internal server error",
			target:     "/api/v1/habits",
			activeOnly: false,
			mockSetup: func(m *MockHabitLister, activeOnly bool) {
				m.EXPECT().
					List(gomock.Any(), int64(1), activeOnly).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHabitLister(ctrl)
			tt.mockSetup(mockSvc, tt.activeOnly)

			handler := NewListHabitsHandler(mockSvc)

			req := authedRequest(http.MethodGet, tt.target, nil, 1)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			resp := decodeResponse(t, rr.Body.Bytes())
			assert.Equal(t, tt.expectedSuccess, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestListHabitsHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewListHabitsHandler(NewMockHabitLister(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateHabitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		reqBody         CreateHabitRequest
		mockSetup       func(m *MockHabitCreator)
		expectedCode    int
		expectedMessage string
		expectedSuccess bool
	}{
		{
			name:    "success",
			reqBody: CreateHabitRequest{Title: "Run", Description: "5km", Frequency: models.FrequencyDaily},
			mockSetup: func(m *MockHabitCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(1), "Run", "5km", models.FrequencyDaily).
					Return(&models.HabitDB{ID: 1, UserID: 1, Title: "Run", IsActive: true}, nil)
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "Habit created successfully",
			expectedSuccess: true,
		},
		{
			name:            "missing title",
			reqBody:         CreateHabitRequest{Frequency: models.FrequencyDaily},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid input data",
		},
		{
			name:            "bad frequency",
			reqBody:         CreateHabitRequest{Title: "Run", Frequency: "hourly"},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid input data",
		},
		{
			name:    "internal server error",
			reqBody: CreateHabitRequest{Title: "Run", Frequency: models.FrequencyDaily},
			mockSetup: func(m *MockHabitCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(1), "Run", "", models.FrequencyDaily).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHabitCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateHabitHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := authedRequest(http.MethodPost, "/api/v1/habits", bytes.NewBuffer(bodyBytes), 1)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			resp := decodeResponse(t, rr.Body.Bytes())
			assert.Equal(t, tt.expectedSuccess, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
