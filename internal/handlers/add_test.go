package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerly/ledger-api/internal/jwt"
)

func TestAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAddTokener(ctrl)
	mockAdder := NewMockTransactionAdder(ctrl)

	userID := uuid.New()
	token := "valid-token"

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string // "message" or "error"
		expectedValue  string
	}{
		{
			name: "successful add",
			body: `{"token":"valid-token","type":"expense","amount":30,"category":"food"}`,
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
				mockAdder.EXPECT().AddTransaction(gomock.Any(), userID, "expense", 30.0, "food").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Transaction added successfully",
		},
		{
			name:           "unparseable body",
			body:           `{not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  "No data provided",
		},
		{
			name:           "missing token",
			body:           `{"type":"expense","amount":30,"category":"food"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
			expectedValue:  "No token provided",
		},
		{
			name: "invalid token echoes verifier message",
			body: `{"token":"valid-token","type":"expense","amount":30,"category":"food"}`,
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(nil, errors.New("token is expired"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
			expectedValue:  "token is expired",
		},
		{
			name: "missing type",
			body: `{"token":"valid-token","amount":30,"category":"food"}`,
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  "Missing transaction fields",
		},
		{
			name: "zero amount counts as missing",
			body: `{"token":"valid-token","type":"expense","amount":0,"category":"food"}`,
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  "Missing transaction fields",
		},
		{
			name: "null category counts as missing",
			body: `{"token":"valid-token","type":"expense","amount":30,"category":null}`,
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  "Missing transaction fields",
		},
		{
			name: "store error",
			body: `{"token":"valid-token","type":"income","amount":100,"category":"salary"}`,
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
				mockAdder.EXPECT().AddTransaction(gomock.Any(), userID, "income", 100.0, "salary").
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
			expectedValue:  "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewAddHandler(mockAdder, mockTokenGetter)

			req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			val, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
			assert.Equal(t, tt.expectedValue, val)
		})
	}
}
