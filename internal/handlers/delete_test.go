package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerly/ledger-api/internal/jwt"
)

func TestDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockDeleteTokener(ctrl)
	mockDeleter := NewMockTransactionDeleter(ctrl)

	userID := uuid.New()
	token := "valid-token"
	transactionID := uuid.NewString()

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string // "message" or "error"
	}{
		{
			name: "successful delete",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
				mockDeleter.EXPECT().DeleteTransaction(gomock.Any(), userID, transactionID).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
		},
		{
			name: "unauthorized missing header",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name: "unauthorized invalid token",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name: "store error",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: userID}, nil)
				mockDeleter.EXPECT().DeleteTransaction(gomock.Any(), userID, transactionID).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			r := chi.NewRouter()
			r.Delete("/delete/{transactionID}", NewDeleteHandler(mockDeleter, mockTokenGetter))

			req := httptest.NewRequest(http.MethodDelete, "/delete/"+transactionID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
