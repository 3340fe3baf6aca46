package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerly/ledger-api/internal/jwt"
	"github.com/ledgerly/ledger-api/internal/logger"
)

// DeleteTokener defines only the methods needed by this handler.
type DeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionDeleter defines the interface that the service must implement.
type TransactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID uuid.UUID, transactionID string) error
}

// DeleteResponse represents a successful delete response
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Success message
	// default: Transaction deleted successfully
	Message string `json:"message"`
}

// DeleteErrorResponse represents an error response for delete
// swagger:model DeleteErrorResponse
type DeleteErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewDeleteHandler returns an HTTP handler for deleting a transaction from the caller's ledger.
// @Summary Delete a transaction
// @Description Removes the transaction with the given id from the caller's partition. Deleting an id that does not exist is a success.
// @Tags ledger
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.DeleteResponse "Transaction deleted successfully"
// @Failure 401 {object} handlers.DeleteErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.DeleteErrorResponse "Store failure"
// @Router /delete/{transactionID} [delete]
// @Security BearerAuth
func NewDeleteHandler(
	svc TransactionDeleter,
	tokenGetter DeleteTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized delete request: missing or invalid authorization header")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Error: err.Error()})
			return
		}

		transactionID := chi.URLParam(r, "transactionID")

		if err := svc.DeleteTransaction(ctx, claims.UserID, transactionID); err != nil {
			logger.Log.Errorw("failed to delete transaction", "userID", claims.UserID, "transactionID", transactionID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{Message: "Transaction deleted successfully"})
	}
}
