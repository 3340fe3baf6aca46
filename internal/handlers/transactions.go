package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ledgerly/ledger-api/internal/jwt"
	"github.com/ledgerly/ledger-api/internal/logger"
	"github.com/ledgerly/ledger-api/internal/models"
)

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// LedgerSummaryReader defines the interface that the service must implement.
type LedgerSummaryReader interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) (*models.LedgerSummary, error)
}

// TransactionView is one transaction as returned to the caller
// swagger:model TransactionView
type TransactionView struct {
	// Transaction type
	// default: expense
	Type string `json:"type"`

	// Amount
	// default: 30.0
	Amount float64 `json:"amount"`

	// Category label
	// default: food
	Category string `json:"category"`

	// Store-assigned identifier
	ID string `json:"id"`
}

// TransactionsResponse represents the aggregated ledger view
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// All transactions in the caller's partition
	Transactions []TransactionView `json:"transactions"`

	// Sum of amounts with type income
	TotalIncome float64 `json:"total_income"`

	// Sum of amounts with any other type
	TotalExpense float64 `json:"total_expense"`

	// TotalIncome - TotalExpense
	Balance float64 `json:"balance"`
}

// TransactionsErrorResponse represents an error response when listing transactions
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewTransactionsHandler returns an HTTP handler for listing the caller's transactions with totals.
// @Summary List transactions
// @Description Returns all transactions in the caller's partition plus total income, total expense, and balance derived at read time.
// @Tags ledger
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Aggregated ledger view"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Store failure"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(
	svc LedgerSummaryReader,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized transactions request: missing or invalid authorization header")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: err.Error()})
			return
		}

		summary, err := svc.ListTransactions(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: err.Error()})
			return
		}

		transactions := make([]TransactionView, 0, len(summary.Transactions))
		for _, txn := range summary.Transactions {
			transactions = append(transactions, TransactionView{
				Type:     txn.Type,
				Amount:   txn.Amount,
				Category: txn.Category,
				ID:       txn.TransactionID.String(),
			})
		}

		resp := TransactionsResponse{
			Transactions: transactions,
			TotalIncome:  summary.TotalIncome,
			TotalExpense: summary.TotalExpense,
			Balance:      summary.Balance,
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
