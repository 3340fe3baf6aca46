package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ledgerly/ledger-api/internal/jwt"
	"github.com/ledgerly/ledger-api/internal/logger"
)

// AddTokener defines only the methods needed by this handler.
type AddTokener interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionAdder defines the interface that the service must implement.
type TransactionAdder interface {
	AddTransaction(ctx context.Context, userID uuid.UUID, txnType string, amount float64, category string) error
}

// AddRequest represents the JSON body for adding a transaction
// swagger:model AddRequest
type AddRequest struct {
	// Bearer credential proving caller identity
	// required: true
	Token string `json:"token"`

	// Transaction type, income or expense
	// required: true
	// default: expense
	Type string `json:"type"`

	// Amount in currency-agnostic units
	// required: true
	// default: 30.0
	Amount float64 `json:"amount"`

	// Free-text category label
	// required: true
	// default: food
	Category string `json:"category"`
}

// AddResponse represents a successful add response
// swagger:model AddResponse
type AddResponse struct {
	// Success message
	// default: Transaction added successfully
	Message string `json:"message"`
}

// AddErrorResponse represents an error response for add
// swagger:model AddErrorResponse
type AddErrorResponse struct {
	// Error message
	// default: Missing transaction fields
	Error string `json:"error"`
}

// NewAddHandler returns an HTTP handler for adding a transaction to the caller's ledger.
// @Summary Add a transaction
// @Description Verifies the token carried in the JSON body, validates the transaction fields, and appends the record to the caller's partition. Zero amounts and empty strings count as missing fields.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body handlers.AddRequest true "Add Request"
// @Success 200 {object} handlers.AddResponse "Transaction added successfully"
// @Failure 400 {object} handlers.AddErrorResponse "Missing body or transaction fields"
// @Failure 401 {object} handlers.AddErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.AddErrorResponse "Store failure"
// @Router /add [post]
func NewAddHandler(
	svc TransactionAdder,
	tokenGetter AddTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req AddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode add request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddErrorResponse{Error: "No data provided"})
			return
		}

		if req.Token == "" {
			logger.Log.Error("add request without token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AddErrorResponse{Error: "No token provided"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, req.Token)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AddErrorResponse{Error: err.Error()})
			return
		}

		// Zero values double as missing values here: empty strings, 0 and
		// JSON null are all rejected, matching the clients this API serves.
		if req.Type == "" || req.Amount == 0 || req.Category == "" {
			logger.Log.Warnw("missing transaction fields", "type", req.Type, "amount", req.Amount, "category", req.Category)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddErrorResponse{Error: "Missing transaction fields"})
			return
		}

		if err := svc.AddTransaction(ctx, claims.UserID, req.Type, req.Amount, req.Category); err != nil {
			logger.Log.Errorw("failed to add transaction", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AddErrorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddResponse{Message: "Transaction added successfully"})
	}
}
