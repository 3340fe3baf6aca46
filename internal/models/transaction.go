package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction type labels
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// TransactionDB represents a transaction row in the database
type TransactionDB struct {
	TransactionID uuid.UUID `json:"id" db:"transaction_id"` // Store-assigned identifier, unique within a user's partition
	UserID        uuid.UUID `json:"-" db:"user_id"`         // Identifier of the owning user
	Type          string    `json:"type" db:"type"`         // Transaction type, e.g. income or expense
	Amount        float64   `json:"amount" db:"amount"`     // Monetary value, currency-agnostic unit
	Category      string    `json:"category" db:"category"` // Free-text label
	CreatedAt     time.Time `json:"-" db:"created_at"`      // Timestamp when the record was created
}
