package models

// Ledger event actions
const (
	ActionAdd    = "add"
	ActionDelete = "delete"
)

// LedgerEvent represents a ledger mutation published to the event stream.
type LedgerEvent struct {
	EventID       string  `json:"event_id"`           // Unique identifier of the event
	Timestamp     int64   `json:"timestamp"`          // Unix timestamp (in seconds) when the mutation happened
	UserID        string  `json:"user_id"`            // Identifier of the user whose partition changed
	TransactionID string  `json:"transaction_id"`     // Identifier of the affected transaction
	Action        string  `json:"action"`             // Mutation kind, "add" or "delete"
	Type          string  `json:"type,omitempty"`     // Transaction type, set for adds
	Amount        float64 `json:"amount,omitempty"`   // Transaction amount, set for adds
	Category      string  `json:"category,omitempty"` // Transaction category, set for adds
}
