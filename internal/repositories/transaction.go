package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ledgerly/ledger-api/internal/logger"
	"github.com/ledgerly/ledger-api/internal/models"
)

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a transaction to the user's partition and returns the store-assigned id.
func (r *TransactionWriteRepository) Save(ctx context.Context, userID uuid.UUID, txnType string, amount float64, category string) (uuid.UUID, error) {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, amount, category, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING transaction_id
	`
	args := []any{uuid.New(), userID, txnType, amount, category}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var transactionID uuid.UUID
	err := sqlx.GetContext(ctx, executor, &transactionID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", transactionID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return transactionID, nil
}

// Delete removes a transaction from the user's partition. Unknown or malformed
// ids match nothing, which counts as success.
func (r *TransactionWriteRepository) Delete(ctx context.Context, userID uuid.UUID, transactionID string) error {
	query := `
		DELETE FROM transactions
		WHERE user_id = $1
		  AND transaction_id::TEXT = $2
	`
	args := []any{userID, transactionID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByUserID retrieves all transactions in the user's partition. Order is not guaranteed.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, amount, category, created_at
		FROM transactions
		WHERE user_id = $1
	`

	var transactions []models.TransactionDB
	err := r.db.SelectContext(ctx, &transactions, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(transactions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return transactions, nil
}
