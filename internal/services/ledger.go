package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ledgerly/ledger-api/internal/logger"
	"github.com/ledgerly/ledger-api/internal/models"
)

// TransactionWriter defines write operations on the transaction store.
type TransactionWriter interface {
	Save(ctx context.Context, userID uuid.UUID, txnType string, amount float64, category string) (uuid.UUID, error) // Appends a transaction, returns the store-assigned id
	Delete(ctx context.Context, userID uuid.UUID, transactionID string) error                                       // Removes a transaction from the user's partition
}

// TransactionReader defines read operations on the transaction store.
type TransactionReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) // Returns all transactions in the user's partition
}

// SummaryCache caches computed ledger summaries per user.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.LedgerSummary, error)          // Returns the cached summary
	Set(ctx context.Context, userID uuid.UUID, summary *models.LedgerSummary) error    // Stores a summary
	Invalidate(ctx context.Context, userID uuid.UUID) error                            // Drops the cached summary
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService handles ledger operations and event publishing.
type LedgerService struct {
	writeRepo   TransactionWriter
	readRepo    TransactionReader
	cacheRepo   SummaryCache
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	writeRepo TransactionWriter,
	readRepo TransactionReader,
	cacheRepo SummaryCache,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a ledger event to Kafka. Best effort: failures are logged only.
func (s *LedgerService) publishEvent(ctx context.Context, event models.LedgerEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}

// invalidateSummary drops the user's cached summary. Cache failures never fail the request.
func (s *LedgerService) invalidateSummary(ctx context.Context, userID uuid.UUID) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate summary cache", "userID", userID, "error", err)
	}
}

// AddTransaction appends a transaction to the user's partition and publishes the event.
func (s *LedgerService) AddTransaction(ctx context.Context, userID uuid.UUID, txnType string, amount float64, category string) error {
	transactionID, err := s.writeRepo.Save(ctx, userID, txnType, amount, category)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", userID, "type", txnType, "amount", amount, "category", category, "error", err)
		return err
	}

	s.invalidateSummary(ctx, userID)

	event := models.LedgerEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		UserID:        userID.String(),
		TransactionID: transactionID.String(),
		Action:        models.ActionAdd,
		Type:          txnType,
		Amount:        amount,
		Category:      category,
	}
	s.publishEvent(ctx, event)

	return nil
}

// ListTransactions returns the user's transactions with totals derived at read time.
// Totals are plain sums, so the result does not depend on store iteration order.
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID) (*models.LedgerSummary, error) {
	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	transactions, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, err
	}
	if transactions == nil {
		transactions = []models.TransactionDB{}
	}

	var totalIncome, totalExpense float64
	for _, txn := range transactions {
		if txn.Type == models.TypeIncome {
			totalIncome += txn.Amount
		} else {
			// Any non-income type counts toward expenses
			totalExpense += txn.Amount
		}
	}

	summary := &models.LedgerSummary{
		Transactions: transactions,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome - totalExpense,
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, userID, summary); err != nil {
			logger.Log.Errorw("failed to cache summary", "userID", userID, "error", err)
		}
	}

	return summary, nil
}

// DeleteTransaction removes a transaction from the user's partition and publishes the event.
// Deleting an id that does not exist in the partition is a success.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID uuid.UUID, transactionID string) error {
	if err := s.writeRepo.Delete(ctx, userID, transactionID); err != nil {
		logger.Log.Errorw("failed to delete transaction", "userID", userID, "transactionID", transactionID, "error", err)
		return err
	}

	s.invalidateSummary(ctx, userID)

	event := models.LedgerEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		UserID:        userID.String(),
		TransactionID: transactionID,
		Action:        models.ActionDelete,
	}
	s.publishEvent(ctx, event)

	return nil
}
