package models

// LedgerSummary is the aggregated view of one user's partition:
// the full transaction list plus totals derived at read time.
type LedgerSummary struct {
	Transactions []TransactionDB `json:"transactions"`  // All transactions in the user's partition
	TotalIncome  float64         `json:"total_income"`  // Sum of amounts with type "income"
	TotalExpense float64         `json:"total_expense"` // Sum of amounts with any other type
	Balance      float64         `json:"balance"`       // TotalIncome - TotalExpense
}
