package models

// Collection names a record set in the remote store
type Collection string

const (
	CollectionUsers        Collection = "users"
	CollectionTransactions Collection = "transactions"
	CollectionWithdrawals  Collection = "withdrawals"
	CollectionDeposits     Collection = "deposits"
	CollectionLoans        Collection = "loans"
)

// Query selects records for a live subscription. Empty filters match everything.
// Results are always ordered newest first.
type Query struct {
	Collection Collection `json:"collection"`
	Status     string     `json:"status,omitempty"`
	UserID     string     `json:"user_id,omitempty"`
}

// Snapshot is the full current result set of a Query.
// Only the slice matching the queried collection is populated.
type Snapshot struct {
	Collection   Collection        `json:"collection"`
	Users        []User            `json:"users,omitempty"`
	Transactions []Transaction     `json:"transactions,omitempty"`
	Withdrawals  []Withdrawal      `json:"withdrawals,omitempty"`
	Deposits     []Deposit         `json:"deposits,omitempty"`
	Loans        []LoanApplication `json:"loans,omitempty"`
}

// Len returns the number of records in the snapshot
func (s Snapshot) Len() int {
	switch s.Collection {
	case CollectionUsers:
		return len(s.Users)
	case CollectionTransactions:
		return len(s.Transactions)
	case CollectionWithdrawals:
		return len(s.Withdrawals)
	case CollectionDeposits:
		return len(s.Deposits)
	case CollectionLoans:
		return len(s.Loans)
	}
	return 0
}
