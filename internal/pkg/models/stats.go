package models

// Stats is the admin dashboard aggregate
type Stats struct {
	TotalUsers         int   `json:"total_users" db:"total_users"`
	PendingWithdrawals int   `json:"pending_withdrawals" db:"pending_withdrawals"`
	PendingDeposits    int   `json:"pending_deposits" db:"pending_deposits"`
	TotalTransactions  int   `json:"total_transactions" db:"total_transactions"`
	TotalRevenue       int64 `json:"total_revenue" db:"total_revenue"`
}

// PendingItems is the admin review queue
type PendingItems struct {
	Withdrawals []Withdrawal      `json:"withdrawals"`
	Deposits    []Deposit         `json:"deposits"`
	Loans       []LoanApplication `json:"loans"`
}

// SweepReport summarises one reconciliation pass
type SweepReport struct {
	Repaired     int         `json:"repaired"`
	UsersChecked int         `json:"users_checked"`
	Drifts       []UserDrift `json:"drifts,omitempty"`
}

// UserDrift records a user whose balance disagrees with the ledger
type UserDrift struct {
	UserID   string `json:"user_id"`
	Balance  int64  `json:"balance"`
	Expected int64  `json:"expected"`
}
