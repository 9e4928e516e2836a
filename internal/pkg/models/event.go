package models

import "time"

// Ledger event names published after an admin decision commits
const (
	EventWithdrawalApproved = "withdrawal.approved"
	EventWithdrawalRejected = "withdrawal.rejected"
	EventDepositConfirmed   = "deposit.confirmed"
	EventDepositRejected    = "deposit.rejected"
	EventLoanApproved       = "loan.approved"
	EventLoanRejected       = "loan.rejected"
	EventLedgerRepaired     = "ledger.repaired"
)

// LedgerEvent tells the wallet service that a user's remote ledger changed
type LedgerEvent struct {
	Event    string    `json:"event"`
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	RecordID string    `json:"record_id"`
	Amount   int64     `json:"amount"`
	At       time.Time `json:"at"`
}

// AdminLoginRequest is the admin session request body
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminSession is the issued admin token
type AdminSession struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
