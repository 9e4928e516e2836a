package models

import (
	"time"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// BankAccount is the payout destination of a withdrawal
type BankAccount struct {
	BankName      string `json:"bank_name" db:"bank_name"`
	AccountNumber string `json:"account_number" db:"account_number"`
	AccountName   string `json:"account_name" db:"account_name"`
}

// Withdrawal is a payout request awaiting admin review
type Withdrawal struct {
	ID string `json:"id" db:"id"`
	UserRef
	Amount int64 `json:"amount" db:"amount"`
	BankAccount
	Status    WithdrawalStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// WithdrawalRequest is submitted by a wallet holder
type WithdrawalRequest struct {
	Email  string `json:"email"`
	Amount int64  `json:"amount"`
	BankAccount
}

// WithdrawalReceipt is returned once a withdrawal has been recorded
type WithdrawalReceipt struct {
	Withdrawal *Withdrawal  `json:"withdrawal"`
	Ledger     LocalLedger  `json:"ledger"`
	Link       *PaymentLink `json:"validation_link"`
}
