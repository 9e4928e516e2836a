package models

import (
	"time"
)

// TransactionStatus represents the settlement state of a remote transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// TransactionType is the ledger category of a transaction
type TransactionType string

const (
	TransactionTypeDeposit          TransactionType = "deposit"
	TransactionTypeWithdrawal       TransactionType = "withdrawal"
	TransactionTypeRefund           TransactionType = "refund"
	TransactionTypeBonus            TransactionType = "bonus"
	TransactionTypeReferralBonus    TransactionType = "referral_bonus"
	TransactionTypeFaircodePurchase TransactionType = "faircode_purchase"
	TransactionTypeWithdrawalFee    TransactionType = "withdrawal_fee"
)

// IsRevenue reports whether completed transactions of this type count towards revenue
func (t TransactionType) IsRevenue() bool {
	return t == TransactionTypeWithdrawalFee || t == TransactionTypeFaircodePurchase
}

// Direction tells whether an entry adds to or removes from the balance
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Transaction is an append-only ledger record in the remote store.
// Amount is signed: credits are positive, debits negative.
type Transaction struct {
	ID          string            `json:"id" db:"id"`
	UserID      string            `json:"user_id" db:"user_id"`
	Type        TransactionType   `json:"type" db:"type"`
	Direction   Direction         `json:"direction" db:"direction"`
	Amount      int64             `json:"amount" db:"amount"`
	Status      TransactionStatus `json:"status" db:"status"`
	Description string            `json:"description" db:"description"`
	ReferenceID string            `json:"reference_id,omitempty" db:"reference_id"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// LocalTransaction is the cached transaction shape kept per user.
// Amount is always positive; Type carries the sign.
type LocalTransaction struct {
	ID          int64     `json:"id"`
	Type        Direction `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Signed returns the amount with the direction applied
func (t LocalTransaction) Signed() int64 {
	if t.Type == DirectionDebit {
		return -t.Amount
	}
	return t.Amount
}

// LedgerEntry is a single balance change fed to the reducer
type LedgerEntry struct {
	Type        Direction `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
}

// LocalLedger is the cached balance and newest-first transaction list of a user
type LocalLedger struct {
	Balance      int64              `json:"balance"`
	Transactions []LocalTransaction `json:"transactions"`
}

// LedgerSummary is the dashboard view of a ledger
type LedgerSummary struct {
	Balance      int64              `json:"balance"`
	TotalCredits int64              `json:"total_credits"`
	TotalDebits  int64              `json:"total_debits"`
	Recent       []LocalTransaction `json:"recent"`
}
