package models

import (
	"time"
)

// DepositStatus represents the lifecycle state of a deposit
type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusRejected  DepositStatus = "rejected"
)

// DepositCategory tells what an off-platform payment was for
type DepositCategory string

const (
	DepositCategoryFaircode      DepositCategory = "FairCode"
	DepositCategoryWithdrawalFee DepositCategory = "Withdrawal Fee"
	DepositCategoryBonus         DepositCategory = "Bonus"
	DepositCategoryDeposit       DepositCategory = "Deposit"
)

// TransactionType maps the category to the ledger type written on confirmation
func (c DepositCategory) TransactionType() TransactionType {
	switch c {
	case DepositCategoryFaircode:
		return TransactionTypeFaircodePurchase
	case DepositCategoryWithdrawalFee:
		return TransactionTypeWithdrawalFee
	case DepositCategoryBonus:
		return TransactionTypeBonus
	default:
		return TransactionTypeDeposit
	}
}

// Valid reports whether c is a known category
func (c DepositCategory) Valid() bool {
	switch c {
	case DepositCategoryFaircode, DepositCategoryWithdrawalFee, DepositCategoryBonus, DepositCategoryDeposit:
		return true
	}
	return false
}

// Deposit is an off-platform payment claim awaiting admin confirmation
type Deposit struct {
	ID string `json:"id" db:"id"`
	UserRef
	Amount    int64           `json:"amount" db:"amount"`
	Category  DepositCategory `json:"type" db:"category"`
	Status    DepositStatus   `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// DepositRequest is submitted by a wallet holder before paying off-platform
type DepositRequest struct {
	Email    string          `json:"email"`
	Amount   int64           `json:"amount"`
	Category DepositCategory `json:"type"`
}

// PaymentLink is an external redirect handed back to the client
type PaymentLink struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// DepositReceipt is returned once a deposit claim has been recorded
type DepositReceipt struct {
	Deposit *Deposit     `json:"deposit"`
	Link    *PaymentLink `json:"payment_link"`
}
