package models

import (
	"time"
)

// LoanStatus represents the lifecycle state of a loan application
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
)

// Employment is the employment snapshot captured with a loan application
type Employment struct {
	EmploymentStatus string `json:"employment_status" db:"employment_status"`
	MonthlyIncome    int64  `json:"monthly_income" db:"monthly_income"`
	Employer         string `json:"employer,omitempty" db:"employer"`
}

// LoanApplication is a gated loan request awaiting admin review
type LoanApplication struct {
	ID string `json:"id" db:"id"`
	UserRef
	Amount   int64  `json:"amount" db:"amount"`
	Purpose  string `json:"purpose" db:"purpose"`
	Duration int    `json:"duration" db:"duration"` // months
	Employment
	Status    LoanStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// LoanRequest is submitted by a wallet holder together with the action code
type LoanRequest struct {
	Email    string `json:"email"`
	Amount   int64  `json:"amount"`
	Purpose  string `json:"purpose"`
	Duration int    `json:"duration"`
	Employment
	FairCode string `json:"faircode"`
}

// AirtimeRequest is a gated airtime order
type AirtimeRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Network     string `json:"network"`
	Amount      int64  `json:"amount"`
	FairCode    string `json:"faircode"`
}
