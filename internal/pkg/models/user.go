package models

import (
	"time"
)

// User represents a wallet holder
type User struct {
	ID            string    `json:"uid" db:"id"`
	Email         string    `json:"email" db:"email"`
	Name          string    `json:"name" db:"name"`
	Balance       int64     `json:"balance" db:"balance"`
	Faircode      bool      `json:"faircode" db:"faircode"`
	FaircodeValue string    `json:"faircode_value,omitempty" db:"faircode_value"`
	PhoneNumber   string    `json:"phone_number,omitempty" db:"phone_number"`
	BVN           string    `json:"bvn,omitempty" db:"bvn"`
	Address       string    `json:"address,omitempty" db:"address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// UserRef is the denormalised owner snapshot stored on withdrawals, deposits and loans
type UserRef struct {
	UserID    string `json:"user_id" db:"user_id"`
	UserEmail string `json:"user_email" db:"user_email"`
	UserName  string `json:"user_name" db:"user_name"`
}

// Ref returns the owner snapshot of the user
func (u *User) Ref() UserRef {
	return UserRef{
		UserID:    u.ID,
		UserEmail: u.Email,
		UserName:  u.Name,
	}
}

// UserProfile holds the editable profile fields kept next to the local ledger
type UserProfile struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	BVN         string `json:"bvn,omitempty"`
	Address     string `json:"address,omitempty"`
}

// SessionRequest opens a wallet session for an email
type SessionRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// Session is the state returned when a wallet session is opened
type Session struct {
	User         *User       `json:"user"`
	Ledger       LocalLedger `json:"ledger"`
	ReferralCode string      `json:"referral_code"`
	Created      bool        `json:"created"`
}
