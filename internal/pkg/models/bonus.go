package models

// MonthlyBonus is one month of the yearly bonus calendar
type MonthlyBonus struct {
	Month     string `json:"month"`
	Amount    int64  `json:"amount"`
	Claimed   bool   `json:"claimed"`
	Available bool   `json:"available"`
}

// ReferralData accumulates the referral bonuses paid to a user
type ReferralData struct {
	TotalReferrals int   `json:"totalReferrals"`
	TotalEarnings  int64 `json:"totalEarnings"`
}

// ReferralSummary is what the referral page shows
type ReferralSummary struct {
	Code    string       `json:"code"`
	Pending int64        `json:"pending"`
	Data    ReferralData `json:"data"`
}

// BonusClaimRequest is the body of a one-off bonus claim
type BonusClaimRequest struct {
	Amount int64 `json:"amount"`
}
