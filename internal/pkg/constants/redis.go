package constants

// Redis key formats of the local ledger cache
const (
	KeyUserBalance      = "userBalance_%s"      // Format: userBalance_{email}
	KeyUserTransactions = "userTransactions_%s" // Format: userTransactions_{email}
	KeyUserProfile      = "userProfile_%s"      // Format: userProfile_{email}
	KeyHasVisited       = "hasVisitedLanding"
	KeyCurrentUser      = "currentUser"

	KeyReferralCode     = "userReferralCode_%s" // Format: userReferralCode_{email}
	KeyPendingReferrals = "pendingReferrals_%s" // Format: pendingReferrals_{code}
	KeyReferralData     = "referralData_%s"     // Format: referralData_{email}
	KeyMonthlyBonuses   = "monthlyBonuses_%s"   // Format: monthlyBonuses_{email}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Redis hash fields of userProfile_{email}
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
	FieldBVN         = "bvn"
	FieldAddress     = "address"
)
