package constants

// NATS subjects
const (
	// SubjectChangesPrefix prefixes the per-collection change subjects of the remote store
	SubjectChangesPrefix = "fairpay.changes."
)

// NSQ topics and channels
const (
	TopicLedgerEvents = "ledger_events"
	ChannelWallet     = "wallet"
)
