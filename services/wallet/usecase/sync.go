package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/fairpay/internal/pkg/ledger"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/utils"
)

const watchSyncTimeout = 5 * time.Second

// toLocal converts the remote view of a user into the cached ledger shape.
// txs arrive newest first; failed transactions are left out. Local ids are
// creation milliseconds, bumped so that they stay strictly increasing.
func toLocal(balance int64, txs []models.Transaction) models.LocalLedger {
	kept := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Status == models.TransactionStatusFailed {
			continue
		}
		kept = append(kept, tx)
	}

	local := make([]models.LocalTransaction, len(kept))
	var prev int64
	for i := len(kept) - 1; i >= 0; i-- {
		tx := kept[i]
		id := tx.CreatedAt.UnixMilli()
		if id <= prev {
			id = prev + 1
		}
		prev = id

		amount := tx.Amount
		if amount < 0 {
			amount = -amount
		}
		local[i] = models.LocalTransaction{
			ID:          id,
			Type:        tx.Direction,
			Amount:      amount,
			Description: tx.Description,
			Date:        tx.CreatedAt,
		}
	}

	return models.LocalLedger{Balance: balance, Transactions: local}
}

// SyncFromRemote overwrites the local cache with the remote balance and transactions
func (uc *walletUC) SyncFromRemote(ctx context.Context, email string) (models.LocalLedger, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.LocalLedger{}, err
	}

	unlock := uc.lockEmail(email)
	defer unlock()
	return uc.resyncLocked(ctx, email)
}

// resyncLocked expects the email lock to be held
func (uc *walletUC) resyncLocked(ctx context.Context, email string) (models.LocalLedger, error) {
	user, err := uc.remote.GetUserByEmail(ctx, email)
	if err != nil {
		return models.LocalLedger{}, fmt.Errorf("failed to sync ledger: %w", err)
	}
	txs, err := uc.remote.ListTransactions(ctx, user.ID)
	if err != nil {
		return models.LocalLedger{}, fmt.Errorf("failed to sync ledger: %w", err)
	}
	return uc.storeRemote(ctx, email, user.Balance, txs)
}

func (uc *walletUC) storeRemote(ctx context.Context, email string, balance int64, txs []models.Transaction) (models.LocalLedger, error) {
	l := toLocal(balance, txs)
	uc.ids.Observe(ledger.MaxID(l.Transactions))

	if err := uc.local.Save(ctx, email, l); err != nil {
		return models.LocalLedger{}, fmt.Errorf("failed to save synced ledger: %w", err)
	}
	return l, nil
}

// applyLocal mirrors a committed remote balance change into the local cache.
// When a live watch already delivered the change the cache is left alone;
// when the reducer cannot reproduce the remote balance the cache is rebuilt.
func (uc *walletUC) applyLocal(ctx context.Context, email string, entry models.LedgerEntry, remoteBalance int64) (models.LocalLedger, error) {
	unlock := uc.lockEmail(email)
	defer unlock()

	current, err := uc.local.Load(ctx, email)
	if err != nil {
		return models.LocalLedger{}, err
	}
	if current.Balance == remoteBalance && headMatches(current, entry) {
		return current, nil
	}

	next, _, err := ledger.Apply(current, entry, uc.ids)
	if err != nil || next.Balance != remoteBalance {
		logger.Warn("Local ledger out of step with remote, resyncing",
			logger.String("email", utils.MaskEmail(email)),
			logger.Int64("local_balance", current.Balance),
			logger.Int64("remote_balance", remoteBalance))
		return uc.resyncLocked(ctx, email)
	}

	if err := uc.local.Save(ctx, email, next); err != nil {
		return models.LocalLedger{}, fmt.Errorf("failed to save ledger: %w", err)
	}
	return next, nil
}

func headMatches(l models.LocalLedger, entry models.LedgerEntry) bool {
	if len(l.Transactions) == 0 {
		return false
	}
	head := l.Transactions[0]
	return head.Type == entry.Type && head.Amount == entry.Amount && head.Description == entry.Description
}

// Watch keeps the local cache of email in step with its remote transactions
// until Unwatch or Close. Watching an already watched email is a no-op.
func (uc *walletUC) Watch(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	uc.watchMu.Lock()
	defer uc.watchMu.Unlock()
	if _, ok := uc.watches[email]; ok {
		return nil
	}

	user, err := uc.remote.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to watch ledger: %w", err)
	}

	q := models.Query{Collection: models.CollectionTransactions, UserID: user.ID}
	unsubscribe, err := uc.remote.Subscribe(uc.life, q, func(snap models.Snapshot) {
		uc.onRemoteChange(email, user.ID, snap.Transactions)
	})
	if err != nil {
		return fmt.Errorf("failed to watch ledger: %w", err)
	}

	uc.watches[email] = unsubscribe
	logger.Debug("Watching remote ledger", logger.String("email", utils.MaskEmail(email)))
	return nil
}

func (uc *walletUC) onRemoteChange(email, userID string, txs []models.Transaction) {
	ctx, cancel := context.WithTimeout(uc.life, watchSyncTimeout)
	defer cancel()

	user, err := uc.remote.GetUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to read balance for live sync",
			logger.String("user_id", userID),
			logger.Err(err))
		return
	}

	unlock := uc.lockEmail(email)
	defer unlock()
	if _, err := uc.storeRemote(ctx, email, user.Balance, txs); err != nil {
		logger.Error("Failed to apply live ledger change",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// Unwatch detaches the live subscription of email, if any
func (uc *walletUC) Unwatch(email string) {
	email = utils.NormalizeEmail(email)

	uc.watchMu.Lock()
	unsubscribe, ok := uc.watches[email]
	delete(uc.watches, email)
	uc.watchMu.Unlock()

	if ok {
		unsubscribe()
	}
}

// HandleLedgerEvent resyncs the user an admin decision was made for
func (uc *walletUC) HandleLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	email := event.Email
	if email == "" {
		if event.UserID == "" {
			return fmt.Errorf("ledger event %s without user: %w", event.Event, models.ErrMissingField)
		}
		user, err := uc.remote.GetUser(ctx, event.UserID)
		if err != nil {
			return fmt.Errorf("failed to resolve ledger event user: %w", err)
		}
		email = user.Email
	}

	l, err := uc.SyncFromRemote(ctx, email)
	if err != nil {
		return err
	}

	logger.Info("Ledger resynced from event",
		logger.String("event", event.Event),
		logger.String("record_id", event.RecordID),
		logger.Int64("balance", l.Balance))
	return nil
}
