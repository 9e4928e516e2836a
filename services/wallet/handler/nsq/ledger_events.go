package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	nsqpkg "github.com/piresc/fairpay/internal/pkg/nsq"
	"github.com/piresc/fairpay/services/wallet"
)

const handleTimeout = 10 * time.Second

// LedgerEventHandler resyncs cached wallets when an admin decision lands
type LedgerEventHandler struct {
	walletUC wallet.WalletUC
	consumer *nsqpkg.Consumer
}

// NewLedgerEventHandler creates a new ledger event handler
func NewLedgerEventHandler(walletUC wallet.WalletUC) *LedgerEventHandler {
	return &LedgerEventHandler{walletUC: walletUC}
}

// InitConsumer subscribes to the ledger event topic and connects to
// lookupd when configured, otherwise straight to nsqd
func (h *LedgerEventHandler) InitConsumer(cfg models.NSQConfig) error {
	consumer, err := nsqpkg.NewConsumer(cfg.Topic, cfg.Channel, h.Handle)
	if err != nil {
		return err
	}

	if cfg.LookupdAddress != "" {
		err = consumer.ConnectToLookupd([]string{cfg.LookupdAddress})
	} else {
		err = consumer.ConnectToNSQD(cfg.Address)
	}
	if err != nil {
		consumer.Stop()
		return fmt.Errorf("failed to start ledger event consumer: %w", err)
	}

	h.consumer = consumer
	logger.Info("Ledger event consumer started",
		logger.String("topic", cfg.Topic),
		logger.String("channel", cfg.Channel))
	return nil
}

// Handle processes one ledger event message. Malformed or orphaned events
// are dropped; anything else is returned so NSQ requeues it.
func (h *LedgerEventHandler) Handle(body []byte) error {
	var event models.LedgerEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Warn("Dropping malformed ledger event", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	err := h.walletUC.HandleLedgerEvent(ctx, event)
	switch {
	case err == nil:
		logger.Debug("Ledger event applied",
			logger.String("event", event.Event),
			logger.String("user_id", event.UserID))
		return nil
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrMissingField):
		logger.Warn("Dropping ledger event",
			logger.String("event", event.Event),
			logger.String("user_id", event.UserID),
			logger.Err(err))
		return nil
	}
	return err
}

// Stop drains the consumer
func (h *LedgerEventHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
