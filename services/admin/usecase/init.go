package usecase

import (
	"context"
	"errors"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/services/admin"
)

// adminUC implements the admin.AdminUC interface
type adminUC struct {
	cfg    *models.Config
	remote remotestore.Store
	gw     admin.AdminGW
}

// NewAdminUC creates a new admin use case. gw may be nil, in which case
// decisions are not announced to the wallet service.
func NewAdminUC(
	cfg *models.Config,
	remote remotestore.Store,
	gw admin.AdminGW,
) (admin.AdminUC, error) {
	if cfg == nil {
		return nil, errors.New("admin config is required")
	}
	if remote == nil {
		return nil, errors.New("admin needs a remote store")
	}
	return &adminUC{
		cfg:    cfg,
		remote: remote,
		gw:     gw,
	}, nil
}

// publish announces a committed decision. Failures are logged only; the
// wallet's live watch and manual sync still pick the change up.
func (uc *adminUC) publish(ctx context.Context, event models.LedgerEvent) {
	if uc.gw == nil {
		return
	}
	if err := uc.gw.PublishLedgerEvent(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("Failed to publish ledger event",
			logger.String("event", event.Event),
			logger.String("record_id", event.RecordID),
			logger.Err(err))
	}
}
