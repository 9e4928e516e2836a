package admin

import (
	"context"

	"github.com/piresc/fairpay/internal/pkg/models"
)

// AdminGW publishes the outcome of admin decisions
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fairpay/services/admin AdminGW
type AdminGW interface {
	PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error
}
