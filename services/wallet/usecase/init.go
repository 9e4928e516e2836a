package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/piresc/fairpay/internal/pkg/faircode"
	"github.com/piresc/fairpay/internal/pkg/ledger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/pacer"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/services/wallet"
)

// walletUC implements the wallet.WalletUC interface
type walletUC struct {
	cfg    *models.Config
	local  wallet.LocalStore
	remote remotestore.Store
	gate   faircode.Validator
	pacer  *pacer.Pacer
	ids    *ledger.IDSource
	now    func() time.Time

	// one lock per email around local read-modify-write
	locks sync.Map

	// life outlives requests and bounds live subscriptions
	life    context.Context
	stop    context.CancelFunc
	watchMu sync.Mutex
	watches map[string]remotestore.Unsubscribe

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(
	cfg *models.Config,
	local wallet.LocalStore,
	remote remotestore.Store,
) (wallet.WalletUC, error) {
	return newWalletUC(cfg, local, remote)
}

func newWalletUC(cfg *models.Config, local wallet.LocalStore, remote remotestore.Store) (*walletUC, error) {
	if cfg == nil {
		return nil, errors.New("wallet config is required")
	}
	if local == nil || remote == nil {
		return nil, errors.New("wallet needs both a local and a remote store")
	}

	life, stop := context.WithCancel(context.Background())
	return &walletUC{
		cfg:     cfg,
		local:   local,
		remote:  remote,
		gate:    faircode.NewValidator(cfg.Wallet),
		pacer:   pacer.New(),
		ids:     ledger.NewIDSource(),
		now:     models.Now,
		life:    life,
		stop:    stop,
		watches: make(map[string]remotestore.Unsubscribe),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// lockEmail serialises local ledger updates of one user and returns the unlock func
func (uc *walletUC) lockEmail(email string) func() {
	v, _ := uc.locks.LoadOrStore(email, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Close cancels pending paced delays and detaches every live subscription
func (uc *walletUC) Close() error {
	uc.pacer.Close()

	uc.watchMu.Lock()
	watches := uc.watches
	uc.watches = make(map[string]remotestore.Unsubscribe)
	uc.watchMu.Unlock()

	for _, unsubscribe := range watches {
		unsubscribe()
	}
	uc.stop()
	return nil
}
