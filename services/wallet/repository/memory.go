package repository

import (
	"context"
	"sync"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/wallet"
)

// memoryStore keeps the local ledger in process memory. Values are copied
// on the way in and out so callers never share slices with the store.
type memoryStore struct {
	mu sync.Mutex

	ledgers   map[string]models.LocalLedger
	profiles  map[string]models.UserProfile
	codes     map[string]string
	pending   map[string]int64
	referrals map[string]models.ReferralData
	bonuses   map[string][]models.MonthlyBonus

	visited     bool
	currentUser string
}

// NewMemoryLocalStore creates a process-local ledger store
func NewMemoryLocalStore() wallet.LocalStore {
	return &memoryStore{
		ledgers:   make(map[string]models.LocalLedger),
		profiles:  make(map[string]models.UserProfile),
		codes:     make(map[string]string),
		pending:   make(map[string]int64),
		referrals: make(map[string]models.ReferralData),
		bonuses:   make(map[string][]models.MonthlyBonus),
	}
}

func copyLedger(l models.LocalLedger) models.LocalLedger {
	txs := make([]models.LocalTransaction, len(l.Transactions))
	copy(txs, l.Transactions)
	return models.LocalLedger{Balance: l.Balance, Transactions: txs}
}

func (m *memoryStore) Load(_ context.Context, email string) (models.LocalLedger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyLedger(m.ledgers[email]), nil
}

func (m *memoryStore) Save(_ context.Context, email string, ledger models.LocalLedger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgers[email] = copyLedger(ledger)
	return nil
}

func (m *memoryStore) LoadProfile(_ context.Context, email string) (models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[email], nil
}

func (m *memoryStore) SaveProfile(_ context.Context, email string, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[email] = profile
	return nil
}

func (m *memoryStore) MarkLandingVisited(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visited = true
	return nil
}

func (m *memoryStore) HasVisitedLanding(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visited, nil
}

func (m *memoryStore) SetCurrentUser(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentUser = email
	return nil
}

func (m *memoryStore) CurrentUser(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentUser, nil
}

func (m *memoryStore) ClearCurrentUser(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentUser = ""
	return nil
}

func (m *memoryStore) ReferralCode(_ context.Context, email string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email], nil
}

func (m *memoryStore) SetReferralCode(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
	return nil
}

func (m *memoryStore) PendingReferrals(_ context.Context, code string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending[code], nil
}

func (m *memoryStore) AddPendingReferrals(_ context.Context, code string, n int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[code] += n
	return m.pending[code], nil
}

func (m *memoryStore) TakePendingReferrals(_ context.Context, code string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.pending[code]
	delete(m.pending, code)
	return n, nil
}

func (m *memoryStore) LoadReferralData(_ context.Context, email string) (models.ReferralData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.referrals[email], nil
}

func (m *memoryStore) SaveReferralData(_ context.Context, email string, data models.ReferralData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.referrals[email] = data
	return nil
}

func (m *memoryStore) LoadMonthlyBonuses(_ context.Context, email string) ([]models.MonthlyBonus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.bonuses[email]
	if !ok {
		return nil, nil
	}
	out := make([]models.MonthlyBonus, len(stored))
	copy(out, stored)
	return out, nil
}

func (m *memoryStore) SaveMonthlyBonuses(_ context.Context, email string, bonuses []models.MonthlyBonus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]models.MonthlyBonus, len(bonuses))
	copy(stored, bonuses)
	m.bonuses[email] = stored
	return nil
}
