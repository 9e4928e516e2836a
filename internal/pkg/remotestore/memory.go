package remotestore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/fairpay/internal/pkg/models"
)

type memData struct {
	users        map[string]models.User
	transactions map[string]models.Transaction
	withdrawals  map[string]models.Withdrawal
	deposits     map[string]models.Deposit
	loans        map[string]models.LoanApplication
	order        map[string]int64
	nextSeq      int64
}

func newMemData() *memData {
	return &memData{
		users:        make(map[string]models.User),
		transactions: make(map[string]models.Transaction),
		withdrawals:  make(map[string]models.Withdrawal),
		deposits:     make(map[string]models.Deposit),
		loans:        make(map[string]models.LoanApplication),
		order:        make(map[string]int64),
	}
}

func (d *memData) clone() *memData {
	c := newMemData()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.transactions {
		c.transactions[k] = v
	}
	for k, v := range d.withdrawals {
		c.withdrawals[k] = v
	}
	for k, v := range d.deposits {
		c.deposits[k] = v
	}
	for k, v := range d.loans {
		c.loans[k] = v
	}
	for k, v := range d.order {
		c.order[k] = v
	}
	c.nextSeq = d.nextSeq
	return c
}

// stamp assigns an id if missing and records insertion order
func (d *memData) stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	*createdAt = models.Now()
	d.nextSeq++
	d.order[*id] = d.nextSeq
}

// newer reports whether record a was inserted after record b
func (d *memData) newer(a, b string) bool {
	return d.order[a] > d.order[b]
}

// MemoryStore is an in-process Store. Writers are serialised; a transaction
// holds the writer lock until it commits or is rolled back.
type MemoryStore struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    *memData
	feed    *LocalFeed
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: newMemData(),
		feed: NewLocalFeed(),
	}
}

// Feed exposes the change feed of the store
func (m *MemoryStore) Feed() *LocalFeed {
	return m.feed
}

func (m *MemoryStore) view() *memView {
	return &memView{store: m}
}

// memView is the Store handed out by MemoryStore. Inside WithinTx it defers
// notifications and skips the writer lock already held by the transaction.
type memView struct {
	store   *MemoryStore
	inTx    bool
	touched map[models.Collection]struct{}
}

func (v *memView) write(coll models.Collection, fn func(d *memData) error) error {
	if v.inTx {
		v.store.mu.Lock()
		err := fn(v.store.data)
		v.store.mu.Unlock()
		if err == nil {
			v.touched[coll] = struct{}{}
		}
		return err
	}

	v.store.writeMu.Lock()
	v.store.mu.Lock()
	err := fn(v.store.data)
	v.store.mu.Unlock()
	v.store.writeMu.Unlock()
	if err != nil {
		return err
	}

	// Watchers run after the locks are released so they may write back.
	_ = v.store.feed.Notify(coll)
	return nil
}

func (v *memView) read(fn func(d *memData) error) error {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return fn(v.store.data)
}

func (v *memView) Subscribe(ctx context.Context, q models.Query, cb func(models.Snapshot)) (Unsubscribe, error) {
	switch q.Collection {
	case models.CollectionUsers, models.CollectionTransactions, models.CollectionWithdrawals,
		models.CollectionDeposits, models.CollectionLoans:
	default:
		return nil, fmt.Errorf("failed to subscribe to %q: %w", q.Collection, models.ErrUnknownCollection)
	}
	return subscribe(ctx, v, v.store.feed, q, cb)
}

func (v *memView) List(_ context.Context, q models.Query) (models.Snapshot, error) {
	snap := models.Snapshot{Collection: q.Collection}
	err := v.read(func(d *memData) error {
		return collect(d, &snap, func(status, userID string) bool {
			if q.Status != "" && q.Collection != models.CollectionUsers && status != q.Status {
				return false
			}
			return q.UserID == "" || userID == q.UserID
		})
	})
	return snap, err
}

func (v *memView) ListByStatus(_ context.Context, coll models.Collection, statuses []string) (models.Snapshot, error) {
	snap := models.Snapshot{Collection: coll}
	if _, err := statusTable(coll); err != nil {
		return snap, err
	}

	want := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}

	err := v.read(func(d *memData) error {
		return collect(d, &snap, func(status, _ string) bool { return want[status] })
	})
	return snap, err
}

// collect fills snap with the records of snap.Collection accepted by keep, newest first
func collect(d *memData, snap *models.Snapshot, keep func(status, userID string) bool) error {
	var ids []string
	switch snap.Collection {
	case models.CollectionUsers:
		for id, u := range d.users {
			if keep("", u.ID) {
				ids = append(ids, id)
			}
		}
	case models.CollectionTransactions:
		for id, t := range d.transactions {
			if keep(string(t.Status), t.UserID) {
				ids = append(ids, id)
			}
		}
	case models.CollectionWithdrawals:
		for id, w := range d.withdrawals {
			if keep(string(w.Status), w.UserID) {
				ids = append(ids, id)
			}
		}
	case models.CollectionDeposits:
		for id, dep := range d.deposits {
			if keep(string(dep.Status), dep.UserID) {
				ids = append(ids, id)
			}
		}
	case models.CollectionLoans:
		for id, l := range d.loans {
			if keep(string(l.Status), l.UserID) {
				ids = append(ids, id)
			}
		}
	default:
		return fmt.Errorf("failed to list %q: %w", snap.Collection, models.ErrUnknownCollection)
	}

	sort.Slice(ids, func(i, j int) bool { return d.newer(ids[i], ids[j]) })

	for _, id := range ids {
		switch snap.Collection {
		case models.CollectionUsers:
			snap.Users = append(snap.Users, d.users[id])
		case models.CollectionTransactions:
			snap.Transactions = append(snap.Transactions, d.transactions[id])
		case models.CollectionWithdrawals:
			snap.Withdrawals = append(snap.Withdrawals, d.withdrawals[id])
		case models.CollectionDeposits:
			snap.Deposits = append(snap.Deposits, d.deposits[id])
		case models.CollectionLoans:
			snap.Loans = append(snap.Loans, d.loans[id])
		}
	}
	return nil
}

func (v *memView) CreateUser(_ context.Context, u *models.User) (*models.User, error) {
	out := *u
	err := v.write(models.CollectionUsers, func(d *memData) error {
		for _, existing := range d.users {
			if existing.Email == out.Email {
				return fmt.Errorf("failed to create user: email %s already registered", out.Email)
			}
		}
		d.stamp(&out.ID, &out.CreatedAt)
		d.users[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) CreateTransaction(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	out := *tx
	err := v.write(models.CollectionTransactions, func(d *memData) error {
		d.stamp(&out.ID, &out.CreatedAt)
		d.transactions[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) CreateWithdrawal(_ context.Context, w *models.Withdrawal) (*models.Withdrawal, error) {
	out := *w
	err := v.write(models.CollectionWithdrawals, func(d *memData) error {
		d.stamp(&out.ID, &out.CreatedAt)
		d.withdrawals[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) CreateDeposit(_ context.Context, dep *models.Deposit) (*models.Deposit, error) {
	out := *dep
	err := v.write(models.CollectionDeposits, func(d *memData) error {
		d.stamp(&out.ID, &out.CreatedAt)
		d.deposits[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) CreateLoan(_ context.Context, l *models.LoanApplication) (*models.LoanApplication, error) {
	out := *l
	err := v.write(models.CollectionLoans, func(d *memData) error {
		d.stamp(&out.ID, &out.CreatedAt)
		d.loans[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) GetUser(_ context.Context, id string) (*models.User, error) {
	var out models.User
	err := v.read(func(d *memData) error {
		u, ok := d.users[id]
		if !ok {
			return fmt.Errorf("user: %w", models.ErrNotFound)
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	var out *models.User
	_ = v.read(func(d *memData) error {
		for _, u := range d.users {
			if u.Email == email {
				u := u
				out = &u
				break
			}
		}
		return nil
	})
	if out == nil {
		return nil, fmt.Errorf("user: %w", models.ErrNotFound)
	}
	return out, nil
}

func (v *memView) GetWithdrawal(_ context.Context, id string) (*models.Withdrawal, error) {
	var out models.Withdrawal
	err := v.read(func(d *memData) error {
		w, ok := d.withdrawals[id]
		if !ok {
			return fmt.Errorf("withdrawal: %w", models.ErrNotFound)
		}
		out = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) GetDeposit(_ context.Context, id string) (*models.Deposit, error) {
	var out models.Deposit
	err := v.read(func(d *memData) error {
		dep, ok := d.deposits[id]
		if !ok {
			return fmt.Errorf("deposit: %w", models.ErrNotFound)
		}
		out = dep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) GetLoan(_ context.Context, id string) (*models.LoanApplication, error) {
	var out models.LoanApplication
	err := v.read(func(d *memData) error {
		l, ok := d.loans[id]
		if !ok {
			return fmt.Errorf("loan: %w", models.ErrNotFound)
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *memView) GetTransactionByReference(_ context.Context, referenceID string, txType models.TransactionType) (*models.Transaction, error) {
	var out *models.Transaction
	_ = v.read(func(d *memData) error {
		for id, t := range d.transactions {
			if t.ReferenceID != referenceID || t.Type != txType {
				continue
			}
			if out == nil || d.newer(id, out.ID) {
				t := t
				out = &t
			}
		}
		return nil
	})
	if out == nil {
		return nil, fmt.Errorf("transaction: %w", models.ErrNotFound)
	}
	return out, nil
}

func (v *memView) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	snap, err := v.List(ctx, models.Query{Collection: models.CollectionTransactions, UserID: userID})
	if err != nil {
		return nil, err
	}
	return snap.Transactions, nil
}

// setStatus applies fn to the current status of a record and stores the result
func setStatus(d *memData, coll models.Collection, id string, fn func(current string) (string, error)) error {
	switch coll {
	case models.CollectionTransactions:
		t, ok := d.transactions[id]
		if !ok {
			break
		}
		next, err := fn(string(t.Status))
		if err != nil {
			return err
		}
		t.Status = models.TransactionStatus(next)
		d.transactions[id] = t
		return nil
	case models.CollectionWithdrawals:
		w, ok := d.withdrawals[id]
		if !ok {
			break
		}
		next, err := fn(string(w.Status))
		if err != nil {
			return err
		}
		w.Status = models.WithdrawalStatus(next)
		d.withdrawals[id] = w
		return nil
	case models.CollectionDeposits:
		dep, ok := d.deposits[id]
		if !ok {
			break
		}
		next, err := fn(string(dep.Status))
		if err != nil {
			return err
		}
		dep.Status = models.DepositStatus(next)
		d.deposits[id] = dep
		return nil
	case models.CollectionLoans:
		l, ok := d.loans[id]
		if !ok {
			break
		}
		next, err := fn(string(l.Status))
		if err != nil {
			return err
		}
		l.Status = models.LoanStatus(next)
		d.loans[id] = l
		return nil
	default:
		return fmt.Errorf("%q has no status: %w", coll, models.ErrUnknownCollection)
	}
	return fmt.Errorf("%s %s: %w", coll, id, models.ErrNotFound)
}

func (v *memView) UpdateStatus(_ context.Context, coll models.Collection, id, status string) error {
	return v.write(coll, func(d *memData) error {
		return setStatus(d, coll, id, func(string) (string, error) { return status, nil })
	})
}

func (v *memView) TransitionStatus(_ context.Context, coll models.Collection, id, from, to string) error {
	return v.write(coll, func(d *memData) error {
		return setStatus(d, coll, id, func(current string) (string, error) {
			if current != from {
				return "", fmt.Errorf("%s %s is %s, not %s: %w", coll, id, current, from, models.ErrInvalidStatus)
			}
			return to, nil
		})
	})
}

func (v *memView) IncrementBalance(_ context.Context, userID string, delta int64) (int64, error) {
	var balance int64
	err := v.write(models.CollectionUsers, func(d *memData) error {
		u, ok := d.users[userID]
		if !ok {
			return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
		}
		if u.Balance+delta < 0 {
			return models.ErrInsufficientBalance
		}
		u.Balance += delta
		d.users[userID] = u
		balance = u.Balance
		return nil
	})
	return balance, err
}

func (v *memView) AggregateStats(_ context.Context) (*models.Stats, error) {
	var stats models.Stats
	_ = v.read(func(d *memData) error {
		stats.TotalUsers = len(d.users)
		stats.TotalTransactions = len(d.transactions)
		for _, w := range d.withdrawals {
			if w.Status == models.WithdrawalStatusPending {
				stats.PendingWithdrawals++
			}
		}
		for _, dep := range d.deposits {
			if dep.Status == models.DepositStatusPending {
				stats.PendingDeposits++
			}
		}
		for _, t := range d.transactions {
			if t.Status == models.TransactionStatusCompleted && t.Type.IsRevenue() {
				stats.TotalRevenue += t.Amount
			}
		}
		return nil
	})
	return &stats, nil
}

func (v *memView) WithinTx(_ context.Context, fn func(Store) error) error {
	if v.inTx {
		return fn(v)
	}

	touched, err := v.store.runTx(fn)
	if err != nil {
		return err
	}

	for coll := range touched {
		_ = v.store.feed.Notify(coll)
	}
	return nil
}

// runTx runs fn under the writer lock and restores the previous state unless fn succeeds
func (m *MemoryStore) runTx(fn func(Store) error) (map[models.Collection]struct{}, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.RLock()
	saved := m.data.clone()
	m.mu.RUnlock()

	scoped := &memView{
		store:   m,
		inTx:    true,
		touched: make(map[models.Collection]struct{}),
	}

	committed := false
	defer func() {
		if !committed {
			m.mu.Lock()
			m.data = saved
			m.mu.Unlock()
		}
	}()

	if err := fn(scoped); err != nil {
		return nil, err
	}
	committed = true
	return scoped.touched, nil
}

// The exported methods delegate to a non-transactional view.

func (m *MemoryStore) Subscribe(ctx context.Context, q models.Query, cb func(models.Snapshot)) (Unsubscribe, error) {
	return m.view().Subscribe(ctx, q, cb)
}

func (m *MemoryStore) List(ctx context.Context, q models.Query) (models.Snapshot, error) {
	return m.view().List(ctx, q)
}

func (m *MemoryStore) ListByStatus(ctx context.Context, coll models.Collection, statuses []string) (models.Snapshot, error) {
	return m.view().ListByStatus(ctx, coll, statuses)
}

func (m *MemoryStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	return m.view().CreateUser(ctx, u)
}

func (m *MemoryStore) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return m.view().CreateTransaction(ctx, tx)
}

func (m *MemoryStore) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) (*models.Withdrawal, error) {
	return m.view().CreateWithdrawal(ctx, w)
}

func (m *MemoryStore) CreateDeposit(ctx context.Context, d *models.Deposit) (*models.Deposit, error) {
	return m.view().CreateDeposit(ctx, d)
}

func (m *MemoryStore) CreateLoan(ctx context.Context, l *models.LoanApplication) (*models.LoanApplication, error) {
	return m.view().CreateLoan(ctx, l)
}

func (m *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return m.view().GetUser(ctx, id)
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.view().GetUserByEmail(ctx, email)
}

func (m *MemoryStore) GetWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	return m.view().GetWithdrawal(ctx, id)
}

func (m *MemoryStore) GetDeposit(ctx context.Context, id string) (*models.Deposit, error) {
	return m.view().GetDeposit(ctx, id)
}

func (m *MemoryStore) GetLoan(ctx context.Context, id string) (*models.LoanApplication, error) {
	return m.view().GetLoan(ctx, id)
}

func (m *MemoryStore) GetTransactionByReference(ctx context.Context, referenceID string, txType models.TransactionType) (*models.Transaction, error) {
	return m.view().GetTransactionByReference(ctx, referenceID, txType)
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return m.view().ListTransactions(ctx, userID)
}

func (m *MemoryStore) UpdateStatus(ctx context.Context, coll models.Collection, id, status string) error {
	return m.view().UpdateStatus(ctx, coll, id, status)
}

func (m *MemoryStore) TransitionStatus(ctx context.Context, coll models.Collection, id, from, to string) error {
	return m.view().TransitionStatus(ctx, coll, id, from, to)
}

func (m *MemoryStore) IncrementBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	return m.view().IncrementBalance(ctx, userID, delta)
}

func (m *MemoryStore) AggregateStats(ctx context.Context) (*models.Stats, error) {
	return m.view().AggregateStats(ctx)
}

func (m *MemoryStore) WithinTx(ctx context.Context, fn func(Store) error) error {
	return m.view().WithinTx(ctx, fn)
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*memView)(nil)
	_ Store = (*PostgresStore)(nil)
)
