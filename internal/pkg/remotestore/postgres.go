package remotestore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
)

//go:embed schema.sql
var schema string

const (
	userColumns        = `id, email, name, balance, faircode, faircode_value, phone_number, bvn, address, created_at`
	transactionColumns = `id, user_id, type, direction, amount, status, description, reference_id, created_at`
	withdrawalColumns  = `id, user_id, user_email, user_name, amount, bank_name, account_number, account_name, status, created_at`
	depositColumns     = `id, user_id, user_email, user_name, amount, category, status, created_at`
	loanColumns        = `id, user_id, user_email, user_name, amount, purpose, duration, employment_status, monthly_income, employer, status, created_at`
)

var columnsByCollection = map[models.Collection]string{
	models.CollectionUsers:        userColumns,
	models.CollectionTransactions: transactionColumns,
	models.CollectionWithdrawals:  withdrawalColumns,
	models.CollectionDeposits:     depositColumns,
	models.CollectionLoans:        loanColumns,
}

// statusTable returns the table of a collection that carries a status column
func statusTable(coll models.Collection) (string, error) {
	switch coll {
	case models.CollectionTransactions, models.CollectionWithdrawals,
		models.CollectionDeposits, models.CollectionLoans:
		return string(coll), nil
	}
	return "", fmt.Errorf("%q has no status: %w", coll, models.ErrUnknownCollection)
}

// PostgresStore implements Store on PostgreSQL
type PostgresStore struct {
	db   *sqlx.DB
	ext  sqlx.ExtContext
	tx   *sqlx.Tx
	feed Feed

	touched map[models.Collection]struct{}
}

// NewPostgresStore creates a store on db. feed may be nil when live queries are not needed.
func NewPostgresStore(db *sqlx.DB, feed Feed) *PostgresStore {
	return &PostgresStore{
		db:   db,
		ext:  db,
		feed: feed,
	}
}

// Migrate creates the tables if they do not exist
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) changed(coll models.Collection) {
	if s.tx != nil {
		s.touched[coll] = struct{}{}
		return
	}
	s.notify(coll)
}

func (s *PostgresStore) notify(coll models.Collection) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Notify(coll); err != nil {
		logger.Warn("Failed to publish change notice",
			logger.String("collection", string(coll)),
			logger.Err(err))
	}
}

// Subscribe opens a live query
func (s *PostgresStore) Subscribe(ctx context.Context, q models.Query, cb func(models.Snapshot)) (Unsubscribe, error) {
	if _, ok := columnsByCollection[q.Collection]; !ok {
		return nil, fmt.Errorf("failed to subscribe to %q: %w", q.Collection, models.ErrUnknownCollection)
	}
	return subscribe(ctx, s, s.feed, q, cb)
}

// List runs q once
func (s *PostgresStore) List(ctx context.Context, q models.Query) (models.Snapshot, error) {
	var (
		where []string
		args  []interface{}
	)

	if q.Status != "" && q.Collection != models.CollectionUsers {
		args = append(args, q.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.UserID != "" {
		column := "user_id"
		if q.Collection == models.CollectionUsers {
			column = "id"
		}
		args = append(args, q.UserID)
		where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	return s.selectSnapshot(ctx, q.Collection, where, args)
}

// ListByStatus returns every record of coll whose status is in statuses
func (s *PostgresStore) ListByStatus(ctx context.Context, coll models.Collection, statuses []string) (models.Snapshot, error) {
	if _, err := statusTable(coll); err != nil {
		return models.Snapshot{Collection: coll}, err
	}
	return s.selectSnapshot(ctx, coll, []string{"status = ANY($1)"}, []interface{}{pq.Array(statuses)})
}

func (s *PostgresStore) selectSnapshot(ctx context.Context, coll models.Collection, where []string, args []interface{}) (models.Snapshot, error) {
	snap := models.Snapshot{Collection: coll}

	columns, ok := columnsByCollection[coll]
	if !ok {
		return snap, fmt.Errorf("failed to list %q: %w", coll, models.ErrUnknownCollection)
	}

	query := "SELECT " + columns + " FROM " + string(coll)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var err error
	switch coll {
	case models.CollectionUsers:
		err = sqlx.SelectContext(ctx, s.ext, &snap.Users, query, args...)
	case models.CollectionTransactions:
		err = sqlx.SelectContext(ctx, s.ext, &snap.Transactions, query, args...)
	case models.CollectionWithdrawals:
		err = sqlx.SelectContext(ctx, s.ext, &snap.Withdrawals, query, args...)
	case models.CollectionDeposits:
		err = sqlx.SelectContext(ctx, s.ext, &snap.Deposits, query, args...)
	case models.CollectionLoans:
		err = sqlx.SelectContext(ctx, s.ext, &snap.Loans, query, args...)
	}
	if err != nil {
		return snap, fmt.Errorf("failed to list %s: %w", coll, err)
	}

	return snap, nil
}

// CreateUser inserts a user and returns it with its id and server timestamp
func (s *PostgresStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	out := *u
	if out.ID == "" {
		out.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, email, name, balance, faircode, faircode_value, phone_number, bvn, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING created_at`

	err := s.ext.QueryRowxContext(ctx, query,
		out.ID, out.Email, out.Name, out.Balance, out.Faircode, out.FaircodeValue,
		out.PhoneNumber, out.BVN, out.Address,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.changed(models.CollectionUsers)
	return &out, nil
}

// CreateTransaction appends a ledger record
func (s *PostgresStore) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	out := *tx
	if out.ID == "" {
		out.ID = uuid.New().String()
	}

	query := `
		INSERT INTO transactions (id, user_id, type, direction, amount, status, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING created_at`

	err := s.ext.QueryRowxContext(ctx, query,
		out.ID, out.UserID, out.Type, out.Direction, out.Amount, out.Status, out.Description, out.ReferenceID,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.changed(models.CollectionTransactions)
	return &out, nil
}

// CreateWithdrawal records a payout request
func (s *PostgresStore) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) (*models.Withdrawal, error) {
	out := *w
	if out.ID == "" {
		out.ID = uuid.New().String()
	}

	query := `
		INSERT INTO withdrawals (id, user_id, user_email, user_name, amount, bank_name, account_number, account_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING created_at`

	err := s.ext.QueryRowxContext(ctx, query,
		out.ID, out.UserID, out.UserEmail, out.UserName, out.Amount,
		out.BankName, out.AccountNumber, out.AccountName, out.Status,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}

	s.changed(models.CollectionWithdrawals)
	return &out, nil
}

// CreateDeposit records a deposit claim
func (s *PostgresStore) CreateDeposit(ctx context.Context, d *models.Deposit) (*models.Deposit, error) {
	out := *d
	if out.ID == "" {
		out.ID = uuid.New().String()
	}

	query := `
		INSERT INTO deposits (id, user_id, user_email, user_name, amount, category, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING created_at`

	err := s.ext.QueryRowxContext(ctx, query,
		out.ID, out.UserID, out.UserEmail, out.UserName, out.Amount, out.Category, out.Status,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	s.changed(models.CollectionDeposits)
	return &out, nil
}

// CreateLoan records a loan application
func (s *PostgresStore) CreateLoan(ctx context.Context, l *models.LoanApplication) (*models.LoanApplication, error) {
	out := *l
	if out.ID == "" {
		out.ID = uuid.New().String()
	}

	query := `
		INSERT INTO loans (id, user_id, user_email, user_name, amount, purpose, duration, employment_status, monthly_income, employer, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		RETURNING created_at`

	err := s.ext.QueryRowxContext(ctx, query,
		out.ID, out.UserID, out.UserEmail, out.UserName, out.Amount, out.Purpose, out.Duration,
		out.EmploymentStatus, out.MonthlyIncome, out.Employer, out.Status,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	s.changed(models.CollectionLoans)
	return &out, nil
}

func (s *PostgresStore) get(ctx context.Context, dest interface{}, what, query string, args ...interface{}) error {
	if err := sqlx.GetContext(ctx, s.ext, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", what, models.ErrNotFound)
		}
		return fmt.Errorf("failed to get %s: %w", what, err)
	}
	return nil
}

// GetUser fetches a user by id
func (s *PostgresStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.get(ctx, &u, "user", "SELECT "+userColumns+" FROM users WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches a user by email
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.get(ctx, &u, "user", "SELECT "+userColumns+" FROM users WHERE email = $1", email); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetWithdrawal fetches a withdrawal by id
func (s *PostgresStore) GetWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	var w models.Withdrawal
	if err := s.get(ctx, &w, "withdrawal", "SELECT "+withdrawalColumns+" FROM withdrawals WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetDeposit fetches a deposit by id
func (s *PostgresStore) GetDeposit(ctx context.Context, id string) (*models.Deposit, error) {
	var d models.Deposit
	if err := s.get(ctx, &d, "deposit", "SELECT "+depositColumns+" FROM deposits WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetLoan fetches a loan application by id
func (s *PostgresStore) GetLoan(ctx context.Context, id string) (*models.LoanApplication, error) {
	var l models.LoanApplication
	if err := s.get(ctx, &l, "loan", "SELECT "+loanColumns+" FROM loans WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetTransactionByReference returns the newest transaction of txType that points at referenceID
func (s *PostgresStore) GetTransactionByReference(ctx context.Context, referenceID string, txType models.TransactionType) (*models.Transaction, error) {
	var t models.Transaction
	query := "SELECT " + transactionColumns + " FROM transactions WHERE reference_id = $1 AND type = $2 ORDER BY created_at DESC LIMIT 1"
	if err := s.get(ctx, &t, "transaction", query, referenceID, txType); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns a user's transactions newest first
func (s *PostgresStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	snap, err := s.List(ctx, models.Query{Collection: models.CollectionTransactions, UserID: userID})
	if err != nil {
		return nil, err
	}
	return snap.Transactions, nil
}

// UpdateStatus overwrites the status of a record
func (s *PostgresStore) UpdateStatus(ctx context.Context, coll models.Collection, id, status string) error {
	table, err := statusTable(coll)
	if err != nil {
		return err
	}

	res, err := s.ext.ExecContext(ctx, "UPDATE "+table+" SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update %s status: %w", coll, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s status: %w", coll, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", coll, id, models.ErrNotFound)
	}

	s.changed(coll)
	return nil
}

// TransitionStatus moves a record from one status to another.
// It returns ErrInvalidStatus if the record is no longer in `from`.
func (s *PostgresStore) TransitionStatus(ctx context.Context, coll models.Collection, id, from, to string) error {
	table, err := statusTable(coll)
	if err != nil {
		return err
	}

	res, err := s.ext.ExecContext(ctx,
		"UPDATE "+table+" SET status = $1 WHERE id = $2 AND status = $3", to, id, from)
	if err != nil {
		return fmt.Errorf("failed to transition %s: %w", coll, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to transition %s: %w", coll, err)
	}

	if n == 0 {
		var current string
		if err := s.get(ctx, &current, string(coll), "SELECT status FROM "+table+" WHERE id = $1", id); err != nil {
			return err
		}
		return fmt.Errorf("%s %s is %s, not %s: %w", coll, id, current, from, models.ErrInvalidStatus)
	}

	s.changed(coll)
	return nil
}

// IncrementBalance adds delta to the user's balance in one statement
func (s *PostgresStore) IncrementBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	query := `UPDATE users SET balance = balance + $1 WHERE id = $2 AND balance + $1 >= 0 RETURNING balance`

	var balance int64
	err := s.ext.QueryRowxContext(ctx, query, delta, userID).Scan(&balance)
	if err == nil {
		s.changed(models.CollectionUsers)
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to increment balance: %w", err)
	}

	var exists bool
	if err := sqlx.GetContext(ctx, s.ext, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID); err != nil {
		return 0, fmt.Errorf("failed to increment balance: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	return 0, models.ErrInsufficientBalance
}

// AggregateStats computes the admin dashboard totals
func (s *PostgresStore) AggregateStats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM withdrawals WHERE status = 'pending') AS pending_withdrawals,
			(SELECT COUNT(*) FROM deposits WHERE status = 'pending') AS pending_deposits,
			(SELECT COUNT(*) FROM transactions) AS total_transactions,
			(SELECT COALESCE(SUM(amount), 0) FROM transactions
				WHERE status = 'completed' AND type = ANY($1)) AS total_revenue`

	revenue := []string{
		string(models.TransactionTypeWithdrawalFee),
		string(models.TransactionTypeFaircodePurchase),
	}

	var stats models.Stats
	if err := sqlx.GetContext(ctx, s.ext, &stats, query, pq.Array(revenue)); err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return &stats, nil
}

// WithinTx runs fn inside a database transaction. Nested calls join the outer one.
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	scoped := &PostgresStore{
		db:      s.db,
		ext:     tx,
		tx:      tx,
		feed:    s.feed,
		touched: make(map[models.Collection]struct{}),
	}

	if err := fn(scoped); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back transaction", logger.Err(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for coll := range scoped.touched {
		s.notify(coll)
	}
	return nil
}
