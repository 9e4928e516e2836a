package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/fairpay/internal/pkg/constants"
	"github.com/piresc/fairpay/internal/pkg/database"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/wallet"
)

type redisStore struct {
	redisClient *database.RedisClient
}

// NewRedisLocalStore creates a local ledger store backed by Redis
func NewRedisLocalStore(redisClient *database.RedisClient) wallet.LocalStore {
	return &redisStore{
		redisClient: redisClient,
	}
}

// Load reads the cached ledger of email
func (r *redisStore) Load(ctx context.Context, email string) (models.LocalLedger, error) {
	balanceKey := fmt.Sprintf(constants.KeyUserBalance, email)
	txKey := fmt.Sprintf(constants.KeyUserTransactions, email)

	values, err := r.redisClient.GetClient().MGet(ctx, balanceKey, txKey).Result()
	if err != nil {
		return models.LocalLedger{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	return decodeLedger(email, values[0], values[1]), nil
}

// decodeLedger turns the raw MGET values into a ledger, falling back to
// the empty ledger when either value is missing or unreadable
func decodeLedger(email string, rawBalance, rawTxs interface{}) models.LocalLedger {
	empty := models.LocalLedger{Transactions: []models.LocalTransaction{}}

	balanceStr, ok := rawBalance.(string)
	if !ok {
		return empty
	}
	balance, err := strconv.ParseInt(balanceStr, 10, 64)
	if err != nil {
		logger.Debug("Discarding unreadable cached balance",
			logger.String("email", email),
			logger.Err(err))
		return empty
	}

	txs := []models.LocalTransaction{}
	if txStr, ok := rawTxs.(string); ok {
		if err := json.Unmarshal([]byte(txStr), &txs); err != nil {
			logger.Debug("Discarding unreadable cached transactions",
				logger.String("email", email),
				logger.Err(err))
			return empty
		}
	}

	return models.LocalLedger{Balance: balance, Transactions: txs}
}

// Save writes balance and transactions in one MULTI block
func (r *redisStore) Save(ctx context.Context, email string, ledger models.LocalLedger) error {
	txs := ledger.Transactions
	if txs == nil {
		txs = []models.LocalTransaction{}
	}
	payload, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	_, err = r.redisClient.GetClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, fmt.Sprintf(constants.KeyUserBalance, email), ledger.Balance, 0)
		pipe.Set(ctx, fmt.Sprintf(constants.KeyUserTransactions, email), payload, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

func (r *redisStore) LoadProfile(ctx context.Context, email string) (models.UserProfile, error) {
	fields, err := r.redisClient.GetClient().HGetAll(ctx, fmt.Sprintf(constants.KeyUserProfile, email)).Result()
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return models.UserProfile{
		Name:        fields[constants.FieldName],
		PhoneNumber: fields[constants.FieldPhoneNumber],
		BVN:         fields[constants.FieldBVN],
		Address:     fields[constants.FieldAddress],
	}, nil
}

func (r *redisStore) SaveProfile(ctx context.Context, email string, profile models.UserProfile) error {
	key := fmt.Sprintf(constants.KeyUserProfile, email)
	data := map[string]interface{}{
		constants.FieldName:        profile.Name,
		constants.FieldPhoneNumber: profile.PhoneNumber,
		constants.FieldBVN:         profile.BVN,
		constants.FieldAddress:     profile.Address,
	}
	if err := r.redisClient.GetClient().HSet(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *redisStore) MarkLandingVisited(ctx context.Context) error {
	if err := r.redisClient.Set(ctx, constants.KeyHasVisited, "true", 0); err != nil {
		return fmt.Errorf("failed to mark landing visited: %w", err)
	}
	return nil
}

func (r *redisStore) HasVisitedLanding(ctx context.Context) (bool, error) {
	value, err := r.getString(ctx, constants.KeyHasVisited)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (r *redisStore) SetCurrentUser(ctx context.Context, email string) error {
	if err := r.redisClient.Set(ctx, constants.KeyCurrentUser, email, 0); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	return nil
}

// CurrentUser returns "" when nobody is signed in
func (r *redisStore) CurrentUser(ctx context.Context) (string, error) {
	return r.getString(ctx, constants.KeyCurrentUser)
}

func (r *redisStore) ClearCurrentUser(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, constants.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}

func (r *redisStore) ReferralCode(ctx context.Context, email string) (string, error) {
	return r.getString(ctx, fmt.Sprintf(constants.KeyReferralCode, email))
}

func (r *redisStore) SetReferralCode(ctx context.Context, email, code string) error {
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyReferralCode, email), code, 0); err != nil {
		return fmt.Errorf("failed to save referral code: %w", err)
	}
	return nil
}

func (r *redisStore) PendingReferrals(ctx context.Context, code string) (int64, error) {
	value, err := r.getString(ctx, fmt.Sprintf(constants.KeyPendingReferrals, code))
	if err != nil || value == "" {
		return 0, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		logger.Debug("Discarding unreadable referral counter", logger.String("code", code))
		return 0, nil
	}
	return n, nil
}

func (r *redisStore) AddPendingReferrals(ctx context.Context, code string, n int64) (int64, error) {
	count, err := r.redisClient.GetClient().IncrBy(ctx, fmt.Sprintf(constants.KeyPendingReferrals, code), n).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to add pending referrals: %w", err)
	}
	return count, nil
}

// TakePendingReferrals reads and clears the counter atomically
func (r *redisStore) TakePendingReferrals(ctx context.Context, code string) (int64, error) {
	value, err := r.redisClient.GetClient().GetDel(ctx, fmt.Sprintf(constants.KeyPendingReferrals, code)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to take pending referrals: %w", err)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		logger.Debug("Discarding unreadable referral counter", logger.String("code", code))
		return 0, nil
	}
	return n, nil
}

func (r *redisStore) LoadReferralData(ctx context.Context, email string) (models.ReferralData, error) {
	var data models.ReferralData
	if err := r.getJSON(ctx, fmt.Sprintf(constants.KeyReferralData, email), &data); err != nil {
		return models.ReferralData{}, err
	}
	return data, nil
}

func (r *redisStore) SaveReferralData(ctx context.Context, email string, data models.ReferralData) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyReferralData, email), data)
}

// LoadMonthlyBonuses returns nil when no calendar has been generated yet
func (r *redisStore) LoadMonthlyBonuses(ctx context.Context, email string) ([]models.MonthlyBonus, error) {
	var bonuses []models.MonthlyBonus
	if err := r.getJSON(ctx, fmt.Sprintf(constants.KeyMonthlyBonuses, email), &bonuses); err != nil {
		return nil, err
	}
	return bonuses, nil
}

func (r *redisStore) SaveMonthlyBonuses(ctx context.Context, email string, bonuses []models.MonthlyBonus) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyMonthlyBonuses, email), bonuses)
}

func (r *redisStore) getString(ctx context.Context, key string) (string, error) {
	value, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// getJSON leaves v untouched when the key is missing or unreadable
func (r *redisStore) getJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := r.getString(ctx, key)
	if err != nil || raw == "" {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Debug("Discarding unreadable cached value", logger.String("key", key), logger.Err(err))
	}
	return nil
}

func (r *redisStore) setJSON(ctx context.Context, key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, payload, 0); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
