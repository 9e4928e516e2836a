package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("userBalance_ada@example.com", "5000", time.Duration(0)).SetVal("OK")

	err := client.Set(context.Background(), "userBalance_ada@example.com", "5000", 0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("key", "value", time.Hour).SetErr(redis.ErrClosed)

	err := client.Set(context.Background(), "key", "value", time.Hour)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetNX(t *testing.T) {
	tests := []struct {
		name           string
		mockResult     bool
		mockError      error
		expectedResult bool
		expectedError  bool
	}{
		{name: "Key set successfully", mockResult: true, expectedResult: true},
		{name: "Key already exists", mockResult: false, expectedResult: false},
		{name: "Redis error", mockError: redis.ErrClosed, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			if tt.mockError != nil {
				mock.ExpectSetNX("hasVisitedLanding", "true", time.Duration(0)).SetErr(tt.mockError)
			} else {
				mock.ExpectSetNX("hasVisitedLanding", "true", time.Duration(0)).SetVal(tt.mockResult)
			}

			result, err := client.SetNX(context.Background(), "hasVisitedLanding", "true", 0)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("currentUser").SetVal("ada@example.com")
	mock.ExpectGet("missing").RedisNil()

	value, err := client.Get(context.Background(), "currentUser")
	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", value)

	_, err = client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, redis.Nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("a", "b").SetVal(2)

	assert.NoError(t, client.Delete(context.Background(), "a", "b"))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, db, client.GetClient())
}
