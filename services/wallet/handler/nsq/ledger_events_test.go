package nsq

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	event := models.LedgerEvent{
		Event:    models.EventDepositConfirmed,
		UserID:   "u-1",
		Email:    "ada@fairpay.ng",
		RecordID: "d-1",
		Amount:   5000,
		At:       time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ucErr   error
		wantErr bool
	}{
		{name: "applied"},
		{name: "unknown user is dropped", ucErr: models.ErrNotFound},
		{name: "event without user is dropped", ucErr: models.ErrMissingField},
		{name: "store outage is requeued", ucErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWalletUC := mocks.NewMockWalletUC(ctrl)
			h := NewLedgerEventHandler(mockWalletUC)

			mockWalletUC.EXPECT().HandleLedgerEvent(gomock.Any(), event).Return(tt.ucErr)

			err := h.Handle(body)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLedgerEventHandler(mocks.NewMockWalletUC(ctrl))

	assert.NoError(t, h.Handle([]byte(`{"event":`)))
}

func TestStop_WithoutConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLedgerEventHandler(mocks.NewMockWalletUC(ctrl))
	assert.NotPanics(t, h.Stop)
}
