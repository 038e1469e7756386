package fundsservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/srosero/lavarenta/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockLedger) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	service := New(ledger)
	defer ctrl.Finish()
	return service, ledger
}

func TestIsSufficient(t *testing.T) {
	service, ledger := NewMock(t)

	tests := []struct {
		name        string
		balance     decimal.Decimal
		amount      decimal.Decimal
		expected    bool
	}{
		{name: "balance covers amount", balance: decimal.NewFromInt(300), amount: decimal.NewFromInt(200), expected: true},
		{name: "exact balance is sufficient", balance: decimal.NewFromInt(200), amount: decimal.NewFromInt(200), expected: true},
		{name: "balance below amount", balance: decimal.NewFromInt(199), amount: decimal.NewFromInt(200), expected: false},
		{name: "negative balance covers nothing", balance: decimal.NewFromInt(-50), amount: decimal.NewFromInt(1), expected: false},
		{name: "zero amount always covered by non-negative balance", balance: decimal.Zero, amount: decimal.Zero, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelCash, gomock.Any()).Return(tt.balance, nil)

			ok, available, err := service.IsSufficient(context.Background(), domain.ChannelCash, tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.True(t, available.Equal(tt.balance))
		})
	}
}

func TestIsSufficientMonotonic(t *testing.T) {
	service, ledger := NewMock(t)

	// One fixed balance, descending amounts: once an amount is covered, every
	// smaller amount must be covered too.
	balance := decimal.NewFromInt(200)
	amounts := []int64{300, 201, 200, 120, 1, 0}

	covered := false
	for _, amount := range amounts {
		ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelCash, gomock.Any()).Return(balance, nil)

		ok, _, err := service.IsSufficient(context.Background(), domain.ChannelCash, decimal.NewFromInt(amount))
		assert.NoError(t, err)
		if covered {
			assert.True(t, ok, "amount %d rejected after a larger one was covered", amount)
		}
		covered = covered || ok
	}
	assert.True(t, covered)
}

func TestIsSufficientStoreError(t *testing.T) {
	service, ledger := NewMock(t)

	storeErr := &domain.TransientStoreError{Op: "list expenses", Err: context.DeadlineExceeded}
	ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelNequi, gomock.Any()).Return(decimal.Zero, storeErr)

	// A store failure must surface as an error, never as an insufficient verdict.
	ok, _, err := service.IsSufficient(context.Background(), domain.ChannelNequi, decimal.NewFromInt(10))
	assert.Error(t, err)
	assert.True(t, domain.IsTransient(err))
	assert.False(t, ok)
}

func TestEligibleChannels(t *testing.T) {
	service, ledger := NewMock(t)

	t.Run("subset of channels covers the amount", func(t *testing.T) {
		ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelCash, gomock.Any()).Return(decimal.NewFromInt(500), nil)
		ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelNequi, gomock.Any()).Return(decimal.NewFromInt(50), nil)
		ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelDaviplata, gomock.Any()).Return(decimal.NewFromInt(100), nil)

		eligible, err := service.EligibleChannels(context.Background(), decimal.NewFromInt(100))
		assert.NoError(t, err)
		assert.Equal(t, []domain.Channel{domain.ChannelCash, domain.ChannelDaviplata}, eligible)
	})

	t.Run("no channel covers the amount", func(t *testing.T) {
		ledger.EXPECT().BalanceAsOf(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(10), nil).Times(3)

		eligible, err := service.EligibleChannels(context.Background(), decimal.NewFromInt(100))
		assert.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("store error aborts the scan", func(t *testing.T) {
		ledger.EXPECT().BalanceAsOf(gomock.Any(), domain.ChannelCash, gomock.Any()).Return(decimal.Zero, context.DeadlineExceeded)

		eligible, err := service.EligibleChannels(context.Background(), decimal.NewFromInt(100))
		assert.Error(t, err)
		assert.Nil(t, eligible)
	})
}
