package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/srosero/lavarenta/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockMovementSource) {
	ctrl := gomock.NewController(t)
	source := NewMockMovementSource(ctrl)
	service := New(source)
	defer ctrl.Finish()
	return service, source
}

var (
	t1 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	t3 = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	t4 = time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC)
)

func expectSources(source *MockMovementSource, channel domain.Channel, payments, capital, expenses, maintenance []domain.Movement) {
	source.EXPECT().ListOrderPayments(gomock.Any(), channel).Return(payments, nil)
	source.EXPECT().ListCapitalEvents(gomock.Any(), channel).Return(capital, nil)
	source.EXPECT().ListExpenses(gomock.Any(), channel).Return(expenses, nil)
	source.EXPECT().ListMaintenanceCosts(gomock.Any(), channel).Return(maintenance, nil)
}

func TestBalanceAsOf(t *testing.T) {
	service, source := NewMock(t)

	payments := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(100), Source: domain.SourceOrderPayment, SourceID: 1, EffectiveAt: t1},
	}
	capital := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(200), Source: domain.SourceCapitalEvent, SourceID: 2, EffectiveAt: t2},
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(50), Source: domain.SourceCapitalEvent, SourceID: 3, EffectiveAt: t3},
	}
	expenses := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(80), Source: domain.SourceExpense, SourceID: 4, EffectiveAt: t4},
	}

	tests := []struct {
		name     string
		cutoff   time.Time
		expected int64
	}{
		{name: "cutoff after all movements", cutoff: t4, expected: 270},
		{name: "cutoff excludes later debit", cutoff: t3, expected: 350},
		{name: "cutoff before everything", cutoff: t1.Add(-time.Hour), expected: 0},
		{name: "cutoff is inclusive", cutoff: t1, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSources(source, domain.ChannelCash, payments, capital, expenses, nil)

			balance, err := service.BalanceAsOf(context.Background(), domain.ChannelCash, tt.cutoff)
			assert.NoError(t, err)
			assert.True(t, balance.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, balance)
		})
	}
}

func TestBalanceInRangePartition(t *testing.T) {
	service, source := NewMock(t)

	movements := []domain.Movement{
		{Channel: domain.ChannelNequi, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(100), Source: domain.SourceOrderPayment, SourceID: 1, EffectiveAt: t1},
		{Channel: domain.ChannelNequi, Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(30), Source: domain.SourceOrderPayment, SourceID: 2, EffectiveAt: t2},
		{Channel: domain.ChannelNequi, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(45), Source: domain.SourceOrderPayment, SourceID: 3, EffectiveAt: t3},
	}

	// BalanceAsOf(t3) must equal BalanceAsOf(t1) plus the range sum over (t1, t3].
	expectSources(source, domain.ChannelNequi, movements, nil, nil, nil)
	total, err := service.BalanceAsOf(context.Background(), domain.ChannelNequi, t3)
	assert.NoError(t, err)

	expectSources(source, domain.ChannelNequi, movements, nil, nil, nil)
	upToT1, err := service.BalanceAsOf(context.Background(), domain.ChannelNequi, t1)
	assert.NoError(t, err)

	expectSources(source, domain.ChannelNequi, movements, nil, nil, nil)
	rest, err := service.BalanceInRange(context.Background(), domain.ChannelNequi, t1.Add(time.Nanosecond), t3)
	assert.NoError(t, err)

	assert.True(t, total.Equal(upToT1.Add(rest)),
		"partition broken: %s != %s + %s", total, upToT1, rest)

	// And the degenerate partition: a range open at the start is the cutoff sum.
	expectSources(source, domain.ChannelNequi, movements, nil, nil, nil)
	full, err := service.BalanceInRange(context.Background(), domain.ChannelNequi, time.Time{}, t3)
	assert.NoError(t, err)
	assert.True(t, total.Equal(full),
		"BalanceAsOf(t3) diverged from BalanceInRange(-inf, t3): %s != %s", total, full)
}

func TestZeroCutoffUsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := NewMockMovementSource(ctrl)
	service := New(source, WithNow(func() time.Time { return t2 }))

	payments := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(100), Source: domain.SourceOrderPayment, SourceID: 1, EffectiveAt: t1},
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(50), Source: domain.SourceOrderPayment, SourceID: 2, EffectiveAt: t3},
	}
	expectSources(source, domain.ChannelCash, payments, nil, nil, nil)

	// Clock pinned at t2: the t3 payment is still in the future.
	balance, err := service.BalanceAsOf(context.Background(), domain.ChannelCash, time.Time{})
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)), "got %s", balance)
}

func TestMovementsInRangeOrdering(t *testing.T) {
	service, source := NewMock(t)

	payments := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(10), Source: domain.SourceOrderPayment, SourceID: 9, EffectiveAt: t2},
	}
	expenses := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(5), Source: domain.SourceExpense, SourceID: 1, EffectiveAt: t1},
		{Channel: domain.ChannelCash, Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(7), Source: domain.SourceExpense, SourceID: 2, EffectiveAt: t2},
	}
	expectSources(source, domain.ChannelCash, payments, nil, expenses, nil)

	movements, err := service.MovementsInRange(context.Background(), domain.ChannelCash, t1, t4)
	assert.NoError(t, err)
	assert.Len(t, movements, 3)
	assert.Equal(t, "expense:1", movements[0].ID)
	// Same effective time: deterministic tie-break on the qualified id.
	assert.Equal(t, "expense:2", movements[1].ID)
	assert.Equal(t, "order-payment:9", movements[2].ID)
}

func TestMovementsInRangeFiltersByEffectiveTime(t *testing.T) {
	service, source := NewMock(t)

	payments := []domain.Movement{
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(10), Source: domain.SourceOrderPayment, SourceID: 1, EffectiveAt: t1},
		{Channel: domain.ChannelCash, Direction: domain.DirectionCredit, Amount: decimal.NewFromInt(20), Source: domain.SourceOrderPayment, SourceID: 2, EffectiveAt: t3},
	}
	expectSources(source, domain.ChannelCash, payments, nil, nil, nil)

	movements, err := service.MovementsInRange(context.Background(), domain.ChannelCash, t2, t4)
	assert.NoError(t, err)
	assert.Len(t, movements, 1)
	assert.Equal(t, "order-payment:2", movements[0].ID)
}

func TestNormalizeFallbackTimestamp(t *testing.T) {
	service, source := NewMock(t)

	created := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	expenses := []domain.Movement{
		// No effective time at all; must fall back to created_at, never be dropped.
		{Channel: domain.ChannelCash, Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(15), Source: domain.SourceExpense, SourceID: 7, CreatedAt: created},
		// Neither timestamp: deterministic fallback derived from the row id.
		{Channel: domain.ChannelCash, Direction: domain.DirectionDebit, Amount: decimal.NewFromInt(5), Source: domain.SourceExpense, SourceID: 8},
	}
	expectSources(source, domain.ChannelCash, nil, nil, expenses, nil)

	balance, err := service.BalanceAsOf(context.Background(), domain.ChannelCash, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(-20)), "got %s", balance)
}

func TestCollectErrors(t *testing.T) {
	service, source := NewMock(t)

	t.Run("timeout becomes transient", func(t *testing.T) {
		source.EXPECT().ListOrderPayments(gomock.Any(), domain.ChannelCash).Return(nil, context.DeadlineExceeded)

		_, err := service.BalanceAsOf(context.Background(), domain.ChannelCash, t4)
		assert.Error(t, err)
		assert.True(t, domain.IsTransient(err))
	})

	t.Run("other errors propagate as-is", func(t *testing.T) {
		dbErr := errors.New("db error")
		source.EXPECT().ListOrderPayments(gomock.Any(), domain.ChannelCash).Return(nil, nil)
		source.EXPECT().ListCapitalEvents(gomock.Any(), domain.ChannelCash).Return(nil, dbErr)

		_, err := service.BalanceAsOf(context.Background(), domain.ChannelCash, t4)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, domain.IsTransient(err))
	})
}
