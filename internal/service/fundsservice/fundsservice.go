package fundsservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
)

type Ledger interface {
	BalanceAsOf(ctx context.Context, channel domain.Channel, cutoff time.Time) (decimal.Decimal, error)
}

// Service decides whether a channel can cover a proposed debit. The verdict is
// advisory: balances can change between check and commit, so writers re-check
// inside their own transaction.
type Service struct {
	ledger Ledger
	now    func() time.Time
}

func New(ledger Ledger) *Service {
	return &Service{
		ledger: ledger,
		now:    time.Now,
	}
}

// IsSufficient reports whether the channel's current balance covers amount,
// along with the balance it was judged against. A store error is returned
// as-is and never collapsed into an insufficient verdict.
func (s *Service) IsSufficient(ctx context.Context, channel domain.Channel, amount decimal.Decimal) (bool, decimal.Decimal, error) {
	balance, err := s.ledger.BalanceAsOf(ctx, channel, s.now())
	if err != nil {
		zap.L().Error("failed to read balance for funds check",
			zap.String("channel", string(channel)), zap.Error(err))
		return false, decimal.Zero, err
	}
	return balance.GreaterThanOrEqual(amount), balance, nil
}

// EligibleChannels returns every channel whose current balance covers amount.
// An empty result means the caller must block the action entirely.
func (s *Service) EligibleChannels(ctx context.Context, amount decimal.Decimal) ([]domain.Channel, error) {
	var eligible []domain.Channel
	for _, channel := range domain.Channels() {
		ok, _, err := s.IsSufficient(ctx, channel, amount)
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, channel)
		}
	}
	return eligible, nil
}
