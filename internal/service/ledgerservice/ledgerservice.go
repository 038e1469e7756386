package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
)

// MovementSource is the movement store adapter: four independent, read-only,
// non-transactional query surfaces.
type MovementSource interface {
	ListOrderPayments(ctx context.Context, channel domain.Channel) ([]domain.Movement, error)
	ListCapitalEvents(ctx context.Context, channel domain.Channel) ([]domain.Movement, error)
	ListExpenses(ctx context.Context, channel domain.Channel) ([]domain.Movement, error)
	ListMaintenanceCosts(ctx context.Context, channel domain.Channel) ([]domain.Movement, error)
}

// Service reconstructs channel balances from the union of the four movement
// sources. It is read-only and idempotent: repeated calls over an unchanged
// store return the same result.
type Service struct {
	source MovementSource
	now    func() time.Time
}

type Option func(*Service)

// WithNow replaces the wall clock used for zero cutoffs. For tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(source MovementSource, opts ...Option) *Service {
	s := &Service{
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MovementsInRange returns the chronologically ordered union of all four
// sources for a channel, restricted to start <= effectiveAt <= end. A zero
// end means "up to now".
func (s *Service) MovementsInRange(ctx context.Context, channel domain.Channel, start, end time.Time) ([]domain.Movement, error) {
	if end.IsZero() {
		end = s.now()
	}
	movements, err := s.collect(ctx, channel)
	if err != nil {
		return nil, err
	}

	filtered := movements[:0]
	for _, m := range movements {
		if m.EffectiveAt.Before(start) || m.EffectiveAt.After(end) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// BalanceAsOf sums the signed amounts of every movement on the channel with
// effectiveAt <= cutoff. Future-dated movements stay out until their time comes.
// A zero cutoff means the current balance.
func (s *Service) BalanceAsOf(ctx context.Context, channel domain.Channel, cutoff time.Time) (decimal.Decimal, error) {
	if cutoff.IsZero() {
		cutoff = s.now()
	}
	movements, err := s.collect(ctx, channel)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, m := range movements {
		if m.EffectiveAt.After(cutoff) {
			continue
		}
		balance = balance.Add(m.Signed())
	}
	return balance, nil
}

// BalanceInRange is the signed sum over MovementsInRange, so for any t1 < t2:
// BalanceAsOf(t2) == BalanceAsOf(t1) + BalanceInRange(t1+, t2).
func (s *Service) BalanceInRange(ctx context.Context, channel domain.Channel, start, end time.Time) (decimal.Decimal, error) {
	movements, err := s.MovementsInRange(ctx, channel, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, m := range movements {
		balance = balance.Add(m.Signed())
	}
	return balance, nil
}

// collect unions the four sources, normalizes each movement and merge-sorts by
// effective time. There is no single cross-source query that could return a
// consistent snapshot, so all four are read every time.
func (s *Service) collect(ctx context.Context, channel domain.Channel) ([]domain.Movement, error) {
	reads := []struct {
		op   string
		list func(context.Context, domain.Channel) ([]domain.Movement, error)
	}{
		{"order payments", s.source.ListOrderPayments},
		{"capital events", s.source.ListCapitalEvents},
		{"expenses", s.source.ListExpenses},
		{"maintenance costs", s.source.ListMaintenanceCosts},
	}

	var all []domain.Movement
	for _, read := range reads {
		movements, err := read.list(ctx, channel)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, &domain.TransientStoreError{Op: "list " + read.op, Err: err}
			}
			zap.L().Error("failed to read movement source", zap.String("source", read.op), zap.Error(err))
			return nil, err
		}
		all = append(all, movements...)
	}

	for i := range all {
		s.normalize(&all[i])
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].EffectiveAt.Equal(all[j].EffectiveAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].EffectiveAt.Before(all[j].EffectiveAt)
	})
	return all, nil
}

// normalize qualifies the movement id with its source category and assigns a
// deterministic fallback for a missing effective timestamp. A movement is never
// dropped for a bad timestamp: exclusion would silently corrupt the balance.
func (s *Service) normalize(m *domain.Movement) {
	m.ID = fmt.Sprintf("%s:%d", m.Source, m.SourceID)

	if !m.EffectiveAt.IsZero() {
		return
	}

	fallback := m.CreatedAt
	if fallback.IsZero() {
		fallback = time.Unix(int64(m.SourceID), 0).UTC()
	}
	m.EffectiveAt = fallback

	zap.L().Warn("movement has no effective timestamp, using fallback",
		zap.String("movement", m.ID),
		zap.String("channel", string(m.Channel)),
		zap.Time("fallback", fallback),
	)
}
