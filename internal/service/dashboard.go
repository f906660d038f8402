package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/conectahub/conecta/internal/database"
	"github.com/conectahub/conecta/internal/model"
)

type Period struct {
	From time.Time
	To   time.Time
}

// CurrentMonth covers the calendar month of t, first day 00:00:00 to last day
// 23:59:59.
func CurrentMonth(t time.Time) Period {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	return Period{
		From: first,
		To:   first.AddDate(0, 1, 0).Add(-time.Second),
	}
}

type MemberStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type ApplicationStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type ReferralStats struct {
	Total         int64 `json:"total"`
	Sent          int64 `json:"sent"`
	InNegotiation int64 `json:"inNegotiation"`
	Closed        int64 `json:"closed"`
	Declined      int64 `json:"declined"`
}

type ThankStats struct {
	Total int64 `json:"total"`
}

type Stats struct {
	PeriodStart   time.Time               `json:"periodStart"`
	PeriodEnd     time.Time               `json:"periodEnd"`
	Members       MemberStats             `json:"members"`
	Applications  ApplicationStats        `json:"applications"`
	Referrals     ReferralStats           `json:"referrals"`
	Thanks        ThankStats              `json:"thanks"`
	TopPerformers []*database.TopReferrer `json:"topPerformers"`
}

type DashboardService struct {
	dbm    *database.DatabaseManager
	logger *slog.Logger
}

func NewDashboardService(dbm *database.DatabaseManager) *DashboardService {
	return &DashboardService{
		dbm:    dbm,
		logger: slog.With("logger", "dashboard"),
	}
}

// GetStats aggregates the dashboard snapshot for a period, defaulting to the
// current calendar month. Member and application totals are not period-bound;
// referral and thanks counts and the top-performer ranking are. The counts are
// independent and run concurrently.
func (s *DashboardService) GetStats(ctx context.Context, period *Period) (*Stats, error) {
	p := CurrentMonth(time.Now())
	if period != nil {
		p = *period
	}

	res := &Stats{
		PeriodStart:   p.From,
		PeriodEnd:     p.To,
		TopPerformers: make([]*database.TopReferrer, 0),
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		res.Members = MemberStats{
			Total:    s.dbm.MemberQuery().Count(),
			Active:   s.dbm.MemberQuery().Status(model.MemberActive).Count(),
			Inactive: s.dbm.MemberQuery().Status(model.MemberInactive).Count(),
		}

		return nil
	})

	g.Go(func() error {
		res.Applications = ApplicationStats{
			Total:    s.dbm.ApplicationQuery().Count(),
			Pending:  s.dbm.ApplicationQuery().Status(model.StatusPending).Count(),
			Approved: s.dbm.ApplicationQuery().Status(model.StatusApproved).Count(),
			Rejected: s.dbm.ApplicationQuery().Status(model.StatusRejected).Count(),
		}

		return nil
	})

	g.Go(func() error {
		byStatus := s.dbm.ReferralQuery().CreatedBetween(p.From, p.To).CountByStatus()

		res.Referrals = ReferralStats{
			Sent:          byStatus[model.ReferralSent],
			InNegotiation: byStatus[model.ReferralInNegotiation],
			Closed:        byStatus[model.ReferralClosed],
			Declined:      byStatus[model.ReferralDeclined],
		}

		for _, n := range byStatus {
			res.Referrals.Total += n
		}

		return nil
	})

	g.Go(func() error {
		res.Thanks = ThankStats{
			Total: s.dbm.ThankQuery().CreatedBetween(p.From, p.To).Count(),
		}

		return nil
	})

	g.Go(func() error {
		if top := s.dbm.ReferralQuery().CreatedBetween(p.From, p.To).TopGivers(5); top != nil {
			res.TopPerformers = top
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
