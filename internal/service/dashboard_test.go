package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conectahub/conecta/internal/model"
)

func TestStatsEmptyDatabase(t *testing.T) {
	s := newTestServices(t)

	stats, err := s.dash.GetStats(context.Background(), nil)
	require.NoError(t, err)

	require.Zero(t, stats.Members.Total)
	require.Zero(t, stats.Applications.Total)
	require.Zero(t, stats.Referrals.Total)
	require.Zero(t, stats.Thanks.Total)
	require.NotNil(t, stats.TopPerformers)
	require.Empty(t, stats.TopPerformers)
}

func TestStats(t *testing.T) {
	s := newTestServices(t)

	a1 := s.approvedApplication(t, "ana@x.com")
	a2 := s.approvedApplication(t, "bia@x.com")
	_, err := s.apps.Create(applicationInput("caio@x.com"))
	require.NoError(t, err)

	m1, err := s.members.CreateFromInvite(memberInput(a1.Token()))
	require.NoError(t, err)
	m2, err := s.members.CreateFromInvite(memberInput(a2.Token()))
	require.NoError(t, err)

	now := time.Now()
	s.dbm.Save(&model.Referral{ID: "r1", MemberID: m1.ID, Status: model.ReferralSent, CreatedAt: now})
	s.dbm.Save(&model.Referral{ID: "r2", MemberID: m1.ID, Status: model.ReferralClosed, CreatedAt: now})
	s.dbm.Save(&model.Referral{ID: "r3", MemberID: m2.ID, Status: model.ReferralSent, CreatedAt: now})
	// outside the period, must not count
	s.dbm.Save(&model.Referral{ID: "r4", MemberID: m2.ID, Status: model.ReferralSent, CreatedAt: now.AddDate(0, -2, 0)})
	s.dbm.Save(&model.Thank{ID: "t1", MemberID: m1.ID, CreatedAt: now})
	s.dbm.Save(&model.Thank{ID: "t2", MemberID: m2.ID, CreatedAt: now.AddDate(0, -2, 0)})

	period := CurrentMonth(now)

	stats, err := s.dash.GetStats(context.Background(), &period)
	require.NoError(t, err)

	require.EqualValues(t, 2, stats.Members.Total)
	require.EqualValues(t, 2, stats.Members.Active)
	require.EqualValues(t, 0, stats.Members.Inactive)

	require.EqualValues(t, 3, stats.Applications.Total)
	require.EqualValues(t, 1, stats.Applications.Pending)
	require.EqualValues(t, 2, stats.Applications.Approved)

	require.EqualValues(t, 3, stats.Referrals.Total)
	require.EqualValues(t, 2, stats.Referrals.Sent)
	require.EqualValues(t, 1, stats.Referrals.Closed)

	require.EqualValues(t, 1, stats.Thanks.Total)

	require.Len(t, stats.TopPerformers, 2)
	require.Equal(t, m1.ID, stats.TopPerformers[0].MemberID)
	require.EqualValues(t, 2, stats.TopPerformers[0].Count)
}

func TestCurrentMonth(t *testing.T) {
	p := CurrentMonth(time.Date(2026, 2, 14, 12, 30, 0, 0, time.UTC))

	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), p.From)
	require.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), p.To)
}
