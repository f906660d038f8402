package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/conectahub/conecta/internal/model"
)

type ReferralQuery struct {
	Query[model.Referral]
	memberID string
	status   string
	from     time.Time
	to       time.Time
}

func NewReferralQuery(db *gorm.DB) *ReferralQuery {
	return &ReferralQuery{
		Query: Query[model.Referral]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "created_at DESC",
		},
	}
}

func (q *ReferralQuery) Member(id string) *ReferralQuery {
	q.memberID = id
	return q
}

func (q *ReferralQuery) Status(status string) *ReferralQuery {
	q.status = status
	return q
}

func (q *ReferralQuery) CreatedBetween(from, to time.Time) *ReferralQuery {
	q.from = from
	q.to = to

	return q
}

func (q *ReferralQuery) where() *gorm.DB {
	tx := q.db

	if q.memberID != "" {
		tx = tx.Where("member_id = ?", q.memberID)
	}

	if q.status != "" {
		tx = tx.Where("status = ?", q.status)
	}

	if !q.from.IsZero() {
		tx = tx.Where("referrals.created_at >= ?", q.from)
	}

	if !q.to.IsZero() {
		tx = tx.Where("referrals.created_at <= ?", q.to)
	}

	return tx
}

func (q *ReferralQuery) Get() []*model.Referral {
	return q.get(q.where().Model(&model.Referral{}))
}

func (q *ReferralQuery) Count() int64 {
	return q.count(q.where().Model(&model.Referral{}))
}

// CountByStatus groups the matching referrals by status.
func (q *ReferralQuery) CountByStatus() map[string]int64 {
	var rows []struct {
		Status string
		Cnt    int64
	}

	q.where().Model(&model.Referral{}).
		Select("status, count(*) as cnt").
		Group("status").
		Scan(&rows)

	res := make(map[string]int64, len(rows))

	for _, r := range rows {
		res[r.Status] = r.Cnt
	}

	return res
}

type TopReferrer struct {
	MemberID string `gorm:"column:member_id" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	Company  string `gorm:"column:company" json:"company"`
	Count    int64  `gorm:"column:cnt" json:"referralsCount"`
}

// TopGivers ranks active members by referrals given, most first.
func (q *ReferralQuery) TopGivers(n int) []*TopReferrer {
	var res []*TopReferrer

	q.where().Model(&model.Referral{}).
		Select("referrals.member_id as member_id, members.name as name, members.company as company, count(*) as cnt").
		Joins("JOIN members ON members.id = referrals.member_id").
		Where("members.status = ?", model.MemberActive).
		Group("referrals.member_id, members.name, members.company").
		Order("cnt DESC").
		Limit(n).
		Scan(&res)

	return res
}
