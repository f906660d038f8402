package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/conectahub/conecta/internal/model"
)

type ThankQuery struct {
	Query[model.Thank]
	memberID string
	from     time.Time
	to       time.Time
}

func NewThankQuery(db *gorm.DB) *ThankQuery {
	return &ThankQuery{
		Query: Query[model.Thank]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "created_at DESC",
		},
	}
}

func (q *ThankQuery) Member(id string) *ThankQuery {
	q.memberID = id
	return q
}

func (q *ThankQuery) CreatedBetween(from, to time.Time) *ThankQuery {
	q.from = from
	q.to = to

	return q
}

func (q *ThankQuery) where() *gorm.DB {
	tx := q.db

	if q.memberID != "" {
		tx = tx.Where("member_id = ?", q.memberID)
	}

	if !q.from.IsZero() {
		tx = tx.Where("created_at >= ?", q.from)
	}

	if !q.to.IsZero() {
		tx = tx.Where("created_at <= ?", q.to)
	}

	return tx
}

func (q *ThankQuery) Get() []*model.Thank {
	return q.get(q.where().Model(&model.Thank{}))
}

func (q *ThankQuery) Count() int64 {
	return q.count(q.where().Model(&model.Thank{}))
}
