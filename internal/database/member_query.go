package database

import (
	"gorm.io/gorm"

	"github.com/conectahub/conecta/internal/model"
)

type MemberQuery struct {
	Query[model.Member]
	id            string
	email         string
	applicationID string
	status        string
	full          bool
}

func NewMemberQuery(db *gorm.DB) *MemberQuery {
	return &MemberQuery{
		Query: Query[model.Member]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "joined_at DESC",
		},
	}
}

func (q *MemberQuery) Order(s string) *MemberQuery {
	q.order = s
	return q
}

// Limit caps the result set. Zero removes the default cap.
func (q *MemberQuery) Limit(n int) *MemberQuery {
	q.limit = n
	return q
}

func (q *MemberQuery) Offset(n int) *MemberQuery {
	q.offset = n
	return q
}

func (q *MemberQuery) Id(id string) *MemberQuery {
	q.id = id
	return q
}

func (q *MemberQuery) Email(email string) *MemberQuery {
	q.email = email
	return q
}

func (q *MemberQuery) Application(id string) *MemberQuery {
	q.applicationID = id
	return q
}

func (q *MemberQuery) Status(status string) *MemberQuery {
	q.status = status
	return q
}

// Full preloads the originating application.
func (q *MemberQuery) Full() *MemberQuery {
	q.full = true
	return q
}

func (q *MemberQuery) where() *gorm.DB {
	tx := q.db

	if q.id != "" {
		tx = tx.Where("id = ?", q.id)
	}

	if q.email != "" {
		tx = tx.Where("email = ?", q.email)
	}

	if q.applicationID != "" {
		tx = tx.Where("application_id = ?", q.applicationID)
	}

	if q.status != "" {
		tx = tx.Where("status = ?", q.status)
	}

	if q.full {
		tx = tx.Preload("Application")
	}

	return tx
}

func (q *MemberQuery) Get() []*model.Member {
	return q.get(q.where().Model(&model.Member{}))
}

func (q *MemberQuery) One() *model.Member {
	return q.one(q.where().Model(&model.Member{}))
}

func (q *MemberQuery) Count() int64 {
	return q.count(q.where().Model(&model.Member{}))
}

func (q *MemberQuery) Update(updates map[string]any) error {
	return q.updateOrError(q.where().Model(&model.Member{}), updates)
}
