package database

import (
	"gorm.io/gorm"

	"github.com/conectahub/conecta/internal/model"
)

type ApplicationQuery struct {
	Query[model.Application]
	id     string
	email  string
	token  string
	status string
}

func NewApplicationQuery(db *gorm.DB) *ApplicationQuery {
	return &ApplicationQuery{
		Query: Query[model.Application]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "submitted_at DESC",
		},
	}
}

func (q *ApplicationQuery) Order(s string) *ApplicationQuery {
	q.order = s
	return q
}

func (q *ApplicationQuery) Limit(n int) *ApplicationQuery {
	q.limit = n
	return q
}

func (q *ApplicationQuery) Offset(n int) *ApplicationQuery {
	q.offset = n
	return q
}

func (q *ApplicationQuery) Id(id string) *ApplicationQuery {
	q.id = id
	return q
}

func (q *ApplicationQuery) Email(email string) *ApplicationQuery {
	q.email = email
	return q
}

func (q *ApplicationQuery) Token(token string) *ApplicationQuery {
	q.token = token
	return q
}

func (q *ApplicationQuery) Status(status string) *ApplicationQuery {
	q.status = status
	return q
}

func (q *ApplicationQuery) where() *gorm.DB {
	tx := q.db

	if q.id != "" {
		tx = tx.Where("id = ?", q.id)
	}

	if q.email != "" {
		tx = tx.Where("email = ?", q.email)
	}

	if q.token != "" {
		tx = tx.Where("invite_token = ?", q.token)
	}

	if q.status != "" {
		tx = tx.Where("status = ?", q.status)
	}

	return tx
}

func (q *ApplicationQuery) Get() []*model.Application {
	return q.get(q.where().Model(&model.Application{}))
}

func (q *ApplicationQuery) One() *model.Application {
	return q.one(q.where().Model(&model.Application{}))
}

func (q *ApplicationQuery) Count() int64 {
	return q.count(q.where().Model(&model.Application{}))
}

// Update applies the updates to every matching row and fails with
// ErrNoRowsUpdated when nothing matched. With a Status filter this is the
// atomic conditional write the review transition relies on.
func (q *ApplicationQuery) Update(updates map[string]any) error {
	return q.updateOrError(q.where().Model(&model.Application{}), updates)
}
