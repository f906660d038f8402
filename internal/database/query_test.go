package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/conectahub/conecta/internal/model"
)

func getTestDatabase() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&model.Application{}, &model.Member{}, &model.Referral{}, &model.Thank{})

	return db
}

func app(id, email, status string, submitted time.Time) *model.Application {
	return &model.Application{
		ID:          id,
		Name:        "n_" + id,
		Email:       email,
		Company:     "c_" + id,
		Motivation:  "m",
		Status:      status,
		SubmittedAt: submitted,
	}
}

func TestApplicationQuery_Filter(t *testing.T) {
	db := getTestDatabase()

	now := time.Now()
	db.Save(app("a1", "a1@x.com", model.StatusPending, now.Add(-time.Hour)))
	db.Save(app("a2", "a2@x.com", model.StatusPending, now))
	db.Save(app("a3", "a3@x.com", model.StatusApproved, now.Add(-time.Minute)))

	require.EqualValues(t, 3, NewApplicationQuery(db).Count())
	require.EqualValues(t, 2, NewApplicationQuery(db).Status(model.StatusPending).Count())

	res := NewApplicationQuery(db).Status(model.StatusPending).Get()
	require.Len(t, res, 2)
	// newest first
	require.Equal(t, "a2", res[0].ID)

	require.Nil(t, NewApplicationQuery(db).Id("nope").One())
	require.Equal(t, "a1", NewApplicationQuery(db).Email("a1@x.com").One().ID)
}

func TestApplicationQuery_Paging(t *testing.T) {
	db := getTestDatabase()

	now := time.Now()
	for i, id := range []string{"a1", "a2", "a3", "a4", "a5"} {
		db.Save(app(id, id+"@x.com", model.StatusPending, now.Add(time.Duration(i)*time.Minute)))
	}

	res := NewApplicationQuery(db).Limit(2).Offset(2).Get()
	require.Len(t, res, 2)
	require.Equal(t, "a3", res[0].ID)
	require.Equal(t, "a2", res[1].ID)
}

func TestApplicationQuery_ConditionalUpdate(t *testing.T) {
	db := getTestDatabase()

	db.Save(app("a1", "a1@x.com", model.StatusPending, time.Now()))

	err := NewApplicationQuery(db).Id("a1").Status(model.StatusPending).
		Update(map[string]any{"status": model.StatusApproved, "reviewed_by": "Carla"})
	require.NoError(t, err)

	// second transition must not match
	err = NewApplicationQuery(db).Id("a1").Status(model.StatusPending).
		Update(map[string]any{"status": model.StatusRejected})
	require.ErrorIs(t, err, ErrNoRowsUpdated)

	require.Equal(t, model.StatusApproved, NewApplicationQuery(db).Id("a1").One().Status)
}

func TestMemberQuery_Full(t *testing.T) {
	db := getTestDatabase()

	db.Save(app("a1", "a1@x.com", model.StatusApproved, time.Now()))
	db.Save(&model.Member{
		ID:            "m1",
		ApplicationID: "a1",
		Name:          "Ana",
		Email:         "a1@x.com",
		Company:       "Acme",
		Expertise:     []string{"Vendas"},
		Status:        model.MemberActive,
		JoinedAt:      time.Now(),
	})

	m := NewMemberQuery(db).Id("m1").Full().One()
	require.NotNil(t, m)
	require.NotNil(t, m.Application)
	require.Equal(t, "a1", m.Application.ID)
	require.Equal(t, []string{"Vendas"}, m.Expertise)

	require.EqualValues(t, 1, NewMemberQuery(db).Status(model.MemberActive).Count())
	require.EqualValues(t, 0, NewMemberQuery(db).Status(model.MemberInactive).Count())
	require.NotNil(t, NewMemberQuery(db).Application("a1").One())
}

func TestReferralQuery_Grouping(t *testing.T) {
	db := getTestDatabase()

	db.Save(&model.Member{ID: "m1", ApplicationID: "a1", Name: "Ana", Email: "a@x.com", Company: "Acme", Status: model.MemberActive})
	db.Save(&model.Member{ID: "m2", ApplicationID: "a2", Name: "Bia", Email: "b@x.com", Company: "Beta", Status: model.MemberActive})
	db.Save(&model.Member{ID: "m3", ApplicationID: "a3", Name: "Caio", Email: "c@x.com", Company: "Gama", Status: model.MemberInactive})

	now := time.Now()
	db.Save(&model.Referral{ID: "r1", MemberID: "m1", Status: model.ReferralSent, CreatedAt: now})
	db.Save(&model.Referral{ID: "r2", MemberID: "m1", Status: model.ReferralClosed, CreatedAt: now})
	db.Save(&model.Referral{ID: "r3", MemberID: "m2", Status: model.ReferralSent, CreatedAt: now})
	db.Save(&model.Referral{ID: "r4", MemberID: "m3", Status: model.ReferralSent, CreatedAt: now})
	db.Save(&model.Referral{ID: "r5", MemberID: "m1", Status: model.ReferralSent, CreatedAt: now.Add(-time.Hour * 24 * 40)})

	from, to := now.Add(-time.Hour), now.Add(time.Hour)

	byStatus := NewReferralQuery(db).CreatedBetween(from, to).CountByStatus()
	require.EqualValues(t, 3, byStatus[model.ReferralSent])
	require.EqualValues(t, 1, byStatus[model.ReferralClosed])

	top := NewReferralQuery(db).CreatedBetween(from, to).TopGivers(5)
	require.Len(t, top, 2) // inactive m3 is excluded
	require.Equal(t, "m1", top[0].MemberID)
	require.EqualValues(t, 2, top[0].Count)
	require.Equal(t, "m2", top[1].MemberID)
}

func TestThankQuery_Range(t *testing.T) {
	db := getTestDatabase()

	now := time.Now()
	db.Save(&model.Thank{ID: "t1", MemberID: "m1", CreatedAt: now})
	db.Save(&model.Thank{ID: "t2", MemberID: "m1", CreatedAt: now.Add(-time.Hour * 24 * 40)})

	require.EqualValues(t, 2, NewThankQuery(db).Count())
	require.EqualValues(t, 1, NewThankQuery(db).CreatedBetween(now.Add(-time.Hour), now.Add(time.Hour)).Count())
}
