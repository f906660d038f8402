package service

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/conectahub/conecta/internal/database"
	"github.com/conectahub/conecta/internal/notify"
	"github.com/conectahub/conecta/internal/token"
	"github.com/conectahub/conecta/internal/validation"
)

type testServices struct {
	apps    *ApplicationService
	members *MemberService
	dash    *DashboardService
	dbm     *database.DatabaseManager
	codec   *token.Codec
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	dbm := database.New(db)
	require.NoError(t, dbm.Migrate())

	codec := token.NewCodec("test-secret", time.Hour*24*7)
	n := notify.NewLogNotifier()

	return &testServices{
		apps:    NewApplicationService(dbm, codec, n, "http://localhost:8080"),
		members: NewMemberService(dbm, codec, n),
		dash:    NewDashboardService(dbm),
		dbm:     dbm,
		codec:   codec,
	}
}

func applicationInput(email string) *validation.ApplicationInput {
	return &validation.ApplicationInput{
		Name:       "Ana Souza",
		Email:      email,
		Company:    "Acme",
		Motivation: strings.Repeat("quero participar ", 4),
	}
}

func listQuery(status string, page, limit int) *validation.ListQuery {
	return &validation.ListQuery{Status: status, Page: page, Limit: limit}
}
