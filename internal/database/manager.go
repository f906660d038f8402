package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/conectahub/conecta/internal/model"
)

type DatabaseManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB) *DatabaseManager {
	m := &DatabaseManager{
		db:     db,
		logger: slog.With("logger", "dbm"),
	}

	return m
}

func (mm *DatabaseManager) Create(s any) error {
	if mm == nil || mm.db == nil {
		return nil
	}

	err := mm.db.Create(s).Error

	if err != nil {
		mm.logger.Error("error create object", slog.Any("error", err))
	}

	return err
}

func (mm *DatabaseManager) Save(s any) error {
	if mm == nil || mm.db == nil {
		return nil
	}

	err := mm.db.Save(s).Error

	if err != nil {
		mm.logger.Error("error saving object", slog.Any("error", err))
	}

	return err
}

func (mm *DatabaseManager) ApplicationQuery() *ApplicationQuery {
	return NewApplicationQuery(mm.db)
}

func (mm *DatabaseManager) MemberQuery() *MemberQuery {
	return NewMemberQuery(mm.db)
}

func (mm *DatabaseManager) ReferralQuery() *ReferralQuery {
	return NewReferralQuery(mm.db)
}

func (mm *DatabaseManager) ThankQuery() *ThankQuery {
	return NewThankQuery(mm.db)
}

func (mm *DatabaseManager) Migrate() error {
	if mm == nil || mm.db == nil {
		return fmt.Errorf("no database")
	}

	// Migrate the schema
	if err := mm.db.AutoMigrate(
		&model.Application{},
		&model.Member{},
		&model.Referral{},
		&model.Thank{},
	); err != nil {
		return err
	}

	return nil
}

// Ping checks store reachability for the health endpoint.
func (mm *DatabaseManager) Ping() error {
	if mm == nil || mm.db == nil {
		return fmt.Errorf("no database")
	}

	return mm.db.Exec("SELECT 1").Error
}
