package repository

import (
	"context"
	"errors"

	"github.com/dvcwatch/availability-alerts/internal/modules/alert/domain"
	"github.com/samber/oops"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type sqliteRepository struct {
	db *gorm.DB
}

// Open opens the alerts database at path, creating the file and the alerts
// table when absent. The handle is shared for the process lifetime.
func Open(path string) (Repository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, oops.With("database_path", path).Wrap(err)
	}
	if err := db.AutoMigrate(&domain.State{}); err != nil {
		return nil, oops.With("database_path", path).Wrap(err)
	}
	return &sqliteRepository{db: db}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, alertName string) (string, bool, error) {
	var state domain.State
	err := r.db.WithContext(ctx).First(&state, "alert_name = ?", alertName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, oops.With("alert_name", alertName).Wrap(err)
	}
	return state.LastResult, true, nil
}

func (r *sqliteRepository) Put(ctx context.Context, alertName, result string) error {
	state := domain.State{AlertName: alertName, LastResult: result}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "alert_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_result"}),
		}).
		Create(&state).Error
	if err != nil {
		return oops.With("alert_name", alertName).Wrap(err)
	}
	return nil
}
