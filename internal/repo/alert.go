package repo

import (
	"context"
	"errors"
	"time"

	"github.com/fzhv/binance-move-alert/internal/entity"
	"gorm.io/gorm"
)

// ErrDuplicateAlert means an alert for this (symbol, open time) was already
// recorded. The unique index rejects the insert at the storage layer, so a
// Create racing another Create for the same key loses cleanly; the caller
// must suppress the notification on this error.
var ErrDuplicateAlert = errors.New("repo: alert already recorded")

type AlertRepo interface {
	Create(ctx context.Context, alert entity.Alert) (int64, error)
	HasAlerted(ctx context.Context, symbol string, openTime time.Time) (bool, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &alertRepo{
		db: db,
	}
}

func (r *alertRepo) Create(ctx context.Context, alert entity.Alert) (int64, error) {
	err := r.db.WithContext(ctx).Create(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateAlert
		}
		return 0, err
	}
	return alert.Id, nil
}

func (r *alertRepo) HasAlerted(ctx context.Context, symbol string, openTime time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Alert{}).
		Where("symbol = ? AND open_time = ?", symbol, openTime.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
