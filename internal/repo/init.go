package repo

import (
	"github.com/fzhv/binance-move-alert/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Alert{})
}
