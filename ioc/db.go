package ioc

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the alert ledger store. TranslateError is required: the
// dedup logic relies on unique-key violations surfacing as
// gorm.ErrDuplicatedKey.
func InitDB() *gorm.DB {
	path := viper.GetString("db_path")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Errorf("failed to open ledger db %s: %w", path, err))
	}
	return db
}
