package entity

import (
	"time"
)

// Alert 已发送的异动提醒
// (Symbol, OpenTime) 唯一, 同一根K线只允许一条记录
type Alert struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Symbol      string `gorm:"uniqueIndex:alert_key"`
	OpenTime    int64  `gorm:"uniqueIndex:alert_key"` // candle open, unix milli
	MovePercent float64
	SentAt      time.Time
	CreatedAt   time.Time `gorm:"index"`
}
