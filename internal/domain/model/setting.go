package model

import "time"

// Setting is a key/value row for shop-wide options (promptpay id, shop
// address, document footers and the like).
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// DocumentSequence is the per-(type, period) counter behind invoice and
// receipt numbers. last_value increments atomically in one statement.
type DocumentSequence struct {
	DocType   string `gorm:"type:varchar(10);primaryKey" json:"doc_type"`
	YearMonth string `gorm:"type:varchar(6);primaryKey" json:"year_month"`
	LastValue int64  `gorm:"not null;default:0" json:"last_value"`
}
