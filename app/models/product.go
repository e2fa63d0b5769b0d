package models

import "time"

// Product is a catalogue item. ID and CreatedAt are storage-assigned and
// never overwritten by updates.
type Product struct {
	ID            uint      `gorm:"primaryKey"                       json:"id"`
	Name          string    `gorm:"size:255;not null;index"          json:"name"`
	Price         float64   `gorm:"type:decimal(10,2);not null"      json:"price"`
	Description   string    `gorm:"type:text"                        json:"description"`
	StockQuantity int       `gorm:"column:stock_quantity;not null"   json:"stockQuantity"`
	Category      string    `gorm:"size:255;index"                   json:"category"`
	CreatedAt     time.Time `gorm:"autoCreateTime"                   json:"createdAt"`
}
