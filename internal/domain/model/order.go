package model

import "time"

// 注文1件。itemsはJSONエンコード済みのテキスト1本で保持する（配列型のままは保存しない）。
type Order struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone         string    `gorm:"type:varchar(50);not null" json:"phone"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Items         string    `gorm:"type:text;not null" json:"-"`
	Subtotal      float64   `gorm:"not null" json:"subtotal"`
	Shipping      float64   `gorm:"not null" json:"shipping"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`
	DeliveryType  string    `gorm:"type:varchar(50);not null" json:"delivery_type"`
	PaymentMethod string    `gorm:"type:varchar(50)" json:"payment_method"`
	Status        string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
