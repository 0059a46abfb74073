package model

import "time"

// OrderItem rows are client-keyed: the id is assigned before the upsert so
// jobs can reference it in the same save.
type OrderItem struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID          string    `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID        *string   `gorm:"type:uuid" json:"product_id"`
	ProductVariantID *string   `gorm:"type:uuid" json:"product_variant_id"`
	Quantity         int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice        float64   `gorm:"not null;default:0" json:"unit_price"`
	Remark           *string   `json:"remark"`
	Light            *string   `gorm:"type:varchar(100)" json:"light"`
	LightColor       *string   `gorm:"type:varchar(100)" json:"light_color"`
	Remote           *string   `gorm:"type:varchar(100)" json:"remote"`
	Status           *string   `gorm:"type:varchar(50)" json:"status"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Product *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant *ProductVariant `gorm:"foreignKey:ProductVariantID" json:"variant,omitempty"`
	Jobs    []Job           `gorm:"foreignKey:OrderItemID" json:"jobs,omitempty"`
}
