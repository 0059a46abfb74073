package model

import "time"

// Product rows are catalog data; this module only resolves references into
// them, it never mutates them.
type Product struct {
	ID          string    `gorm:"column:uuid;type:uuid;primaryKey;default:gen_random_uuid()" json:"uuid"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description *string   `json:"description"`
	ProductCode *string   `gorm:"type:varchar(50);uniqueIndex" json:"product_code"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

type ProductVariant struct {
	ID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductID string  `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      *string `gorm:"type:varchar(200)" json:"name"`
	ImageURL  *string `json:"image_url"`
}
