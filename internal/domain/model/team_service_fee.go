package model

import "time"

// TeamServiceFee groups jobs into one payout batch for a team.
type TeamServiceFee struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Team      string    `gorm:"type:varchar(100);not null" json:"team"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TeamServiceFeeJob links jobs to payout batches many-to-many. Upserts use
// duplicate-ignore semantics on the composite key.
type TeamServiceFeeJob struct {
	ServiceFeeID string `gorm:"type:uuid;primaryKey" json:"service_fee_id"`
	JobID        string `gorm:"type:uuid;primaryKey" json:"job_id"`
}
