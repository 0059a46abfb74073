package model

import "time"

// Job status labels are free text at the store level. These are the values
// the UI writes today; the status deriver tolerates anything else.
const (
	JobStatusPending    = "รอดำเนินการ"
	JobStatusProcessing = "กำลังดำเนินการ"
	JobStatusCompleted  = "เสร็จสิ้น"
	JobStatusCancelled  = "ยกเลิก"
)

const JobTypeInstallation = "installation"

// Job belongs to one order item and carries a redundant order_id so the job
// board can query by order without going through items.
type Job struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	OrderItemID     string     `gorm:"type:uuid;not null;index" json:"order_item_id"`
	OrderID         string     `gorm:"type:uuid;not null;index" json:"order_id"`
	JobType         string     `gorm:"type:varchar(50);not null;default:installation" json:"job_type"`
	Status          string     `gorm:"type:varchar(50);not null" json:"status"`
	AssignedTeam    *string    `gorm:"type:varchar(100)" json:"assigned_team"`
	AppointmentDate *time.Time `json:"appointment_date"`
	CompletionDate  *time.Time `json:"completion_date"`
	Notes           *string    `json:"notes"`
	SequenceNumber  int        `gorm:"not null;default:1" json:"sequence_number"`
	LocationID      *string    `gorm:"type:uuid" json:"location_id"`
	InspectorID     *string    `gorm:"type:uuid" json:"inspector_id"`
	TeamPaymentID   *string    `gorm:"type:uuid" json:"team_payment_id"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`

	Order         *Order           `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	OrderItem     *OrderItem       `gorm:"foreignKey:OrderItemID" json:"order_item,omitempty"`
	SiteAddress   *CustomerAddress `gorm:"foreignKey:LocationID" json:"site_address,omitempty"`
	SiteInspector *Inspector       `gorm:"foreignKey:InspectorID" json:"site_inspector,omitempty"`
	TeamPayment   *TeamServiceFee  `gorm:"foreignKey:TeamPaymentID" json:"team_payment,omitempty"`
}

// JobCompletion holds the sign-off a technician collects on site.
type JobCompletion struct {
	JobID        string    `gorm:"type:uuid;primaryKey" json:"job_id"`
	SignatureURL *string   `json:"signature_url"`
	Rating       *int      `json:"rating"`
	Comment      *string   `json:"comment"`
	Media        *string   `json:"media"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
