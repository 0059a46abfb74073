package model

import "time"

const (
	PaymentTypeDeposit = "deposit"

	PaymentStatusCompleted = "Completed"
)

// OrderPayment rows have no stable client-side identity: the whole set for
// an order is deleted and re-inserted on every save.
type OrderPayment struct {
	ID                string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID           string     `gorm:"type:uuid;not null;index" json:"order_id"`
	PaymentDate       *time.Time `gorm:"type:date" json:"payment_date"`
	Amount            float64    `gorm:"not null;default:0" json:"amount"`
	PaymentMethod     *string    `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentType       string     `gorm:"type:varchar(20);not null;default:deposit" json:"payment_type"`
	ProofURL          *string    `json:"proof_url"`
	ReceiverSignature *string    `json:"receiver_signature"`
	PayerSignature    *string    `json:"payer_signature"`
	Status            string     `gorm:"type:varchar(20);not null;default:Completed" json:"status"`
	IsDeposit         bool       `gorm:"not null;default:false" json:"is_deposit"`
	InvoiceNo         *string    `gorm:"type:varchar(30)" json:"invoice_no"`
	InvoiceDate       *time.Time `gorm:"type:date" json:"invoice_date"`
	ReceiptNo         *string    `gorm:"type:varchar(30)" json:"receipt_no"`
	ReceiptDate       *time.Time `gorm:"type:date" json:"receipt_date"`
	CreatedAt         time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
}
