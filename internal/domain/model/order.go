package model

import "time"

type DiscountMode string

const (
	DiscountModePercent DiscountMode = "percent"
	DiscountModeAmount  DiscountMode = "amount"
)

// Order is the aggregate root. Every *ID field is either a valid row id or
// NULL, never a client placeholder.
type Order struct {
	ID                          string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID                  *string      `gorm:"type:uuid;index" json:"customer_id"`
	PurchaserContactID          *string      `gorm:"type:uuid" json:"purchaser_contact_id"`
	ReceiverContactID           *string      `gorm:"type:uuid" json:"receiver_contact_id"`
	TaxInvoiceID                *string      `gorm:"type:uuid" json:"tax_invoice_id"`
	TaxInvoiceDeliveryAddressID *string      `gorm:"type:uuid" json:"tax_invoice_delivery_address_id"`
	DeliveryAddressID           *string      `gorm:"type:uuid" json:"delivery_address_id"`
	OrderDate                   *time.Time   `gorm:"type:date" json:"order_date"`
	Total                       float64      `gorm:"not null;default:0" json:"total"`
	ShippingFee                 float64      `gorm:"not null;default:0" json:"shipping_fee"`
	VatRate                     float64      `gorm:"not null;default:0.07" json:"vat_rate"`
	JobType                     *string      `gorm:"type:varchar(50)" json:"job_type"`
	DiscountMode                DiscountMode `gorm:"type:varchar(10);not null;default:percent" json:"discount_mode"`
	DiscountValue               float64      `gorm:"not null;default:0" json:"discount_value"`
	CreatedAt                   time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Customer                  *Customer           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PurchaserContact          *CustomerContact    `gorm:"foreignKey:PurchaserContactID" json:"purchaser_contact,omitempty"`
	ReceiverContact           *CustomerContact    `gorm:"foreignKey:ReceiverContactID" json:"receiver_contact,omitempty"`
	TaxInvoice                *CustomerTaxInvoice `gorm:"foreignKey:TaxInvoiceID" json:"tax_invoice,omitempty"`
	TaxInvoiceDeliveryAddress *CustomerAddress    `gorm:"foreignKey:TaxInvoiceDeliveryAddressID" json:"tax_invoice_delivery_address,omitempty"`
	DeliveryAddress           *CustomerAddress    `gorm:"foreignKey:DeliveryAddressID" json:"delivery_address,omitempty"`
	Items                     []OrderItem         `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments                  []OrderPayment      `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}
