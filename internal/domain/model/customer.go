package model

import "time"

// Customer and its sub-rows are referenced by orders, never owned by them.
type Customer struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone"`
	Email     *string   `gorm:"type:varchar(200)" json:"email"`
	Line      *string   `gorm:"type:varchar(100)" json:"line"`
	Facebook  *string   `gorm:"type:varchar(200)" json:"facebook"`
	Instagram *string   `gorm:"type:varchar(200)" json:"instagram"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Addresses   []CustomerAddress    `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"`
	Contacts    []CustomerContact    `gorm:"foreignKey:CustomerID" json:"contacts,omitempty"`
	TaxInvoices []CustomerTaxInvoice `gorm:"foreignKey:CustomerID" json:"tax_invoices,omitempty"`
}

// CustomerAddress keeps both the component columns and a denormalized
// address string; the display string is rebuilt from components on read.
type CustomerAddress struct {
	ID          string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID  *string  `gorm:"type:uuid;index" json:"customer_id"`
	Label       *string  `gorm:"type:varchar(100)" json:"label"`
	HouseNumber *string  `gorm:"type:varchar(30)" json:"house_number"`
	VillageNo   *string  `gorm:"type:varchar(30)" json:"village_no"`
	Building    *string  `gorm:"type:varchar(200)" json:"building"`
	Soi         *string  `gorm:"type:varchar(100)" json:"soi"`
	Road        *string  `gorm:"type:varchar(100)" json:"road"`
	Subdistrict *string  `gorm:"type:varchar(100)" json:"subdistrict"`
	District    *string  `gorm:"type:varchar(100)" json:"district"`
	Province    *string  `gorm:"type:varchar(100)" json:"province"`
	PostalCode  *string  `gorm:"type:varchar(10)" json:"postal_code"`
	Address     *string  `json:"address"`
	Maps        *string  `json:"maps"`
	Distance    *float64 `json:"distance"`
}

type CustomerContact struct {
	ID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID *string `gorm:"type:uuid;index" json:"customer_id"`
	Name       string  `gorm:"type:varchar(200);not null" json:"name"`
	Phone      *string `gorm:"type:varchar(30)" json:"phone"`
	Email      *string `gorm:"type:varchar(200)" json:"email"`
	Line       *string `gorm:"type:varchar(100)" json:"line"`
	Position   *string `gorm:"type:varchar(100)" json:"position"`
	Note       *string `json:"note"`
}

// CustomerTaxInvoice carries both company and the legacy company_name
// column; readers must not care which one was filled.
type CustomerTaxInvoice struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID  *string `gorm:"type:uuid;index" json:"customer_id"`
	Company     *string `gorm:"type:varchar(200)" json:"company"`
	CompanyName *string `gorm:"type:varchar(200)" json:"company_name"`
	TaxID       *string `gorm:"type:varchar(20)" json:"tax_id"`
	Branch      *string `gorm:"type:varchar(100)" json:"branch"`
	HouseNumber *string `gorm:"type:varchar(30)" json:"house_number"`
	VillageNo   *string `gorm:"type:varchar(30)" json:"village_no"`
	Building    *string `gorm:"type:varchar(200)" json:"building"`
	Soi         *string `gorm:"type:varchar(100)" json:"soi"`
	Road        *string `gorm:"type:varchar(100)" json:"road"`
	Subdistrict *string `gorm:"type:varchar(100)" json:"subdistrict"`
	District    *string `gorm:"type:varchar(100)" json:"district"`
	Province    *string `gorm:"type:varchar(100)" json:"province"`
	PostalCode  *string `gorm:"type:varchar(10)" json:"postal_code"`
	Address     *string `json:"address"`
}

// Inspector is the on-site contact assigned to check an installation.
type Inspector struct {
	ID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string  `gorm:"type:varchar(200);not null" json:"name"`
	Phone    *string `gorm:"type:varchar(30)" json:"phone"`
	Email    *string `gorm:"type:varchar(200)" json:"email"`
	Line     *string `gorm:"type:varchar(100)" json:"line"`
	Position *string `gorm:"type:varchar(100)" json:"position"`
	Note     *string `json:"note"`
}
