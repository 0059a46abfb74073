package usecase

// Inbound aggregate shape. The UI sends a denormalized order object whose
// fields have drifted over time, so several of them exist under both a
// current and a legacy key; the coalescing accessors below pick the first
// populated one. Every field is optional.

type Ref struct {
	ID string `json:"id"`
}

func (r *Ref) RefID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

type AddressRef struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

func (r *AddressRef) RefID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

type VariantRef struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
}

type DiscountInput struct {
	Mode  string  `json:"mode"`
	Value float64 `json:"value"`
}

type JobInfoInput struct {
	JobType       string `json:"job_type"`
	JobTypeLegacy string `json:"jobType"`
}

type OrderInput struct {
	ID                        string         `json:"id"`
	Customer                  *Ref           `json:"customer"`
	PurchaserContact          *Ref           `json:"purchaserContact"`
	ReceiverContact           *Ref           `json:"receiverContact"`
	TaxInvoice                *Ref           `json:"taxInvoice"`
	TaxInvoiceDeliveryAddress *AddressRef    `json:"taxInvoiceDeliveryAddress"`
	DeliveryAddress           *AddressRef    `json:"deliveryAddress"`
	Date                      string         `json:"date"`
	Total                     float64        `json:"total"`
	ShippingFee               float64        `json:"shippingFee"`
	Discount                  *DiscountInput `json:"discount"`
	JobInfo                   *JobInfoInput  `json:"jobInfo"`
	Items                     []ItemInput    `json:"items"`
	PaymentSchedule           []PaymentInput `json:"paymentSchedule"`
}

type ItemInput struct {
	ID              string      `json:"id"`
	UUID            string      `json:"uuid"`
	ProductID       string      `json:"product_id"`
	SelectedVariant *VariantRef `json:"selectedVariant"`
	VariantID       string      `json:"variant_id"`
	Qty             int         `json:"qty"`
	Quantity        int         `json:"quantity"`
	UnitPrice       float64     `json:"unitPrice"`
	Price           float64     `json:"price"`
	Remark          string      `json:"remark"`
	Light           string      `json:"light"`
	BulbType        string      `json:"bulbType"`
	LightColor      string      `json:"lightColor"`
	Remote          string      `json:"remote"`
	Status          string      `json:"status"`
	Jobs            []JobInput  `json:"jobs"`
}

func (it ItemInput) quantity() int {
	if it.Qty > 0 {
		return it.Qty
	}
	if it.Quantity > 0 {
		return it.Quantity
	}
	return 1
}

func (it ItemInput) unitPrice() float64 {
	if it.UnitPrice != 0 {
		return it.UnitPrice
	}
	return it.Price
}

func (it ItemInput) light() string {
	if it.Light != "" {
		return it.Light
	}
	return it.BulbType
}

type JobInput struct {
	ID              string `json:"id"`
	JobType         string `json:"jobType"`
	JobTypeSnake    string `json:"job_type"`
	Status          string `json:"status"`
	Team            string `json:"team"`
	AssignedTeam    string `json:"assigned_team"`
	AppointmentDate string `json:"appointmentDate"`
	CompletionDate  string `json:"completionDate"`
	Notes           string `json:"notes"`
	Description     string `json:"description"`
	SequenceNumber  int    `json:"sequence_number"`
	LocationID      string `json:"locationId"`
	SiteAddressID   string `json:"site_address_id"`
	Inspector       *Ref   `json:"inspector"`
	InspectorID     string `json:"inspectorId"`
	TeamPaymentID   string `json:"teamPaymentId"`
	ServiceFeeID    string `json:"serviceFeeId"`
	CreatedAt       string `json:"created_at"`
}

func (j JobInput) jobType() string {
	if j.JobType != "" {
		return j.JobType
	}
	if j.JobTypeSnake != "" {
		return j.JobTypeSnake
	}
	return "installation"
}

func (j JobInput) team() string {
	if j.Team != "" {
		return j.Team
	}
	return j.AssignedTeam
}

func (j JobInput) notes() string {
	if j.Notes != "" {
		return j.Notes
	}
	return j.Description
}

type PaymentInput struct {
	Date              string  `json:"date"`
	Amount            float64 `json:"amount"`
	Method            string  `json:"method"`
	PaymentMethod     string  `json:"paymentMethod"`
	Type              string  `json:"type"`
	ProofURL          string  `json:"proofUrl"`
	Slip              string  `json:"slip"`
	ReceiverSignature string  `json:"receiverSignature"`
	PayerSignature    string  `json:"payerSignature"`
	Status            string  `json:"status"`
	IssueInvoice      bool    `json:"issueInvoice"`
	InvoiceNo         string  `json:"invoiceNo"`
	InvoiceDate       string  `json:"invoiceDate"`
	IssueReceipt      bool    `json:"issueReceipt"`
	ReceiptNo         string  `json:"receiptNo"`
	ReceiptDate       string  `json:"receiptDate"`
}

func (p PaymentInput) method() string {
	if p.Method != "" {
		return p.Method
	}
	return p.PaymentMethod
}

func (p PaymentInput) proofURL() string {
	if p.ProofURL != "" {
		return p.ProofURL
	}
	return p.Slip
}

func (p PaymentInput) paymentType() string {
	if p.Type != "" {
		return p.Type
	}
	return "deposit"
}
