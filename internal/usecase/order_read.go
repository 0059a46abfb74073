package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"opsconsole/internal/domain/model"
	"opsconsole/internal/geo"

	"go.uber.org/zap"
)

// Denormalized order shape handed back to the UI for editing/display.

type OrderView struct {
	ID                        string                 `json:"id"`
	Customer                  *model.Customer        `json:"customer"`
	PurchaserContact          *model.CustomerContact `json:"purchaserContact"`
	ReceiverContact           *model.CustomerContact `json:"receiverContact"`
	TaxInvoice                *TaxInvoiceView        `json:"taxInvoice"`
	TaxInvoiceDeliveryAddress *AddressView           `json:"taxInvoiceDeliveryAddress"`
	DeliveryAddress           *AddressView           `json:"deliveryAddress"`
	OrderDate                 string                 `json:"orderDate"`
	Total                     float64                `json:"total"`
	ShippingFee               float64                `json:"shippingFee"`
	VatRate                   float64                `json:"vatRate"`
	JobType                   string                 `json:"jobType"`
	DiscountMode              string                 `json:"discountMode"`
	DiscountValue             float64                `json:"discountValue"`
	Items                     []ItemView             `json:"items"`
	Jobs                      []JobView              `json:"jobs"`
	PaymentSchedule           []PaymentView          `json:"paymentSchedule"`
	Status                    OrderStatus            `json:"status"`
	CreatedAt                 time.Time              `json:"createdAt"`
}

type ItemView struct {
	ID         string                `json:"id"`
	ProductID  string                `json:"product_id"`
	VariantID  string                `json:"variant_id"`
	Quantity   int                   `json:"quantity"`
	UnitPrice  float64               `json:"unitPrice"`
	Remark     string                `json:"remark"`
	Light      string                `json:"light"`
	LightColor string                `json:"lightColor"`
	Remote     string                `json:"remote"`
	Product    *model.Product        `json:"product"`
	Variant    *model.ProductVariant `json:"variant"`
	Jobs       []JobView             `json:"jobs"`
}

type JobView struct {
	ID                  string         `json:"id"`
	OrderItemID         string         `json:"order_item_id"`
	OrderID             string         `json:"order_id"`
	JobType             string         `json:"jobType"`
	Status              string         `json:"status"`
	Team                string         `json:"team"`
	AppointmentDate     string         `json:"appointmentDate"`
	CompletionDate      string         `json:"completionDate"`
	Description         string         `json:"description"`
	Notes               string         `json:"notes"`
	SequenceNumber      int            `json:"sequence_number"`
	TeamPaymentID       string         `json:"teamPaymentId"`
	LocationID          string         `json:"locationId"`
	InstallLocationName string         `json:"installLocationName"`
	InstallAddress      string         `json:"installAddress"`
	GoogleMapLink       string         `json:"googleMapLink"`
	Distance            string         `json:"distance"`
	Inspector           *InspectorView `json:"inspector"`
	CreatedAt           time.Time      `json:"created_at"`
}

type InspectorView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Line     string `json:"line"`
	Position string `json:"position"`
	Note     string `json:"note"`
}

type AddressView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Address  string `json:"address"`
	Maps     string `json:"maps"`
	Distance string `json:"distance"`
}

type TaxInvoiceView struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	TaxID   string `json:"taxId"`
	Branch  string `json:"branch"`
	Address string `json:"address"`
}

type PaymentView struct {
	Date              string  `json:"date"`
	Amount            float64 `json:"amount"`
	PaymentMethod     string  `json:"paymentMethod"`
	Type              string  `json:"type"`
	InvoiceNo         string  `json:"invoiceNo"`
	InvoiceDate       string  `json:"invoiceDate"`
	ReceiptNo         string  `json:"receiptNo"`
	ReceiptDate       string  `json:"receiptDate"`
	Slip              string  `json:"slip"`
	ReceiverSignature string  `json:"receiverSignature"`
	PayerSignature    string  `json:"payerSignature"`
	Status            string  `json:"status"`
}

// GetOrderByID rebuilds the nested order view. The wide join is not
// trusted to populate jobs consistently, so jobs are fetched a second
// time by order id and that result takes precedence; the joined rows only
// fill in for items the direct fetch missed. Returns nil, never an
// error — "not found vs. failed" lives in the logs.
func (u *OrderUsecase) GetOrderByID(ctx context.Context, orderID string) *OrderView {
	o, err := u.orders.FindAggregate(ctx, orderID)
	if err != nil {
		u.log.Error("order fetch failed", zap.String("order_id", orderID), zap.Error(err))
		return nil
	}

	allJobs, err := u.jobs.ListByOrderID(ctx, orderID)
	if err != nil {
		u.log.Error("separate job fetch failed", zap.String("order_id", orderID), zap.Error(err))
		allJobs = nil
	}

	jobsByItem := make(map[string][]model.Job)
	for _, j := range allJobs {
		key := normalizeKey(j.OrderItemID)
		jobsByItem[key] = append(jobsByItem[key], j)
	}

	// Merge at the model level first so the derived status sees the same
	// job set the view does.
	for i := range o.Items {
		if merged, ok := jobsByItem[normalizeKey(o.Items[i].ID)]; ok && len(merged) > 0 {
			o.Items[i].Jobs = merged
		}
	}

	items := make([]ItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = newItemView(item)
	}
	jobViews := make([]JobView, len(allJobs))
	for i, j := range allJobs {
		jobViews[i] = normalizeJob(j)
	}
	paymentViews := make([]PaymentView, len(o.Payments))
	for i, p := range o.Payments {
		paymentViews[i] = normalizePayment(p)
	}

	return &OrderView{
		ID:                        o.ID,
		Customer:                  o.Customer,
		PurchaserContact:          o.PurchaserContact,
		ReceiverContact:           o.ReceiverContact,
		TaxInvoice:                normalizeTaxInvoice(o.TaxInvoice),
		TaxInvoiceDeliveryAddress: newAddressView(o.TaxInvoiceDeliveryAddress),
		DeliveryAddress:           newAddressView(o.DeliveryAddress),
		OrderDate:                 formatDateOnly(o.OrderDate),
		Total:                     o.Total,
		ShippingFee:               o.ShippingFee,
		VatRate:                   o.VatRate,
		JobType:                   deref(o.JobType),
		DiscountMode:              string(o.DiscountMode),
		DiscountValue:             o.DiscountValue,
		Items:                     items,
		Jobs:                      jobViews,
		PaymentSchedule:           paymentViews,
		Status:                    DeriveStatus(o.Items),
		CreatedAt:                 o.CreatedAt,
	}
}

func newItemView(item model.OrderItem) ItemView {
	jobs := make([]JobView, len(item.Jobs))
	for i, j := range item.Jobs {
		jobs[i] = normalizeJob(j)
	}
	return ItemView{
		ID:         item.ID,
		ProductID:  deref(item.ProductID),
		VariantID:  deref(item.ProductVariantID),
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		Remark:     deref(item.Remark),
		Light:      deref(item.Light),
		LightColor: deref(item.LightColor),
		Remote:     deref(item.Remote),
		Product:    item.Product,
		Variant:    item.Variant,
		Jobs:       jobs,
	}
}

// normalizeJob maps the stored row to the canonical editable shape:
// datetime-local timestamps, description/notes both filled, nested
// inspector object, assembled site address.
func normalizeJob(j model.Job) JobView {
	jobType := j.JobType
	if jobType == "" {
		jobType = model.JobTypeInstallation
	}

	view := JobView{
		ID:              j.ID,
		OrderItemID:     j.OrderItemID,
		OrderID:         j.OrderID,
		JobType:         jobType,
		Status:          j.Status,
		Team:            deref(j.AssignedTeam),
		AppointmentDate: formatForInput(j.AppointmentDate),
		CompletionDate:  formatForInput(j.CompletionDate),
		Description:     deref(j.Notes),
		Notes:           deref(j.Notes),
		SequenceNumber:  j.SequenceNumber,
		TeamPaymentID:   deref(j.TeamPaymentID),
		LocationID:      deref(j.LocationID),
		CreatedAt:       j.CreatedAt,
	}

	if j.SiteAddress != nil {
		view.InstallLocationName = deref(j.SiteAddress.Label)
		view.InstallAddress = formatAddress(j.SiteAddress)
		view.GoogleMapLink = deref(j.SiteAddress.Maps)
		view.Distance = addressDistance(j.SiteAddress)
	}
	if j.SiteInspector != nil {
		view.Inspector = &InspectorView{
			ID:       j.SiteInspector.ID,
			Name:     j.SiteInspector.Name,
			Phone:    deref(j.SiteInspector.Phone),
			Email:    deref(j.SiteInspector.Email),
			Line:     deref(j.SiteInspector.Line),
			Position: deref(j.SiteInspector.Position),
			Note:     deref(j.SiteInspector.Note),
		}
	}
	return view
}

func normalizePayment(p model.OrderPayment) PaymentView {
	paymentType := p.PaymentType
	if paymentType == "" {
		paymentType = model.PaymentTypeDeposit
	}
	status := p.Status
	if status == "" {
		status = model.PaymentStatusCompleted
	}
	return PaymentView{
		Date:              formatDateOnly(p.PaymentDate),
		Amount:            p.Amount,
		PaymentMethod:     deref(p.PaymentMethod),
		Type:              paymentType,
		InvoiceNo:         deref(p.InvoiceNo),
		InvoiceDate:       formatDateOnly(p.InvoiceDate),
		ReceiptNo:         deref(p.ReceiptNo),
		ReceiptDate:       formatDateOnly(p.ReceiptDate),
		Slip:              deref(p.ProofURL),
		ReceiverSignature: deref(p.ReceiverSignature),
		PayerSignature:    deref(p.PayerSignature),
		Status:            status,
	}
}

// normalizeTaxInvoice guarantees the company display field regardless of
// which legacy column held it.
func normalizeTaxInvoice(ti *model.CustomerTaxInvoice) *TaxInvoiceView {
	if ti == nil {
		return nil
	}
	company := deref(ti.Company)
	if company == "" {
		company = deref(ti.CompanyName)
	}
	return &TaxInvoiceView{
		ID:      ti.ID,
		Company: company,
		TaxID:   deref(ti.TaxID),
		Branch:  deref(ti.Branch),
		Address: formatTaxInvoiceAddress(ti),
	}
}

func newAddressView(addr *model.CustomerAddress) *AddressView {
	if addr == nil {
		return nil
	}
	return &AddressView{
		ID:       addr.ID,
		Label:    deref(addr.Label),
		Address:  formatAddress(addr),
		Maps:     deref(addr.Maps),
		Distance: addressDistance(addr),
	}
}

// formatAddress rebuilds the display string from the component columns,
// falling back to the free-text column when no components exist.
func formatAddress(addr *model.CustomerAddress) string {
	if addr == nil {
		return ""
	}
	parts := addressParts(
		deref(addr.HouseNumber), deref(addr.VillageNo), deref(addr.Building),
		deref(addr.Soi), deref(addr.Road), deref(addr.Subdistrict),
		deref(addr.District), deref(addr.Province), deref(addr.PostalCode),
	)
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return deref(addr.Address)
}

func formatTaxInvoiceAddress(ti *model.CustomerTaxInvoice) string {
	parts := addressParts(
		deref(ti.HouseNumber), deref(ti.VillageNo), deref(ti.Building),
		deref(ti.Soi), deref(ti.Road), deref(ti.Subdistrict),
		deref(ti.District), deref(ti.Province), deref(ti.PostalCode),
	)
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return deref(ti.Address)
}

func addressParts(num, moo, building, soi, road, subdistrict, district, province, zip string) []string {
	var p []string
	if num != "" {
		p = append(p, "เลขที่ "+num)
	}
	if moo != "" {
		p = append(p, "หมู่ "+moo)
	}
	if building != "" {
		p = append(p, building)
	}
	if soi != "" {
		p = append(p, "ซอย "+soi)
	}
	if road != "" {
		p = append(p, "ถนน "+road)
	}
	if subdistrict != "" {
		p = append(p, "ตำบล "+subdistrict)
	}
	if district != "" {
		p = append(p, "อำเภอ "+district)
	}
	if province != "" {
		p = append(p, "จังหวัด "+province)
	}
	if zip != "" {
		p = append(p, zip)
	}
	return p
}

func addressDistance(addr *model.CustomerAddress) string {
	if addr.Distance != nil {
		return fmt.Sprintf("📍 %.0f km", *addr.Distance)
	}
	if km, ok := geo.DistanceFromShop(deref(addr.Maps)); ok {
		return fmt.Sprintf("%d km", km)
	}
	return ""
}

func formatDateOnly(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
