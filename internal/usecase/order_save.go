package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"opsconsole/internal/domain/model"
	"opsconsole/internal/ident"
	repo "opsconsole/internal/repository"
	"opsconsole/internal/retry"

	"go.uber.org/zap"
)

type OrderUsecase struct {
	orders      repo.OrderRepository
	items       repo.OrderItemRepository
	jobs        repo.JobRepository
	links       repo.ServiceFeeLinkRepository
	completions repo.JobCompletionRepository
	payments    repo.PaymentRepository
	docSeq      repo.DocumentSequences
	store       repo.ObjectStore
	log         *zap.Logger
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	jobs repo.JobRepository,
	links repo.ServiceFeeLinkRepository,
	completions repo.JobCompletionRepository,
	payments repo.PaymentRepository,
	docSeq repo.DocumentSequences,
	store repo.ObjectStore,
	log *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		orders:      orders,
		items:       items,
		jobs:        jobs,
		links:       links,
		completions: completions,
		payments:    payments,
		docSeq:      docSeq,
		store:       store,
		log:         log,
	}
}

type SaveOrderOutput struct {
	OrderID string `json:"orderId"`
}

// SaveOrder persists the whole aggregate in a fixed statement order:
// header → items → item orphan prune → jobs → job orphan prune → fee
// links → payment schedule replace. The store has no cross-statement
// transactions, so a failure mid-sequence leaves the earlier steps
// applied; every step is an idempotent upsert/prune, so re-saving the
// same aggregate converges instead of duplicating rows.
func (u *OrderUsecase) SaveOrder(ctx context.Context, in OrderInput) (SaveOrderOutput, error) {
	u.log.Info("saving order",
		zap.String("order_id", in.ID),
		zap.Int("items", len(in.Items)),
		zap.Int("payments", len(in.PaymentSchedule)),
	)

	// 0. Upload inline payment signatures concurrently. A failed upload
	// degrades to an empty URL, never a failed save.
	payments := u.uploadSignatures(ctx, in.ID, in.PaymentSchedule)

	// 1–2. Header payload: placeholder ids are omitted so the store
	// assigns a fresh one; every foreign key is validated-or-nulled.
	header := u.buildHeader(in)

	// 3. Upsert the header. The only step worth retrying: nothing before
	// it has been written, so a retry can't half-apply anything.
	err := retry.Do(ctx, u.log, "saveOrder:upsertHeader", retry.Options{}, func() error {
		return u.orders.Upsert(ctx, header)
	})
	if err != nil {
		u.log.Error("order header upsert failed", zap.Error(err))
		if errors.Is(err, repo.ErrForeignKeyViolation) {
			return SaveOrderOutput{}, NewHTTPError(http.StatusBadRequest, msgInvalidOrderRefs)
		}
		if errors.Is(err, repo.ErrUniqueViolation) {
			return SaveOrderOutput{}, NewHTTPError(http.StatusConflict, msgDuplicateOrderNo)
		}
		return SaveOrderOutput{}, NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("%s: %s", msgSaveOrderFailed, err.Error()))
	}
	orderID := header.ID

	// 4. Zero items is a legitimate aggregate, but any children left from
	// a previous save are now orphans and must go.
	if len(in.Items) == 0 {
		u.wipeChildren(ctx, orderID)
		if err := u.replacePayments(ctx, orderID, payments); err != nil {
			return SaveOrderOutput{}, err
		}
		return SaveOrderOutput{OrderID: orderID}, nil
	}

	// 5. Final item ids are fixed before the upsert: jobs reference them
	// in the same save.
	finalIDs := make([]string, len(in.Items))
	for i, item := range in.Items {
		if p := ident.First(item.ID, item.UUID); p != nil {
			finalIDs[i] = *p
		} else {
			finalIDs[i] = ident.NewID()
		}
	}

	// 6–7. Item payloads + one batch upsert.
	itemRows := make([]model.OrderItem, len(in.Items))
	for i, item := range in.Items {
		itemRows[i] = u.buildItem(item, finalIDs[i], orderID)
	}
	if err := u.items.UpsertBulk(ctx, itemRows); err != nil {
		u.log.Error("items upsert failed", zap.String("order_id", orderID), zap.Error(err))
		if errors.Is(err, repo.ErrForeignKeyViolation) {
			return SaveOrderOutput{}, NewHTTPError(http.StatusBadRequest, msgInvalidProduct)
		}
		return SaveOrderOutput{}, NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("%s: %s", msgSaveItemsFailed, err.Error()))
	}

	// 8. Item orphan prune: failures only leave stale rows behind, so
	// they are logged and swallowed.
	u.pruneOrphanItems(ctx, orderID, finalIDs)

	// 9. Job payloads, one default job synthesized per jobless item.
	var jobRows []model.Job
	for i, item := range in.Items {
		jobRows = append(jobRows, u.buildJobs(item, finalIDs[i], orderID)...)
	}

	// 10. Batch upsert jobs.
	if err := u.jobs.UpsertBulk(ctx, jobRows); err != nil {
		u.log.Error("jobs upsert failed", zap.String("order_id", orderID), zap.Error(err))
		return SaveOrderOutput{}, NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("%s: %s", msgSaveJobsFailed, err.Error()))
	}

	// 11. Job orphan prune, scoped by order id: jobs may move between
	// items of the same order.
	keepJobIDs := make([]string, len(jobRows))
	for i, j := range jobRows {
		keepJobIDs[i] = j.ID
	}
	if err := u.jobs.DeleteOrphans(ctx, orderID, keepJobIDs); err != nil {
		u.log.Error("orphan job prune failed", zap.String("order_id", orderID), zap.Error(err))
	}

	// 12. Payout batch links, duplicate-ignore.
	var feeLinks []model.TeamServiceFeeJob
	for _, j := range jobRows {
		if j.TeamPaymentID != nil {
			feeLinks = append(feeLinks, model.TeamServiceFeeJob{
				ServiceFeeID: *j.TeamPaymentID,
				JobID:        j.ID,
			})
		}
	}
	if err := u.links.UpsertLinks(ctx, feeLinks); err != nil {
		u.log.Error("service fee link upsert failed", zap.String("order_id", orderID), zap.Error(err))
	}

	// 13. Payment schedule: replace, not diff.
	if err := u.replacePayments(ctx, orderID, payments); err != nil {
		return SaveOrderOutput{}, err
	}

	u.log.Info("order saved", zap.String("order_id", orderID))
	return SaveOrderOutput{OrderID: orderID}, nil
}

func (u *OrderUsecase) buildHeader(in OrderInput) *model.Order {
	o := &model.Order{
		CustomerID:                  ident.RefOrNil(in.Customer),
		PurchaserContactID:          ident.RefOrNil(in.PurchaserContact),
		ReceiverContactID:           ident.RefOrNil(in.ReceiverContact),
		TaxInvoiceID:                ident.RefOrNil(in.TaxInvoice),
		TaxInvoiceDeliveryAddressID: ident.RefOrNil(in.TaxInvoiceDeliveryAddress),
		DeliveryAddressID:           ident.RefOrNil(in.DeliveryAddress),
		OrderDate:                   parseWhen(in.Date),
		Total:                       in.Total,
		ShippingFee:                 in.ShippingFee,
		VatRate:                     0.07,
		DiscountMode:                model.DiscountModePercent,
	}

	if ident.IsUUID(in.ID) {
		o.ID = in.ID
	}
	if in.Discount != nil {
		if in.Discount.Mode == string(model.DiscountModeAmount) {
			o.DiscountMode = model.DiscountModeAmount
		}
		o.DiscountValue = in.Discount.Value
	}
	if in.JobInfo != nil {
		if jt := strOrNil(in.JobInfo.JobType); jt != nil {
			o.JobType = jt
		} else {
			o.JobType = strOrNil(in.JobInfo.JobTypeLegacy)
		}
	}
	return o
}

func (u *OrderUsecase) buildItem(item ItemInput, finalID string, orderID string) model.OrderItem {
	// Items may arrive keyed by a human product code instead of a row
	// id; in that case the variant's own product reference wins.
	productID := ident.OrNil(item.ProductID)
	if productID == nil && item.SelectedVariant != nil {
		productID = ident.OrNil(item.SelectedVariant.ProductID)
	}

	variant := ""
	if item.SelectedVariant != nil {
		variant = item.SelectedVariant.ID
	}
	variantID := ident.First(variant, item.VariantID)

	return model.OrderItem{
		ID:               finalID,
		OrderID:          orderID,
		ProductID:        productID,
		ProductVariantID: variantID,
		Quantity:         item.quantity(),
		UnitPrice:        item.unitPrice(),
		Remark:           strOrNil(item.Remark),
		Light:            strOrNil(item.light()),
		LightColor:       strOrNil(item.LightColor),
		Remote:           strOrNil(item.Remote),
		Status:           strOrNil(item.Status),
	}
}

func (u *OrderUsecase) buildJobs(item ItemInput, itemID string, orderID string) []model.Job {
	jobInputs := item.Jobs
	if len(jobInputs) == 0 {
		// Every item owns at least one job after a save.
		jobInputs = []JobInput{{
			JobType:        model.JobTypeInstallation,
			Status:         model.JobStatusPending,
			SequenceNumber: 1,
		}}
	}

	rows := make([]model.Job, 0, len(jobInputs))
	for _, j := range jobInputs {
		id := j.ID
		if !ident.IsUUID(id) {
			id = ident.NewID()
		}

		status := j.Status
		if status == "" {
			status = model.JobStatusPending
		}
		seq := j.SequenceNumber
		if seq <= 0 {
			seq = 1
		}

		inspector := ""
		if j.Inspector != nil {
			inspector = j.Inspector.ID
		}

		row := model.Job{
			ID:              id,
			OrderItemID:     itemID,
			OrderID:         orderID,
			JobType:         j.jobType(),
			Status:          status,
			AssignedTeam:    strOrNil(j.team()),
			AppointmentDate: parseWhen(j.AppointmentDate),
			CompletionDate:  parseWhen(j.CompletionDate),
			Notes:           strOrNil(j.notes()),
			SequenceNumber:  seq,
			LocationID:      ident.First(j.LocationID, j.SiteAddressID),
			InspectorID:     ident.First(inspector, j.InspectorID),
			TeamPaymentID:   ident.First(j.TeamPaymentID, j.ServiceFeeID),
		}
		if t := parseWhen(j.CreatedAt); t != nil {
			row.CreatedAt = *t
		} else {
			row.CreatedAt = time.Now()
		}
		rows = append(rows, row)
	}
	return rows
}

// pruneOrphanItems deletes item rows absent from keepIDs, taking their
// fee links, completions and jobs down first so no dangling child
// survives. All failures here are non-critical: stale rows, not corrupt
// live data.
func (u *OrderUsecase) pruneOrphanItems(ctx context.Context, orderID string, keepIDs []string) {
	existing, err := u.items.ListIDsByOrderID(ctx, orderID)
	if err != nil {
		u.log.Error("orphan scan failed", zap.String("order_id", orderID), zap.Error(err))
		return
	}

	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = struct{}{}
	}
	var orphans []string
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) == 0 {
		return
	}
	u.log.Info("pruning orphan items", zap.String("order_id", orderID), zap.Strings("ids", orphans))

	jobIDs, err := u.jobs.ListIDsByItemIDs(ctx, orphans)
	if err != nil {
		u.log.Error("orphan job scan failed", zap.Error(err))
	}
	if len(jobIDs) > 0 {
		if err := u.links.DeleteByJobIDs(ctx, jobIDs); err != nil {
			u.log.Error("orphan fee link delete failed", zap.Error(err))
		}
		if err := u.completions.DeleteByJobIDs(ctx, jobIDs); err != nil {
			u.log.Error("orphan completion delete failed", zap.Error(err))
		}
		if err := u.jobs.DeleteByIDs(ctx, jobIDs); err != nil {
			u.log.Error("orphan job delete failed", zap.Error(err))
		}
	}
	if err := u.items.DeleteByIDs(ctx, orphans); err != nil {
		u.log.Error("orphan item delete failed", zap.String("order_id", orderID), zap.Error(err))
	}
}

// wipeChildren removes every item and job for the order, children first.
func (u *OrderUsecase) wipeChildren(ctx context.Context, orderID string) {
	jobIDs, err := u.jobs.ListIDsByOrderID(ctx, orderID)
	if err != nil {
		u.log.Error("job scan failed", zap.String("order_id", orderID), zap.Error(err))
	}
	if len(jobIDs) > 0 {
		if err := u.links.DeleteByJobIDs(ctx, jobIDs); err != nil {
			u.log.Error("fee link wipe failed", zap.Error(err))
		}
		if err := u.completions.DeleteByJobIDs(ctx, jobIDs); err != nil {
			u.log.Error("completion wipe failed", zap.Error(err))
		}
		if err := u.jobs.DeleteByIDs(ctx, jobIDs); err != nil {
			u.log.Error("job wipe failed", zap.Error(err))
		}
	}
	if err := u.items.DeleteByOrderID(ctx, orderID); err != nil {
		u.log.Error("item wipe failed", zap.String("order_id", orderID), zap.Error(err))
	}
}

// replacePayments deletes the schedule and re-inserts it. Document
// numbers are allocated only for entries flagged to issue one and not
// already carrying it, so a re-save keeps the first number.
func (u *OrderUsecase) replacePayments(ctx context.Context, orderID string, payments []PaymentInput) error {
	if err := u.payments.DeleteByOrderID(ctx, orderID); err != nil {
		u.log.Error("payment wipe failed", zap.String("order_id", orderID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("%s: %s", msgSavePaymentFailed, err.Error()))
	}
	if len(payments) == 0 {
		return nil
	}

	rows := make([]model.OrderPayment, 0, len(payments))
	for _, p := range payments {
		invoiceNo := strOrNil(p.InvoiceNo)
		if p.IssueInvoice && invoiceNo == nil {
			invoiceNo = u.generateDocumentNo(ctx, "IV", firstNonEmpty(p.InvoiceDate, p.Date))
		}
		receiptNo := strOrNil(p.ReceiptNo)
		if p.IssueReceipt && receiptNo == nil {
			receiptNo = u.generateDocumentNo(ctx, "RC", firstNonEmpty(p.ReceiptDate, p.Date))
		}

		invoiceDate := parseWhen(p.InvoiceDate)
		if invoiceDate == nil && invoiceNo != nil {
			invoiceDate = parseWhen(p.Date)
		}
		receiptDate := parseWhen(p.ReceiptDate)
		if receiptDate == nil && receiptNo != nil {
			receiptDate = parseWhen(p.Date)
		}

		status := p.Status
		if status == "" {
			status = model.PaymentStatusCompleted
		}

		rows = append(rows, model.OrderPayment{
			OrderID:           orderID,
			PaymentDate:       parseWhen(p.Date),
			Amount:            p.Amount,
			PaymentMethod:     strOrNil(p.method()),
			PaymentType:       p.paymentType(),
			ProofURL:          strOrNil(p.proofURL()),
			ReceiverSignature: strOrNil(p.ReceiverSignature),
			PayerSignature:    strOrNil(p.PayerSignature),
			Status:            status,
			IsDeposit:         p.paymentType() == model.PaymentTypeDeposit,
			InvoiceNo:         invoiceNo,
			InvoiceDate:       invoiceDate,
			ReceiptNo:         receiptNo,
			ReceiptDate:       receiptDate,
		})
	}

	if err := u.payments.InsertBulk(ctx, rows); err != nil {
		u.log.Error("payment insert failed", zap.String("order_id", orderID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("%s: %s", msgSavePaymentFailed, err.Error()))
	}
	return nil
}

// uploadSignatures replaces inline data-URI signature payloads with
// object store URLs. Uploads for all entries run concurrently; each
// failure nulls its URL only.
func (u *OrderUsecase) uploadSignatures(ctx context.Context, orderRef string, payments []PaymentInput) []PaymentInput {
	if len(payments) == 0 {
		return payments
	}
	if orderRef == "" {
		orderRef = "new"
	}

	out := make([]PaymentInput, len(payments))
	copy(out, payments)

	var wg sync.WaitGroup
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i].ReceiverSignature = u.uploadSignature(ctx, orderRef, i, "receiver", out[i].ReceiverSignature)
			out[i].PayerSignature = u.uploadSignature(ctx, orderRef, i, "payer", out[i].PayerSignature)
		}(i)
	}
	wg.Wait()
	return out
}

func (u *OrderUsecase) uploadSignature(ctx context.Context, orderRef string, index int, kind string, payload string) string {
	data, ok := decodeDataURI(payload)
	if !ok {
		// Already a URL (or empty): pass through untouched.
		return payload
	}

	path := fmt.Sprintf("signatures/%s/%s-signature-%d-%d.png", orderRef, kind, index, time.Now().UnixMilli())
	url, err := u.store.Upload(ctx, path, data, "image/png")
	if err != nil {
		u.log.Error("signature upload failed",
			zap.String("order_ref", orderRef),
			zap.String("kind", kind),
			zap.Int("index", index),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func decodeDataURI(s string) ([]byte, bool) {
	if !strings.HasPrefix(s, "data:image/") {
		return nil, false
	}
	comma := strings.Index(s, ",")
	if comma < 0 {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return nil, false
	}
	return data, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
