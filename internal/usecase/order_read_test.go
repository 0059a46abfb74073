package usecase

import (
	"context"
	"testing"
	"time"

	"opsconsole/internal/domain/model"
	repo "opsconsole/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestGetOrderByID_NotFound_ReturnsNil(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestOrderUsecase()

	m.orders.On("FindAggregate", mock.Anything, testOrderID).
		Return(model.Order{}, repo.ErrNotFound)

	assert.Nil(t, uc.GetOrderByID(ctx, testOrderID))
}

func TestGetOrderByID_DirectJobFetchWins(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestOrderUsecase()

	joined := model.Job{ID: "join-job", OrderItemID: testItemID, Status: model.JobStatusPending}
	direct := model.Job{ID: testJobID, OrderItemID: testItemID, Status: model.JobStatusCompleted}

	m.orders.On("FindAggregate", mock.Anything, testOrderID).Return(model.Order{
		ID:    testOrderID,
		Items: []model.OrderItem{{ID: testItemID, Jobs: []model.Job{joined}}},
	}, nil)
	m.jobs.On("ListByOrderID", mock.Anything, testOrderID).
		Return([]model.Job{direct}, nil)

	view := uc.GetOrderByID(ctx, testOrderID)

	assert.NotNil(t, view)
	assert.Len(t, view.Items, 1)
	assert.Len(t, view.Items[0].Jobs, 1)
	assert.Equal(t, testJobID, view.Items[0].Jobs[0].ID)
	// Derived status follows the merged jobs, not the joined ones.
	assert.Equal(t, StatusCompleted, view.Status)
}

func TestGetOrderByID_GroupingIgnoresCaseAndSpaces(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestOrderUsecase()

	itemID := "AAAAAAAA-bbbb-4ccc-8ddd-EEEEEEEEEEEE"
	direct := model.Job{ID: testJobID, OrderItemID: " aaaaaaaa-BBBB-4ccc-8ddd-eeeeeeeeeeee "}

	m.orders.On("FindAggregate", mock.Anything, testOrderID).Return(model.Order{
		ID:    testOrderID,
		Items: []model.OrderItem{{ID: itemID}},
	}, nil)
	m.jobs.On("ListByOrderID", mock.Anything, testOrderID).
		Return([]model.Job{direct}, nil)

	view := uc.GetOrderByID(ctx, testOrderID)

	assert.NotNil(t, view)
	assert.Len(t, view.Items[0].Jobs, 1)
	assert.Equal(t, testJobID, view.Items[0].Jobs[0].ID)
}

func TestGetOrderByID_JoinFallbackWhenDirectFetchFails(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestOrderUsecase()

	joined := model.Job{ID: testJobID, OrderItemID: testItemID, Status: model.JobStatusProcessing}

	m.orders.On("FindAggregate", mock.Anything, testOrderID).Return(model.Order{
		ID:    testOrderID,
		Items: []model.OrderItem{{ID: testItemID, Jobs: []model.Job{joined}}},
	}, nil)
	m.jobs.On("ListByOrderID", mock.Anything, testOrderID).
		Return(nil, assert.AnError)

	view := uc.GetOrderByID(ctx, testOrderID)

	// The degraded view still carries the joined jobs.
	assert.NotNil(t, view)
	assert.Len(t, view.Items[0].Jobs, 1)
	assert.Equal(t, testJobID, view.Items[0].Jobs[0].ID)
	assert.Equal(t, StatusProcessing, view.Status)
}

func TestGetOrderByID_TaxInvoiceCompanyFallback(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestOrderUsecase()

	m.orders.On("FindAggregate", mock.Anything, testOrderID).Return(model.Order{
		ID: testOrderID,
		TaxInvoice: &model.CustomerTaxInvoice{
			ID:          "ti-1",
			CompanyName: strPtr("บริษัท แสงสว่าง จำกัด"),
		},
	}, nil)
	m.jobs.On("ListByOrderID", mock.Anything, testOrderID).Return([]model.Job(nil), nil)

	view := uc.GetOrderByID(ctx, testOrderID)

	assert.NotNil(t, view)
	assert.NotNil(t, view.TaxInvoice)
	assert.Equal(t, "บริษัท แสงสว่าง จำกัด", view.TaxInvoice.Company)
}

func TestNormalizeJob_DatesAndDefaults(t *testing.T) {
	appt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)
	j := model.Job{
		ID:              testJobID,
		Status:          model.JobStatusPending,
		AppointmentDate: &appt,
		Notes:           strPtr("ติดตั้งชั้น 3"),
		SiteAddress: &model.CustomerAddress{
			HouseNumber: strPtr("99/1"),
			Road:        strPtr("พหลโยธิน"),
			Province:    strPtr("ปทุมธานี"),
		},
	}

	view := normalizeJob(j)

	assert.Equal(t, model.JobTypeInstallation, view.JobType)
	assert.Equal(t, "2025-03-14T09:30", view.AppointmentDate)
	assert.Equal(t, "", view.CompletionDate)
	assert.Equal(t, "ติดตั้งชั้น 3", view.Description)
	assert.Equal(t, "ติดตั้งชั้น 3", view.Notes)
	assert.Equal(t, "เลขที่ 99/1 ถนน พหลโยธิน จังหวัด ปทุมธานี", view.InstallAddress)
}

func TestFormatAddress_FallsBackToFreeText(t *testing.T) {
	addr := &model.CustomerAddress{Address: strPtr("99 หมู่บ้านเดิม")}
	assert.Equal(t, "99 หมู่บ้านเดิม", formatAddress(addr))
}

func TestListOrders_SummaryCarriesDerivedStatus(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestOrderUsecase()

	m.orders.On("List", mock.Anything).Return([]model.Order{{
		ID:       testOrderID,
		Total:    12000,
		Customer: &model.Customer{Name: "คุณสมชาย", Phone: strPtr("0812345678")},
		Items: []model.OrderItem{{
			ID:   testItemID,
			Jobs: []model.Job{{JobType: "delivery", Status: model.JobStatusProcessing}},
		}},
	}}, nil)

	out, err := uc.ListOrders(ctx)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, StatusProcessing, out[0].Status)
	assert.Equal(t, "คุณสมชาย", out[0].CustomerName)
	assert.Equal(t, "delivery", out[0].JobType)
	assert.Equal(t, model.JobStatusProcessing, out[0].JobStatus)
	assert.Equal(t, 1, out[0].ItemCount)
}
