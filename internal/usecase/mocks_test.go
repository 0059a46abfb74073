package usecase

import (
	"context"

	"opsconsole/internal/domain/model"
	repo "opsconsole/internal/repository"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var (
	_ repo.OrderRepository          = (*OrderRepoMock)(nil)
	_ repo.OrderItemRepository      = (*OrderItemRepoMock)(nil)
	_ repo.JobRepository            = (*JobRepoMock)(nil)
	_ repo.ServiceFeeLinkRepository = (*ServiceFeeLinkRepoMock)(nil)
	_ repo.JobCompletionRepository  = (*JobCompletionRepoMock)(nil)
	_ repo.PaymentRepository        = (*PaymentRepoMock)(nil)
	_ repo.DocumentSequences        = (*DocSeqMock)(nil)
	_ repo.SettingRepository        = (*SettingRepoMock)(nil)
	_ repo.ObjectStore              = (*ObjectStoreMock)(nil)
)

// Repository mocks shared by the usecase tests.

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Upsert(ctx context.Context, o *model.Order) error {
	args := m.Called(ctx, o)
	if o.ID == "" {
		o.ID = "11111111-2222-4333-8444-555555555555"
	}
	return args.Error(0)
}

func (m *OrderRepoMock) FindAggregate(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListByCustomerID(ctx context.Context, customerID string) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) UpsertBulk(ctx context.Context, items []model.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListIDsByOrderID(ctx context.Context, orderID string) ([]string, error) {
	args := m.Called(ctx, orderID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type JobRepoMock struct{ mock.Mock }

func (m *JobRepoMock) UpsertBulk(ctx context.Context, jobs []model.Job) error {
	args := m.Called(ctx, jobs)
	return args.Error(0)
}

func (m *JobRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.Job, error) {
	args := m.Called(ctx, orderID)
	jobs, _ := args.Get(0).([]model.Job)
	return jobs, args.Error(1)
}

func (m *JobRepoMock) ListBoard(ctx context.Context) ([]model.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]model.Job)
	return jobs, args.Error(1)
}

func (m *JobRepoMock) ListIDsByItemIDs(ctx context.Context, itemIDs []string) ([]string, error) {
	args := m.Called(ctx, itemIDs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *JobRepoMock) ListIDsByOrderID(ctx context.Context, orderID string) ([]string, error) {
	args := m.Called(ctx, orderID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *JobRepoMock) DeleteByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *JobRepoMock) DeleteOrphans(ctx context.Context, orderID string, keepIDs []string) error {
	args := m.Called(ctx, orderID, keepIDs)
	return args.Error(0)
}

func (m *JobRepoMock) DeleteByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *JobRepoMock) UpdateFields(ctx context.Context, jobID string, fields map[string]any) error {
	args := m.Called(ctx, jobID, fields)
	return args.Error(0)
}

type ServiceFeeLinkRepoMock struct{ mock.Mock }

func (m *ServiceFeeLinkRepoMock) UpsertLinks(ctx context.Context, links []model.TeamServiceFeeJob) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *ServiceFeeLinkRepoMock) DeleteByJobIDs(ctx context.Context, jobIDs []string) error {
	args := m.Called(ctx, jobIDs)
	return args.Error(0)
}

type JobCompletionRepoMock struct{ mock.Mock }

func (m *JobCompletionRepoMock) FindByJobID(ctx context.Context, jobID string) (model.JobCompletion, error) {
	args := m.Called(ctx, jobID)
	jc, _ := args.Get(0).(model.JobCompletion)
	return jc, args.Error(1)
}

func (m *JobCompletionRepoMock) Upsert(ctx context.Context, jc *model.JobCompletion) error {
	args := m.Called(ctx, jc)
	return args.Error(0)
}

func (m *JobCompletionRepoMock) DeleteByJobIDs(ctx context.Context, jobIDs []string) error {
	args := m.Called(ctx, jobIDs)
	return args.Error(0)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) DeleteByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *PaymentRepoMock) InsertBulk(ctx context.Context, payments []model.OrderPayment) error {
	args := m.Called(ctx, payments)
	return args.Error(0)
}

func (m *PaymentRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderPayment, error) {
	args := m.Called(ctx, orderID)
	payments, _ := args.Get(0).([]model.OrderPayment)
	return payments, args.Error(1)
}

type DocSeqMock struct{ mock.Mock }

func (m *DocSeqMock) Next(ctx context.Context, docType string, yearMonth string) (int64, error) {
	args := m.Called(ctx, docType, yearMonth)
	return args.Get(0).(int64), args.Error(1)
}

type SettingRepoMock struct{ mock.Mock }

func (m *SettingRepoMock) Get(ctx context.Context, key string) (model.Setting, error) {
	args := m.Called(ctx, key)
	s, _ := args.Get(0).(model.Setting)
	return s, args.Error(1)
}

func (m *SettingRepoMock) Upsert(ctx context.Context, s *model.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type ObjectStoreMock struct{ mock.Mock }

func (m *ObjectStoreMock) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, path, data, contentType)
	return args.String(0), args.Error(1)
}

type orderUsecaseMocks struct {
	orders      *OrderRepoMock
	items       *OrderItemRepoMock
	jobs        *JobRepoMock
	links       *ServiceFeeLinkRepoMock
	completions *JobCompletionRepoMock
	payments    *PaymentRepoMock
	docSeq      *DocSeqMock
	store       *ObjectStoreMock
}

func newTestOrderUsecase() (*OrderUsecase, *orderUsecaseMocks) {
	m := &orderUsecaseMocks{
		orders:      new(OrderRepoMock),
		items:       new(OrderItemRepoMock),
		jobs:        new(JobRepoMock),
		links:       new(ServiceFeeLinkRepoMock),
		completions: new(JobCompletionRepoMock),
		payments:    new(PaymentRepoMock),
		docSeq:      new(DocSeqMock),
		store:       new(ObjectStoreMock),
	}
	uc := NewOrderUsecase(
		m.orders, m.items, m.jobs, m.links, m.completions,
		m.payments, m.docSeq, m.store, zap.NewNop(),
	)
	return uc, m
}
