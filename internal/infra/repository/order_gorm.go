package repository

import (
	"context"

	"opsconsole/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Upsert(ctx context.Context, o *model.Order) error {
	// Empty ID means insert: gorm omits the zero id so the store assigns
	// one and writes it back through RETURNING.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Omit(clause.Associations).
		Create(o).Error
	return translateError(err)
}

func (r *OrderGormRepository) FindAggregate(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer.Addresses").
		Preload("Customer.Contacts").
		Preload("Customer.TaxInvoices").
		Preload("PurchaserContact").
		Preload("ReceiverContact").
		Preload("TaxInvoice").
		Preload("TaxInvoiceDeliveryAddress").
		Preload("DeliveryAddress").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at asc")
		}).
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("Items.Jobs").
		Preload("Items.Jobs.SiteAddress").
		Preload("Items.Jobs.SiteInspector").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_payments.payment_date asc")
		}).
		Where("id = ?", orderID).
		First(&o).Error
	if err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Jobs").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, translateError(err)
	}
	return orders, nil
}

func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, translateError(err)
	}
	return orders, nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, orderID string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.Order{}).Error
	return translateError(err)
}
