package repository

import (
	"context"

	"opsconsole/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) UpsertBulk(ctx context.Context, jobs []model.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Omit(clause.Associations).
		Create(&jobs).Error
	return translateError(err)
}

func (r *JobGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("SiteAddress").
		Preload("SiteInspector").
		Where("order_id = ?", orderID).
		Order("created_at asc").
		Find(&jobs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return jobs, nil
}

func (r *JobGormRepository) ListBoard(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("Order.Customer").
		Preload("Order.DeliveryAddress").
		Preload("OrderItem.Product").
		Preload("OrderItem.Variant").
		Preload("SiteAddress").
		Preload("SiteInspector").
		Preload("TeamPayment").
		Where("status NOT IN ?", []string{model.JobStatusCancelled, "cancelled"}).
		Order("appointment_date asc").
		Find(&jobs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return jobs, nil
}

func (r *JobGormRepository) ListIDsByItemIDs(ctx context.Context, itemIDs []string) ([]string, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("order_item_id IN ?", itemIDs).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}

func (r *JobGormRepository) ListIDsByOrderID(ctx context.Context, orderID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("order_id = ?", orderID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}

func (r *JobGormRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.Job{}).Error
	return translateError(err)
}

func (r *JobGormRepository) DeleteOrphans(ctx context.Context, orderID string, keepIDs []string) error {
	// NOT IN over an empty list is undefined in SQL; the full wipe is a
	// separate statement.
	if len(keepIDs) == 0 {
		return r.DeleteByOrderID(ctx, orderID)
	}
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND id NOT IN ?", orderID, keepIDs).
		Delete(&model.Job{}).Error
	return translateError(err)
}

func (r *JobGormRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.Job{}).Error
	return translateError(err)
}

func (r *JobGormRepository) UpdateFields(ctx context.Context, jobID string, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("id = ?", jobID).
		Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
