package repository

import (
	"context"

	"opsconsole/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServiceFeeLinkGormRepository struct {
	db *gorm.DB
}

func NewServiceFeeLinkGormRepository(db *gorm.DB) *ServiceFeeLinkGormRepository {
	return &ServiceFeeLinkGormRepository{db: db}
}

func (r *ServiceFeeLinkGormRepository) UpsertLinks(ctx context.Context, links []model.TeamServiceFeeJob) error {
	if len(links) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_fee_id"}, {Name: "job_id"}},
			DoNothing: true,
		}).
		Create(&links).Error
	return translateError(err)
}

func (r *ServiceFeeLinkGormRepository) DeleteByJobIDs(ctx context.Context, jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("job_id IN ?", jobIDs).
		Delete(&model.TeamServiceFeeJob{}).Error
	return translateError(err)
}
