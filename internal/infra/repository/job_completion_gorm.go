package repository

import (
	"context"

	"opsconsole/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobCompletionGormRepository struct {
	db *gorm.DB
}

func NewJobCompletionGormRepository(db *gorm.DB) *JobCompletionGormRepository {
	return &JobCompletionGormRepository{db: db}
}

func (r *JobCompletionGormRepository) FindByJobID(ctx context.Context, jobID string) (model.JobCompletion, error) {
	var jc model.JobCompletion
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&jc).Error
	if err != nil {
		return model.JobCompletion{}, translateError(err)
	}
	return jc, nil
}

func (r *JobCompletionGormRepository) Upsert(ctx context.Context, jc *model.JobCompletion) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}},
			UpdateAll: true,
		}).
		Create(jc).Error
	return translateError(err)
}

func (r *JobCompletionGormRepository) DeleteByJobIDs(ctx context.Context, jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("job_id IN ?", jobIDs).
		Delete(&model.JobCompletion{}).Error
	return translateError(err)
}
