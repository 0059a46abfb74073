package repository

import (
	"context"

	"opsconsole/internal/domain/model"
)

type JobRepository interface {
	UpsertBulk(ctx context.Context, jobs []model.Job) error

	// ListByOrderID returns the order's jobs with site address and
	// inspector rows attached, oldest first.
	ListByOrderID(ctx context.Context, orderID string) ([]model.Job, error)

	// ListBoard returns all non-cancelled jobs joined with their order,
	// item, catalog and site rows, ordered by appointment date.
	ListBoard(ctx context.Context) ([]model.Job, error)

	ListIDsByItemIDs(ctx context.Context, itemIDs []string) ([]string, error)
	ListIDsByOrderID(ctx context.Context, orderID string) ([]string, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	// DeleteOrphans removes the order's jobs whose ids are not in keepIDs.
	DeleteOrphans(ctx context.Context, orderID string, keepIDs []string) error
	DeleteByOrderID(ctx context.Context, orderID string) error

	// UpdateFields applies a partial update to one job row.
	UpdateFields(ctx context.Context, jobID string, fields map[string]any) error
}

type JobCompletionRepository interface {
	FindByJobID(ctx context.Context, jobID string) (model.JobCompletion, error)
	Upsert(ctx context.Context, jc *model.JobCompletion) error
	DeleteByJobIDs(ctx context.Context, jobIDs []string) error
}
