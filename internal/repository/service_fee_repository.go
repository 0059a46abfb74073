package repository

import (
	"context"

	"opsconsole/internal/domain/model"
)

type ServiceFeeLinkRepository interface {
	// UpsertLinks inserts job→batch links, ignoring duplicates on the
	// composite key.
	UpsertLinks(ctx context.Context, links []model.TeamServiceFeeJob) error
	DeleteByJobIDs(ctx context.Context, jobIDs []string) error
}
