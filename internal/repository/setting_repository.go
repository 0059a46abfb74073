package repository

import (
	"context"

	"opsconsole/internal/domain/model"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (model.Setting, error)
	Upsert(ctx context.Context, s *model.Setting) error
}

// DocumentSequences allocates per-(type, period) counters for invoice and
// receipt numbers. Next must be monotonic across concurrent callers.
type DocumentSequences interface {
	Next(ctx context.Context, docType string, yearMonth string) (int64, error)
}
