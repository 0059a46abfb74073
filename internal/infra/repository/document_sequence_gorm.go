package repository

import (
	"context"

	"gorm.io/gorm"
)

type DocumentSequenceGormRepository struct {
	db *gorm.DB
}

func NewDocumentSequenceGormRepository(db *gorm.DB) *DocumentSequenceGormRepository {
	return &DocumentSequenceGormRepository{db: db}
}

// Next bumps the (doc_type, year_month) counter in one statement so
// concurrent callers can never see the same value.
func (r *DocumentSequenceGormRepository) Next(ctx context.Context, docType string, yearMonth string) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO document_sequences (doc_type, year_month, last_value)
		VALUES (?, ?, 1)
		ON CONFLICT (doc_type, year_month)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`,
		docType, yearMonth,
	).Scan(&next).Error
	if err != nil {
		return 0, translateError(err)
	}
	return next, nil
}
