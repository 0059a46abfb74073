package repository

import (
	"errors"
	"fmt"

	repo "opsconsole/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError maps driver errors onto the repository sentinels so
// usecases never see pgconn types.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", repo.ErrForeignKeyViolation, pgErr.Message)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", repo.ErrUniqueViolation, pgErr.Message)
		}
	}
	return err
}
