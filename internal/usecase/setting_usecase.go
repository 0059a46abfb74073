package usecase

import (
	"context"
	"errors"
	"net/http"

	"opsconsole/internal/domain/model"
	repo "opsconsole/internal/repository"
	"opsconsole/internal/retry"

	"go.uber.org/zap"
)

type SettingUsecase struct {
	settings repo.SettingRepository
	log      *zap.Logger
}

func NewSettingUsecase(settings repo.SettingRepository, log *zap.Logger) *SettingUsecase {
	return &SettingUsecase{settings: settings, log: log}
}

// GetSetting retries reads: settings are fetched during page load and a
// transient connection drop should not blank the shop profile.
func (u *SettingUsecase) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	var s model.Setting
	err := retry.Do(ctx, u.log, "setting fetch", retry.Options{}, func() error {
		var err error
		s, err = u.settings.Get(ctx, key)
		return err
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		u.log.Error("setting fetch failed", zap.String("key", key), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return &s, nil
}

func (u *SettingUsecase) SaveSetting(ctx context.Context, key string, value string) (*model.Setting, error) {
	if key == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "setting key is required")
	}
	s := model.Setting{Key: key, Value: value}
	if err := u.settings.Upsert(ctx, &s); err != nil {
		u.log.Error("setting save failed", zap.String("key", key), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return &s, nil
}
