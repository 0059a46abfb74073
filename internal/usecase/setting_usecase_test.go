package usecase

import (
	"context"
	"net/http"
	"syscall"
	"testing"

	"opsconsole/internal/domain/model"
	repo "opsconsole/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestGetSetting_MissingKeyIsNil(t *testing.T) {
	ctx := context.Background()
	settings := new(SettingRepoMock)
	uc := NewSettingUsecase(settings, zap.NewNop())

	settings.On("Get", mock.Anything, "promptpay_id").
		Return(model.Setting{}, repo.ErrNotFound)

	s, err := uc.GetSetting(ctx, "promptpay_id")

	assert.NoError(t, err)
	assert.Nil(t, s)
	// Not-found is permanent: one call, no retries.
	settings.AssertNumberOfCalls(t, "Get", 1)
}

func TestGetSetting_RetriesTransientFailure(t *testing.T) {
	ctx := context.Background()
	settings := new(SettingRepoMock)
	uc := NewSettingUsecase(settings, zap.NewNop())

	settings.On("Get", mock.Anything, "shop_address").
		Return(model.Setting{}, syscall.ECONNRESET).Once()
	settings.On("Get", mock.Anything, "shop_address").
		Return(model.Setting{Key: "shop_address", Value: "ปทุมธานี"}, nil).Once()

	s, err := uc.GetSetting(ctx, "shop_address")

	assert.NoError(t, err)
	if assert.NotNil(t, s) {
		assert.Equal(t, "ปทุมธานี", s.Value)
	}
	settings.AssertNumberOfCalls(t, "Get", 2)
}

func TestSaveSetting_EmptyKeyRejected(t *testing.T) {
	ctx := context.Background()
	settings := new(SettingRepoMock)
	uc := NewSettingUsecase(settings, zap.NewNop())

	_, err := uc.SaveSetting(ctx, "", "x")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	settings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSaveSetting_Upserts(t *testing.T) {
	ctx := context.Background()
	settings := new(SettingRepoMock)
	uc := NewSettingUsecase(settings, zap.NewNop())

	settings.On("Upsert", mock.Anything, mock.MatchedBy(func(s *model.Setting) bool {
		return s.Key == "invoice_footer" && s.Value == "ขอบคุณที่ใช้บริการ"
	})).Return(nil)

	s, err := uc.SaveSetting(ctx, "invoice_footer", "ขอบคุณที่ใช้บริการ")

	assert.NoError(t, err)
	assert.NotNil(t, s)
	settings.AssertExpectations(t)
}
