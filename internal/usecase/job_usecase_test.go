package usecase

import (
	"context"
	"net/http"
	"testing"

	"opsconsole/internal/domain/model"
	repo "opsconsole/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestJobUsecase() (*JobUsecase, *JobRepoMock, *JobCompletionRepoMock, *ObjectStoreMock) {
	jobs := new(JobRepoMock)
	completions := new(JobCompletionRepoMock)
	store := new(ObjectStoreMock)
	return NewJobUsecase(jobs, completions, store, zap.NewNop()), jobs, completions, store
}

func TestUpdateJob_RejectsNonStoreID(t *testing.T) {
	ctx := context.Background()
	uc, jobs, _, _ := newTestJobUsecase()

	// Loose-format placeholder: valid shape, not a v4 store id.
	err := uc.UpdateJob(ctx, "00000000-0000-0000-0000-000000000001", JobUpdateInput{})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	jobs.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateJob_OnlySubmittedFields(t *testing.T) {
	ctx := context.Background()
	uc, jobs, _, _ := newTestJobUsecase()

	team := "ทีม A"
	jobs.On("UpdateFields", mock.Anything, testJobID, mock.MatchedBy(func(fields map[string]any) bool {
		_, hasStatus := fields["status"]
		_, hasTeam := fields["assigned_team"]
		return !hasStatus && hasTeam && len(fields) == 1
	})).Return(nil)

	err := uc.UpdateJob(ctx, testJobID, JobUpdateInput{Team: &team})

	assert.NoError(t, err)
	jobs.AssertExpectations(t)
}

func TestUpdateJob_CompletionStampsDate(t *testing.T) {
	ctx := context.Background()
	uc, jobs, _, _ := newTestJobUsecase()

	status := model.JobStatusCompleted
	jobs.On("UpdateFields", mock.Anything, testJobID, mock.MatchedBy(func(fields map[string]any) bool {
		_, stamped := fields["completion_date"]
		return fields["status"] == model.JobStatusCompleted && stamped
	})).Return(nil)

	err := uc.UpdateJob(ctx, testJobID, JobUpdateInput{Status: &status})

	assert.NoError(t, err)
	jobs.AssertExpectations(t)
}

func TestUpdateJob_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, jobs, _, _ := newTestJobUsecase()

	status := model.JobStatusProcessing
	jobs.On("UpdateFields", mock.Anything, testJobID, mock.Anything).Return(repo.ErrNotFound)

	err := uc.UpdateJob(ctx, testJobID, JobUpdateInput{Status: &status})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetJobCompletion_MissingIsNotAnError(t *testing.T) {
	ctx := context.Background()
	uc, _, completions, _ := newTestJobUsecase()

	completions.On("FindByJobID", mock.Anything, testJobID).
		Return(model.JobCompletion{}, repo.ErrNotFound)

	jc, err := uc.GetJobCompletion(ctx, testJobID)

	assert.NoError(t, err)
	assert.Nil(t, jc)
}

func TestSaveJobCompletion_PassesThroughExistingURL(t *testing.T) {
	ctx := context.Background()
	uc, _, completions, store := newTestJobUsecase()

	completions.On("Upsert", mock.Anything, mock.MatchedBy(func(jc *model.JobCompletion) bool {
		return jc.JobID == testJobID &&
			jc.SignatureURL != nil && *jc.SignatureURL == "https://cdn.example.com/old.png"
	})).Return(nil)

	jc, err := uc.SaveJobCompletion(ctx, testJobID, JobCompletionInput{
		Signature: "https://cdn.example.com/old.png",
	})

	assert.NoError(t, err)
	assert.NotNil(t, jc)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	completions.AssertExpectations(t)
}

func TestSaveJobCompletion_UnknownJob_Returns400(t *testing.T) {
	ctx := context.Background()
	uc, _, completions, _ := newTestJobUsecase()

	completions.On("Upsert", mock.Anything, mock.Anything).Return(repo.ErrForeignKeyViolation)

	_, err := uc.SaveJobCompletion(ctx, testJobID, JobCompletionInput{})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestListBoard_FallsBackToDeliveryAddress(t *testing.T) {
	ctx := context.Background()
	uc, jobs, _, _ := newTestJobUsecase()

	jobs.On("ListBoard", mock.Anything).Return([]model.Job{{
		ID:     testJobID,
		Status: model.JobStatusPending,
		Order: &model.Order{
			Customer: &model.Customer{Name: "คุณสมหญิง"},
			DeliveryAddress: &model.CustomerAddress{
				HouseNumber: strPtr("7"),
				Province:    strPtr("นนทบุรี"),
			},
		},
		OrderItem: &model.OrderItem{
			Quantity: 3,
			Product:  &model.Product{Name: "โคมไฟระย้า"},
		},
	}}, nil)

	board, err := uc.ListBoard(ctx)

	assert.NoError(t, err)
	assert.Len(t, board, 1)
	assert.Equal(t, "คุณสมหญิง", board[0].CustomerName)
	assert.Equal(t, "โคมไฟระย้า", board[0].ProductName)
	assert.Equal(t, 3, board[0].Quantity)
	assert.Equal(t, "เลขที่ 7 จังหวัด นนทบุรี", board[0].InstallAddress)
}
