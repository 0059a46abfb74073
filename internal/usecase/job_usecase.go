package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"opsconsole/internal/domain/model"
	"opsconsole/internal/geo"
	"opsconsole/internal/ident"
	repo "opsconsole/internal/repository"

	"go.uber.org/zap"
)

type JobUsecase struct {
	jobs        repo.JobRepository
	completions repo.JobCompletionRepository
	store       repo.ObjectStore
	log         *zap.Logger
}

func NewJobUsecase(
	jobs repo.JobRepository,
	completions repo.JobCompletionRepository,
	store repo.ObjectStore,
	log *zap.Logger,
) *JobUsecase {
	return &JobUsecase{jobs: jobs, completions: completions, store: store, log: log}
}

// BoardJob is one row on the installation board: the job plus everything a
// technician needs without opening the order.
type BoardJob struct {
	ID              string         `json:"id"`
	OrderID         string         `json:"order_id"`
	OrderItemID     string         `json:"order_item_id"`
	JobType         string         `json:"jobType"`
	Status          string         `json:"status"`
	Team            string         `json:"team"`
	AppointmentDate string         `json:"appointmentDate"`
	CompletionDate  string         `json:"completionDate"`
	Notes           string         `json:"notes"`
	SequenceNumber  int            `json:"sequence_number"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	ProductName     string         `json:"productName"`
	ProductCode     string         `json:"productCode"`
	VariantName     string         `json:"variantName"`
	Quantity        int            `json:"quantity"`
	InstallAddress  string         `json:"installAddress"`
	GoogleMapLink   string         `json:"googleMapLink"`
	Distance        string         `json:"distance"`
	Inspector       *InspectorView `json:"inspector"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ListBoard returns every non-cancelled job ordered by appointment date.
func (u *JobUsecase) ListBoard(ctx context.Context) ([]BoardJob, error) {
	jobs, err := u.jobs.ListBoard(ctx)
	if err != nil {
		u.log.Error("job board fetch failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	board := make([]BoardJob, len(jobs))
	for i, j := range jobs {
		board[i] = newBoardJob(j)
	}
	return board, nil
}

func newBoardJob(j model.Job) BoardJob {
	view := normalizeJob(j)
	b := BoardJob{
		ID:              view.ID,
		OrderID:         view.OrderID,
		OrderItemID:     view.OrderItemID,
		JobType:         view.JobType,
		Status:          view.Status,
		Team:            view.Team,
		AppointmentDate: view.AppointmentDate,
		CompletionDate:  view.CompletionDate,
		Notes:           view.Notes,
		SequenceNumber:  view.SequenceNumber,
		InstallAddress:  view.InstallAddress,
		GoogleMapLink:   view.GoogleMapLink,
		Distance:        view.Distance,
		Inspector:       view.Inspector,
		CreatedAt:       view.CreatedAt,
	}
	if j.Order != nil && j.Order.Customer != nil {
		b.CustomerName = j.Order.Customer.Name
		b.CustomerPhone = deref(j.Order.Customer.Phone)
	}
	if j.OrderItem != nil {
		b.Quantity = j.OrderItem.Quantity
		if j.OrderItem.Product != nil {
			b.ProductName = j.OrderItem.Product.Name
			b.ProductCode = deref(j.OrderItem.Product.ProductCode)
		}
		if j.OrderItem.Variant != nil {
			b.VariantName = deref(j.OrderItem.Variant.Name)
		}
	}
	// The board falls back to the delivery address when a job has no site
	// address of its own.
	if b.InstallAddress == "" && j.Order != nil && j.Order.DeliveryAddress != nil {
		b.InstallAddress = formatAddress(j.Order.DeliveryAddress)
		b.GoogleMapLink = deref(j.Order.DeliveryAddress.Maps)
		if km, ok := geo.DistanceFromShop(b.GoogleMapLink); ok {
			b.Distance = fmt.Sprintf("%d km", km)
		}
	}
	return b
}

// JobUpdateInput carries the partial update a technician submits from the
// board. Nil means "leave the column alone".
type JobUpdateInput struct {
	Status          *string `json:"status"`
	Team            *string `json:"team"`
	AppointmentDate *string `json:"appointmentDate"`
	CompletionDate  *string `json:"completionDate"`
	Notes           *string `json:"notes"`
	TeamPaymentID   *string `json:"teamPaymentId"`
}

// UpdateJob applies only the submitted fields. Marking a job เสร็จสิ้น
// stamps the completion time when the technician did not supply one.
func (u *JobUsecase) UpdateJob(ctx context.Context, jobID string, in JobUpdateInput) error {
	if !ident.IsStoreUUID(jobID) {
		return NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	fields := map[string]any{}
	if in.Status != nil {
		fields["status"] = *in.Status
		if *in.Status == model.JobStatusCompleted && in.CompletionDate == nil {
			fields["completion_date"] = time.Now()
		}
	}
	if in.Team != nil {
		fields["assigned_team"] = strOrNil(*in.Team)
	}
	if in.AppointmentDate != nil {
		fields["appointment_date"] = parseWhen(*in.AppointmentDate)
	}
	if in.CompletionDate != nil {
		fields["completion_date"] = parseWhen(*in.CompletionDate)
	}
	if in.Notes != nil {
		fields["notes"] = strOrNil(*in.Notes)
	}
	if in.TeamPaymentID != nil {
		fields["team_payment_id"] = ident.OrNil(*in.TeamPaymentID)
	}
	if len(fields) == 0 {
		return nil
	}

	if err := u.jobs.UpdateFields(ctx, jobID, fields); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "job not found")
		}
		u.log.Error("job update failed", zap.String("job_id", jobID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, msgSaveJobsFailed)
	}
	return nil
}

// GetJobCompletion returns nil when no sign-off exists yet; that is the
// normal state for an open job, not an error.
func (u *JobUsecase) GetJobCompletion(ctx context.Context, jobID string) (*model.JobCompletion, error) {
	if !ident.IsStoreUUID(jobID) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	jc, err := u.completions.FindByJobID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		u.log.Error("completion fetch failed", zap.String("job_id", jobID), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return &jc, nil
}

type JobCompletionInput struct {
	Signature string `json:"signature"`
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment"`
	Media     string `json:"media"`
}

// SaveJobCompletion stores the on-site sign-off. An inline signature is
// uploaded first; a failed upload drops the signature but keeps the rest
// of the record.
func (u *JobUsecase) SaveJobCompletion(ctx context.Context, jobID string, in JobCompletionInput) (*model.JobCompletion, error) {
	if !ident.IsStoreUUID(jobID) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	var signatureURL *string
	if data, ok := decodeDataURI(in.Signature); ok {
		path := fmt.Sprintf("job-completions/%s/signature-%d.png", jobID, time.Now().UnixMilli())
		url, err := u.store.Upload(ctx, path, data, "image/png")
		if err != nil {
			u.log.Warn("signature upload failed", zap.String("job_id", jobID), zap.Error(err))
		} else {
			signatureURL = &url
		}
	} else if in.Signature != "" {
		// Already a URL from a previous save.
		signatureURL = &in.Signature
	}

	jc := model.JobCompletion{
		JobID:        jobID,
		SignatureURL: signatureURL,
		Rating:       in.Rating,
		Comment:      strOrNil(in.Comment),
		Media:        strOrNil(in.Media),
	}
	if err := u.completions.Upsert(ctx, &jc); err != nil {
		if errors.Is(err, repo.ErrForeignKeyViolation) {
			return nil, NewHTTPError(http.StatusBadRequest, "job not found")
		}
		u.log.Error("completion save failed", zap.String("job_id", jobID), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	u.log.Info("job completion saved", zap.String("job_id", jobID))
	return &jc, nil
}
