package usecase

import (
	"context"

	"github.com/bytewerk/leadboard/internal/entity"
	"github.com/bytewerk/leadboard/internal/infra/integration/ga4"
	"github.com/bytewerk/leadboard/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id int) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]entity.Lead, error)
	Update(ctx context.Context, id int, patch entity.LeadPatch) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// AnalyticsProviderInterface hides the GA4 wire format: rows arrive already
// name-keyed, never positional.
type AnalyticsProviderInterface interface {
	FetchReport(ctx context.Context) ([]ga4.ReportRow, error)
}

type QueueProducerInterface interface {
	PublishStatusChange(ctx context.Context, payload queue.StatusChangedPayload) error
}

type EmailService interface {
	SendLeadAlert(lead *entity.Lead) error
}
