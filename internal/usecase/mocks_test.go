package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bytewerk/leadboard/internal/entity"
	"github.com/bytewerk/leadboard/internal/infra/integration/ga4"
	"github.com/bytewerk/leadboard/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id int, patch entity.LeadPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishStatusChange(ctx context.Context, payload queue.StatusChangedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLeadAlert(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

type MockAnalyticsProvider struct {
	mock.Mock
}

func (m *MockAnalyticsProvider) FetchReport(ctx context.Context) ([]ga4.ReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ga4.ReportRow), args.Error(1)
}
