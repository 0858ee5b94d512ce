package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bytewerk/leadboard/internal/entity"
	"github.com/bytewerk/leadboard/internal/infra/queue"
	"github.com/bytewerk/leadboard/internal/usecase"
)

func sampleLead(id int, status entity.Status) *entity.Lead {
	return &entity.Lead{
		ID:                 id,
		FullName:           "Jane Doe",
		Email:              "j@x.com",
		Phone:              "555",
		Address:            "1 Main St",
		JobImportance:      "High",
		CustomerExperience: "Good",
		ContactTime:        "Morning",
		Status:             status,
		CreatedAt:          time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateLeadDefaultsToNew(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = 7
		lead.CreatedAt = time.Now()
	}).Return(nil)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	lead, err := service.CreateLead(context.Background(), usecase.CreateLeadInput{
		FullName:           "Jane Doe",
		Email:              "j@x.com",
		Phone:              "555",
		Address:            "1 Main St",
		JobImportance:      "High",
		CustomerExperience: "Good",
		ContactTime:        "Morning",
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestCreateLeadValidationFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := usecase.NewLeadService(mockRepo, nil, nil)

	_, err := service.CreateLead(context.Background(), usecase.CreateLeadInput{
		FullName: "Jane Doe",
		// email missing
		Phone:              "555",
		Address:            "1 Main St",
		JobImportance:      "High",
		CustomerExperience: "Good",
		ContactTime:        "Morning",
	})

	var validationErr usecase.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
	mockRepo.AssertNotCalled(t, "Insert")
}

func TestGetLeadNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, 99).Return(nil, entity.ErrLeadNotFound)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	_, err := service.GetLead(context.Background(), 99)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := usecase.NewLeadService(mockRepo, nil, nil)

	err := service.SetStatus(context.Background(), 1, "Done")

	assert.True(t, usecase.IsInvalidStatus(err))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestSetStatusIsIdempotent(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, 1).Return(sampleLead(1, entity.StatusApproved), nil)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	// Re-applying the current status twice is two no-op writes.
	assert.NoError(t, service.SetStatus(context.Background(), 1, "Approved"))
	assert.NoError(t, service.SetStatus(context.Background(), 1, "Approved"))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestSetStatusUpdatesAndPublishes(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, 1).Return(sampleLead(1, entity.StatusNew), nil)
	mockRepo.On("Update", mock.Anything, 1, mock.Anything).Return(int64(1), nil)

	mockProducer := new(MockQueueProducer)
	mockProducer.On("PublishStatusChange", mock.Anything, mock.MatchedBy(func(p queue.StatusChangedPayload) bool {
		return p.LeadID == 1 && p.FromStatus == "New" && p.ToStatus == "Approved"
	})).Return(nil)

	service := usecase.NewLeadService(mockRepo, mockProducer, nil)

	err := service.SetStatus(context.Background(), 1, "Approved")

	assert.NoError(t, err)
	mockProducer.AssertExpectations(t)
}

func TestSetStatusNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, 42).Return(nil, entity.ErrLeadNotFound)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	err := service.SetStatus(context.Background(), 42, "Pending")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestUpdateLeadRejectsInvalidStatus(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := usecase.NewLeadService(mockRepo, nil, nil)

	bad := "Archived"
	err := service.UpdateLead(context.Background(), 1, usecase.UpdateLeadInput{Status: &bad})

	assert.True(t, usecase.IsInvalidStatus(err))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUpdateLeadRejectsEmptyField(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := usecase.NewLeadService(mockRepo, nil, nil)

	empty := "  "
	err := service.UpdateLead(context.Background(), 1, usecase.UpdateLeadInput{FullName: &empty})

	var validationErr usecase.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUpdateLeadMergesFields(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, 1).Return(sampleLead(1, entity.StatusNew), nil)
	mockRepo.On("Update", mock.Anything, 1, mock.MatchedBy(func(patch entity.LeadPatch) bool {
		return patch.Phone != nil && *patch.Phone == "556" && patch.Status == nil
	})).Return(int64(1), nil)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	phone := "556"
	err := service.UpdateLead(context.Background(), 1, usecase.UpdateLeadInput{Phone: &phone})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteLeadNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Delete", mock.Anything, 42).Return(int64(0), nil)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	err := service.DeleteLead(context.Background(), 42)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestBulkDeletePartialFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Delete", mock.Anything, 1).Return(int64(1), nil)
	mockRepo.On("Delete", mock.Anything, 2).Return(int64(0), nil)

	service := usecase.NewLeadService(mockRepo, nil, nil)

	result := service.BulkDelete(context.Background(), []int{1, 2})

	assert.Equal(t, []int{1}, result.Deleted)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, 2, result.Failed[0].ID)
	assert.Equal(t, entity.ErrLeadNotFound.Error(), result.Failed[0].Reason)
}

func TestBulkDeleteAllSettleIndependently(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	for id := 1; id <= 5; id++ {
		mockRepo.On("Delete", mock.Anything, id).Return(int64(1), nil)
	}

	service := usecase.NewLeadService(mockRepo, nil, nil)

	result := service.BulkDelete(context.Background(), []int{1, 2, 3, 4, 5})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, result.Deleted)
	assert.Empty(t, result.Failed)
}
