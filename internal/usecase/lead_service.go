package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bytewerk/leadboard/internal/entity"
	"github.com/bytewerk/leadboard/internal/infra/queue"
)

// LeadService is the validated façade over the lead store. Producer and
// Email are optional; a nil dependency just skips that side effect.
type LeadService struct {
	Repo     LeadRepositoryInterface
	Producer QueueProducerInterface
	Email    EmailService
}

func NewLeadService(repo LeadRepositoryInterface, producer QueueProducerInterface, email EmailService) *LeadService {
	return &LeadService{
		Repo:     repo,
		Producer: producer,
		Email:    email,
	}
}

func (s *LeadService) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	lead, err := entity.NewLead(
		input.FullName,
		input.Email,
		input.Phone,
		input.Address,
		input.JobImportance,
		input.CustomerExperience,
		input.ContactTime,
	)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Insert(ctx, lead); err != nil {
		return nil, err
	}

	// Alert mail is advisory; a broken SMTP relay must not lose the lead.
	if s.Email != nil {
		if err := s.Email.SendLeadAlert(lead); err != nil {
			slog.Warn("lead alert mail failed", "lead_id", lead.ID, "error", err)
		}
	}

	return lead, nil
}

// CreateFromIntake adapts a queued lead-captured message to CreateLead.
func (s *LeadService) CreateFromIntake(ctx context.Context, payload queue.LeadCapturedPayload) (*entity.Lead, error) {
	return s.CreateLead(ctx, CreateLeadInput{
		FullName:           payload.FullName,
		Email:              payload.Email,
		Phone:              payload.Phone,
		Address:            payload.Address,
		JobImportance:      payload.JobImportance,
		CustomerExperience: payload.CustomerExperience,
		ContactTime:        payload.ContactTime,
	})
}

func (s *LeadService) GetLead(ctx context.Context, id int) (*entity.Lead, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *LeadService) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	return s.Repo.FindAll(ctx)
}

// SetStatus moves a lead to any status in the vocabulary. Re-applying the
// current status is a no-op write and publishes nothing.
func (s *LeadService) SetStatus(ctx context.Context, id int, value string) error {
	status, ok := entity.ParseStatus(value)
	if !ok {
		return &InvalidStatusError{Value: value}
	}

	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == status {
		return nil
	}

	count, err := s.Repo.Update(ctx, id, entity.LeadPatch{Status: &status})
	if err != nil {
		return err
	}
	if count == 0 {
		return entity.ErrLeadNotFound
	}

	s.publishStatusChange(ctx, id, current.Status, status)
	return nil
}

// UpdateLead merges any subset of fields into the lead. Provided values must
// be non-empty; a status value is validated against the vocabulary.
func (s *LeadService) UpdateLead(ctx context.Context, id int, input UpdateLeadInput) error {
	patch := entity.LeadPatch{
		FullName:           input.FullName,
		Email:              input.Email,
		Phone:              input.Phone,
		Address:            input.Address,
		JobImportance:      input.JobImportance,
		CustomerExperience: input.CustomerExperience,
		ContactTime:        input.ContactTime,
	}

	if err := validatePatchFields(input); err != nil {
		return err
	}

	var parsedStatus *entity.Status
	if input.Status != nil {
		status, ok := entity.ParseStatus(*input.Status)
		if !ok {
			return &InvalidStatusError{Value: *input.Status}
		}
		parsedStatus = &status
	}

	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var newStatus *entity.Status
	if parsedStatus != nil && *parsedStatus != current.Status {
		patch.Status = parsedStatus
		newStatus = parsedStatus
	}

	if patch.IsEmpty() {
		return nil
	}

	count, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if count == 0 {
		return entity.ErrLeadNotFound
	}

	if newStatus != nil {
		s.publishStatusChange(ctx, id, current.Status, *newStatus)
	}
	return nil
}

func (s *LeadService) DeleteLead(ctx context.Context, id int) error {
	count, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// BulkDelete issues the per-id deletes concurrently. Each id settles on its
// own; one failure never aborts the siblings, and there is no rollback.
func (s *LeadService) BulkDelete(ctx context.Context, ids []int) BulkDeleteResult {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	result := BulkDeleteResult{
		Deleted: []int{},
		Failed:  []BulkDeleteFailure{},
	}

	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			err := s.DeleteLead(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, BulkDeleteFailure{ID: id, Reason: err.Error()})
			} else {
				result.Deleted = append(result.Deleted, id)
			}
		}(id)
	}
	wg.Wait()

	sort.Ints(result.Deleted)
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].ID < result.Failed[j].ID })
	return result
}

func (s *LeadService) publishStatusChange(ctx context.Context, id int, from, to entity.Status) {
	if s.Producer == nil {
		return
	}

	payload := queue.StatusChangedPayload{
		LeadID:     id,
		FromStatus: string(from),
		ToStatus:   string(to),
	}
	if err := s.Producer.PublishStatusChange(ctx, payload); err != nil {
		slog.Warn("status change event not published", "lead_id", id, "error", err)
	}
}

func validatePatchFields(input UpdateLeadInput) error {
	fields := map[string]*string{
		"fullName":           input.FullName,
		"email":              input.Email,
		"phone":              input.Phone,
		"address":            input.Address,
		"jobImportance":      input.JobImportance,
		"customerExperience": input.CustomerExperience,
		"contactTime":        input.ContactTime,
	}
	for name, value := range fields {
		if value != nil && strings.TrimSpace(*value) == "" {
			return ValidationError{Field: name, Message: "must not be empty"}
		}
	}
	return nil
}
