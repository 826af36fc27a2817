package service

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// WorkshopService handles service jobs and RMA cases
type WorkshopService struct {
	store *store.Store
}

// NewWorkshopService creates a new workshop service
func NewWorkshopService(st *store.Store) *WorkshopService {
	return &WorkshopService{store: st}
}

// CreateJobInput represents the create job input
type CreateJobInput struct {
	Customer     entity.CustomerInfo
	Device       string
	SerialNumber string
	Issue        string
	AssignedTo   int
	Notes        string
}

// CreateJob opens a service job in Pending
func (s *WorkshopService) CreateJob(input *CreateJobInput) (entity.Job, error) {
	if input.Customer.Name == "" {
		return entity.Job{}, apperror.NewBadRequestError("Customer name is required")
	}
	if input.Issue == "" {
		return entity.Job{}, apperror.NewBadRequestError("Issue description is required")
	}
	return s.store.AddJob(entity.Job{
		Customer:     input.Customer,
		Device:       input.Device,
		SerialNumber: input.SerialNumber,
		Issue:        input.Issue,
		AssignedTo:   input.AssignedTo,
		Notes:        input.Notes,
	}), nil
}

// UpdateJobStatus moves a job to a new status
func (s *WorkshopService) UpdateJobStatus(id string, status enum.JobStatus) (entity.Job, error) {
	return s.store.UpdateJobStatus(id, status)
}

// DeleteJob soft-deletes a job
func (s *WorkshopService) DeleteJob(id string) error {
	return s.store.DeactivateJob(id)
}

// GetJob retrieves a job by id
func (s *WorkshopService) GetJob(id string) (entity.Job, error) {
	return s.store.GetJob(id)
}

// ListJobs lists jobs
func (s *WorkshopService) ListJobs(includeInactive bool) []entity.Job {
	return s.store.ListJobs(includeInactive)
}

// CreateRMAInput represents the create RMA input
type CreateRMAInput struct {
	Customer     entity.CustomerInfo
	Product      string
	SerialNumber string
	Reason       string
}

// CreateRMA opens an RMA case in Inbox
func (s *WorkshopService) CreateRMA(input *CreateRMAInput) (entity.RMARecord, error) {
	if input.Customer.Name == "" {
		return entity.RMARecord{}, apperror.NewBadRequestError("Customer name is required")
	}
	if input.Product == "" {
		return entity.RMARecord{}, apperror.NewBadRequestError("Product is required")
	}
	return s.store.AddRMA(entity.RMARecord{
		Customer:     input.Customer,
		Product:      input.Product,
		SerialNumber: input.SerialNumber,
		Reason:       input.Reason,
	}), nil
}

// AdvanceRMA moves a case to its single next status in the chain
func (s *WorkshopService) AdvanceRMA(id string) (entity.RMARecord, error) {
	rma, err := s.store.GetRMA(id)
	if err != nil {
		return entity.RMARecord{}, err
	}
	next, ok := s.store.NextRMAStatus(rma.Status)
	if !ok {
		return entity.RMARecord{}, apperror.NewUnprocessableError("RMA is already delivered")
	}
	return s.store.UpdateRMAStatus(id, next)
}

// UpdateRMAStatus moves a case to an explicit status
func (s *WorkshopService) UpdateRMAStatus(id string, status enum.RMAStatus) (entity.RMARecord, error) {
	return s.store.UpdateRMAStatus(id, status)
}

// GenerateDeliveryOTP issues the handover OTP for an RMA case
func (s *WorkshopService) GenerateDeliveryOTP(id string) (string, error) {
	return s.store.GenerateRMAOTP(id)
}

// VerifyDeliveryOTP checks an entered OTP without transitioning
func (s *WorkshopService) VerifyDeliveryOTP(id, otp string) error {
	return s.store.VerifyRMAOTP(id, otp)
}

// DeliverRMA verifies the OTP and completes the case in one step
func (s *WorkshopService) DeliverRMA(id, otp string) (entity.RMARecord, error) {
	return s.store.DeliverRMA(id, otp)
}

// GetRMA retrieves a case by id
func (s *WorkshopService) GetRMA(id string) (entity.RMARecord, error) {
	return s.store.GetRMA(id)
}

// ListRMAs lists cases
func (s *WorkshopService) ListRMAs() []entity.RMARecord {
	return s.store.ListRMAs()
}
