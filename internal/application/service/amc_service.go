package service

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// AMCService handles annual maintenance contracts
type AMCService struct {
	store *store.Store
}

// NewAMCService creates a new AMC service
func NewAMCService(st *store.Store) *AMCService {
	return &AMCService{store: st}
}

// CreateAMCInput represents the create contract input
type CreateAMCInput struct {
	Customer     entity.CustomerInfo
	DeviceSerial string
	DeviceModel  string
	StartDate    time.Time
	EndDate      time.Time
	Amount       float64
}

func (in *CreateAMCInput) validate() error {
	if in.Customer.Name == "" {
		return apperror.NewBadRequestError("Customer name is required")
	}
	if in.DeviceSerial == "" {
		return apperror.NewBadRequestError("Device serial is required")
	}
	if !in.EndDate.After(in.StartDate) {
		return apperror.NewBadRequestError("End date must be after start date")
	}
	return nil
}

// CreateAMC creates a contract
func (s *AMCService) CreateAMC(input *CreateAMCInput) (entity.AMCContract, error) {
	if err := input.validate(); err != nil {
		return entity.AMCContract{}, err
	}
	return s.store.AddAMC(entity.AMCContract{
		Customer:     input.Customer,
		DeviceSerial: input.DeviceSerial,
		DeviceModel:  input.DeviceModel,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Amount:       input.Amount,
	}), nil
}

// ConvertOrderToAMC creates a contract from a completed order
func (s *AMCService) ConvertOrderToAMC(orderID string, input *CreateAMCInput) (entity.AMCContract, error) {
	if input.DeviceSerial == "" {
		return entity.AMCContract{}, apperror.NewBadRequestError("Device serial is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return entity.AMCContract{}, apperror.NewBadRequestError("End date must be after start date")
	}
	return s.store.ConvertOrderToAMC(orderID, entity.AMCContract{
		DeviceSerial: input.DeviceSerial,
		DeviceModel:  input.DeviceModel,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Amount:       input.Amount,
	})
}

// RenewAMC rolls a contract forward to a new end date
func (s *AMCService) RenewAMC(id string, newEndDate time.Time, newAmount *float64) (entity.AMCContract, error) {
	return s.store.RenewAMC(id, newEndDate, newAmount)
}

// UpcomingRenewals lists active contracts expiring soon
func (s *AMCService) UpcomingRenewals(withinDays int) []entity.AMCContract {
	return s.store.UpcomingRenewals(withinDays)
}

// AddServiceRecord logs a service visit
func (s *AMCService) AddServiceRecord(id string, record entity.ServiceRecord) (entity.AMCContract, error) {
	if record.Description == "" {
		return entity.AMCContract{}, apperror.NewBadRequestError("Service description is required")
	}
	return s.store.AddServiceRecord(id, record)
}

// MarkReminderSent flags a renewal reminder as sent
func (s *AMCService) MarkReminderSent(id string, index int) (entity.AMCContract, error) {
	return s.store.MarkReminderSent(id, index)
}

// GetAMC retrieves a contract by id
func (s *AMCService) GetAMC(id string) (entity.AMCContract, error) {
	return s.store.GetAMC(id)
}

// LookupByQRCode finds a contract by its QR code id
func (s *AMCService) LookupByQRCode(qrCodeID string) (entity.AMCContract, error) {
	for _, c := range s.store.ListAMCs() {
		if c.QRCodeID == qrCodeID {
			return c, nil
		}
	}
	return entity.AMCContract{}, apperror.NewNotFoundError("AMC contract")
}

// ListAMCs lists contracts
func (s *AMCService) ListAMCs() []entity.AMCContract {
	return s.store.ListAMCs()
}
