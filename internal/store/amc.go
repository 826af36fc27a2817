package store

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// Renewal reminder thresholds pre-populated on every new contract
var defaultReminders = []entity.RenewalReminder{
	{DaysBefore: 30},
	{DaysBefore: 7},
}

// AddAMC creates a contract with a generated id, a QR code id derived
// from the device serial, Active status and unsent renewal reminders
func (s *Store) AddAMC(input entity.AMCContract) entity.AMCContract {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAMCLocked(input)
}

func (s *Store) addAMCLocked(input entity.AMCContract) entity.AMCContract {
	input.ID = s.nextSequenceID(PrefixAMC)
	input.QRCodeID = input.ID + "-" + input.DeviceSerial
	input.Status = enum.AMCStatusActive
	input.RenewalReminders = append([]entity.RenewalReminder(nil), defaultReminders...)
	input.ServiceHistory = []entity.ServiceRecord{}
	input.IsActive = true
	input.CreatedAt = s.now()

	s.contracts = append(s.contracts, input)
	return input
}

// RenewAMC rolls the contract forward: the old end date becomes the new
// start date, status returns to Active and reminders reset to unsent
func (s *Store) RenewAMC(id string, newEndDate time.Time, newAmount *float64) (entity.AMCContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amc := s.findAMC(id)
	if amc == nil {
		return entity.AMCContract{}, apperror.NewNotFoundError("AMC contract")
	}
	if !newEndDate.After(amc.EndDate) {
		return entity.AMCContract{}, apperror.NewBadRequestError("New end date must be after the current end date")
	}

	amc.StartDate = amc.EndDate
	amc.EndDate = newEndDate
	amc.Status = enum.AMCStatusActive
	if newAmount != nil {
		amc.Amount = *newAmount
	}
	for i := range amc.RenewalReminders {
		amc.RenewalReminders[i].Sent = false
	}

	return *amc, nil
}

// UpcomingRenewals returns active contracts expiring within the given
// number of days (default 30)
func (s *Store) UpcomingRenewals(withinDays int) []entity.AMCContract {
	if withinDays <= 0 {
		withinDays = 30
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	today := truncateToDay(s.now())
	horizon := today.AddDate(0, 0, withinDays)

	var out []entity.AMCContract
	for _, c := range s.contracts {
		if !s.isAMCActiveLocked(&c) {
			continue
		}
		end := truncateToDay(c.EndDate)
		if !end.Before(today) && !end.After(horizon) {
			out = append(out, c)
		}
	}
	return out
}

// IsAMCActive reports whether a contract is in force: Active status and
// an end date of today or later
func (s *Store) IsAMCActive(amc entity.AMCContract) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAMCActiveLocked(&amc)
}

func (s *Store) isAMCActiveLocked(amc *entity.AMCContract) bool {
	return amc.Status == enum.AMCStatusActive && !truncateToDay(amc.EndDate).Before(truncateToDay(s.now()))
}

// ConvertOrderToAMC creates a contract carrying over the order's
// customer contact fields and back-references it from the order
func (s *Store) ConvertOrderToAMC(orderID string, input entity.AMCContract) (entity.AMCContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return entity.AMCContract{}, apperror.NewNotFoundError("Order")
	}
	if order.AMCID != "" {
		return entity.AMCContract{}, apperror.NewConflictError("Order already converted to AMC")
	}

	input.OrderID = order.ID
	input.Customer = order.Customer
	amc := s.addAMCLocked(input)

	order.Status = enum.OrderStatusAMCConverted
	order.AMCID = amc.ID
	order.AuditTrail = append(order.AuditTrail, entity.AuditEntry{
		Action:   "Converted to AMC",
		NewValue: amc.ID,
		At:       s.now(),
	})

	return amc, nil
}

// AddServiceRecord logs a service visit against a contract
func (s *Store) AddServiceRecord(id string, record entity.ServiceRecord) (entity.AMCContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amc := s.findAMC(id)
	if amc == nil {
		return entity.AMCContract{}, apperror.NewNotFoundError("AMC contract")
	}
	if record.Date.IsZero() {
		record.Date = s.now()
	}
	amc.ServiceHistory = append(amc.ServiceHistory, record)
	return *amc, nil
}

// MarkReminderSent flags one renewal reminder as sent
func (s *Store) MarkReminderSent(id string, index int) (entity.AMCContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amc := s.findAMC(id)
	if amc == nil {
		return entity.AMCContract{}, apperror.NewNotFoundError("AMC contract")
	}
	if index < 0 || index >= len(amc.RenewalReminders) {
		return entity.AMCContract{}, apperror.NewBadRequestError("Unknown reminder")
	}
	amc.RenewalReminders[index].Sent = true
	return *amc, nil
}

// GetAMC returns the contract with the given id
func (s *Store) GetAMC(id string) (entity.AMCContract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amc := s.findAMC(id)
	if amc == nil {
		return entity.AMCContract{}, apperror.NewNotFoundError("AMC contract")
	}
	return *amc, nil
}

// ListAMCs returns all contracts
func (s *Store) ListAMCs() []entity.AMCContract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.AMCContract(nil), s.contracts...)
}

func (s *Store) findAMC(id string) *entity.AMCContract {
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			return &s.contracts[i]
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
